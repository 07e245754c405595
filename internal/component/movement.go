// component/movement.go
package component

import "tank-arena/internal/utils"

// Transform — позиция и поворот сущности.
// Rotation хранится в градусах против часовой стрелки и не нормализуется,
// чтобы полный оборот при оглушении был виден как +360.
type Transform struct {
	Pos      utils.Vec2
	Rotation float64
}

// Forward returns the facing axis of the transform.
func (t *Transform) Forward() utils.Vec2 {
	return utils.Heading(t.Rotation)
}

// Velocity — компонент скорости
type Velocity struct {
	Vec utils.Vec2
}
