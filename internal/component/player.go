// internal/component/player.go
package component

import (
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

// Tank — состояние танка игрока.
type Tank struct {
	PlayerNumber  int
	MoveSpeed     float64
	RotationSpeed float64 // градусов в секунду
	FireRate      float64 // перезарядка в секундах
	BulletSpeed   float64
	Score         int
	CanMove       bool
	ActiveBullet  types.EntityID // 0 — слот свободен
	NextFireTime  float64
	Spin          SpinState
	PrevPos       utils.Vec2 // последняя позиция без пересечения со стеной
	Inert         bool       // не хватает обязательных компонентов
}

// Spinning reports whether the tank is hit-stunned.
func (t *Tank) Spinning() bool {
	return t.Spin.Active
}

// SpinState describes a forced rotation after a hit.
type SpinState struct {
	Active        bool
	StartRotation float64
	TotalDegrees  float64
	StartedAt     float64
	EndsAt        float64
}
