// component/combat.go
package component

import (
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

// Category tags a collider for collision resolution.
type Category int

const (
	CategoryNone Category = iota
	CategoryTank
	CategoryShield
	CategoryWall
	CategoryObstacle
	CategoryBarrier
	CategoryPlayer // объект игрока без компонента Tank
	CategoryPowerUp
	CategoryBullet
)

func (c Category) String() string {
	switch c {
	case CategoryTank:
		return "tank"
	case CategoryShield:
		return "shield"
	case CategoryWall:
		return "wall"
	case CategoryObstacle:
		return "obstacle"
	case CategoryBarrier:
		return "barrier"
	case CategoryPlayer:
		return "player"
	case CategoryPowerUp:
		return "powerup"
	case CategoryBullet:
		return "bullet"
	default:
		return "none"
	}
}

// Collider — форма для проверки пересечений.
// Круг, если HalfExtents нулевой, иначе прямоугольник по осям.
type Collider struct {
	Category    Category
	Radius      float64
	HalfExtents utils.Vec2
	Owner       types.EntityID // для щита: танк-владелец
}

// IsBox reports whether the collider is an axis-aligned box.
func (c *Collider) IsBox() bool {
	return c.HalfExtents.X > 0 && c.HalfExtents.Y > 0
}
