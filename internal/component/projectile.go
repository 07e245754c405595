// internal/component/projectile.go
package component

import "tank-arena/internal/types"

// Bullet представляет летящий снаряд.
type Bullet struct {
	OwnerPlayer     int
	OwnerTank       types.EntityID // слабая ссылка; 0 для веерных пуль
	Speed           float64        // начальная скорость
	Explosive       bool
	ExplosionRadius float64
	Controllable    bool
	Resolved        bool // защёлка: столкновение уже обработано
	Inert           bool // нет тела, только таймер жизни
	ExpiresAt       float64
}
