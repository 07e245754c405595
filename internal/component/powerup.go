// internal/component/powerup.go
package component

import "tank-arena/internal/defs"

// PowerUp — подбираемый бонус на арене.
type PowerUp struct {
	Kind      defs.PowerUpKind
	Duration  float64
	Strength  float64
	ExpiresAt float64 // 0 — не исчезает
	Collected bool
}
