// internal/component/status_effect.go
package component

import (
	"tank-arena/internal/defs"
	"tank-arena/internal/types"
)

// ShieldState tracks an absorbing shield. It absorbs exactly one hit or
// expires at ExpiresAt, whichever comes first.
type ShieldState struct {
	Active    bool
	ExpiresAt float64
	Visual    types.EntityID // shield object attached to the tank
}

// SpreadShotCharge is consumed by the next fire action.
type SpreadShotCharge struct {
	Active      bool
	BulletCount int
}

// ExplosiveCharge is consumed by the next fire action.
type ExplosiveCharge struct {
	Active bool
	Radius float64
}

// TimedBuff is a multiplier that reverts at ExpiresAt.
type TimedBuff struct {
	Active     bool
	Multiplier float64
	ExpiresAt  float64
}

// PowerUpEffects aggregates every active or pending effect of one tank.
type PowerUpEffects struct {
	Shield     ShieldState
	SpreadShot SpreadShotCharge
	Explosive  ExplosiveCharge
	SpeedBoost TimedBuff
	RapidFire  TimedBuff
	Icon       defs.PowerUpKind // показанная иконка, "" — нет
	LastKind   defs.PowerUpKind
}

// IsActive reports whether the effect of the given kind is currently held.
func (e *PowerUpEffects) IsActive(kind defs.PowerUpKind) bool {
	switch kind {
	case defs.PowerUpShield:
		return e.Shield.Active
	case defs.PowerUpSpreadShot:
		return e.SpreadShot.Active
	case defs.PowerUpExplosiveBomb:
		return e.Explosive.Active
	case defs.PowerUpSpeedBoost:
		return e.SpeedBoost.Active
	case defs.PowerUpRapidFire:
		return e.RapidFire.Active
	}
	return false
}
