// internal/system/pickup.go
package system

import (
	"tank-arena/internal/defs"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/logging"
	"tank-arena/internal/types"

	"github.com/rs/zerolog"
)

// PickupSystem применяет подобранные бонусы и убирает просроченные.
type PickupSystem struct {
	ctx     *Context
	effects *PowerUpEffectSystem
	log     zerolog.Logger
}

func NewPickupSystem(ctx *Context, effects *PowerUpEffectSystem) *PickupSystem {
	return &PickupSystem{
		ctx:     ctx,
		effects: effects,
		log:     logging.For(ctx.Log, "pickup"),
	}
}

// Collect отдаёт бонус танку. Каждый бонус подбирается ровно один раз.
func (s *PickupSystem) Collect(tank, powerUp types.EntityID) bool {
	t, ok := s.ctx.ECS.Tanks[tank]
	if !ok {
		return false
	}
	p, ok := s.ctx.ECS.PowerUps[powerUp]
	if !ok || p.Collected {
		return false
	}
	p.Collected = true
	pos, _ := s.ctx.position(powerUp)

	s.Apply(tank, p.Kind, p.Strength, p.Duration)

	s.ctx.Presenter.PlaySound(interfaces.SoundPickup, pos)
	s.ctx.Presenter.SpawnEffect(interfaces.EffectRequest{Kind: interfaces.EffectPickup, Pos: pos, Scale: 1, Lifetime: 0.5})
	s.ctx.dispatch(event.PowerUpCollected, event.PowerUpPayload{PowerUp: powerUp, Kind: p.Kind, Pos: pos, Player: t.PlayerNumber})
	s.log.Debug().Int("player", t.PlayerNumber).Str("kind", string(p.Kind)).Msg("power-up collected")

	s.ctx.ECS.Destroy(powerUp)
	return true
}

// Apply routes a power-up of kind to the matching effect.
func (s *PickupSystem) Apply(tank types.EntityID, kind defs.PowerUpKind, strength, duration float64) {
	switch kind {
	case defs.PowerUpSpreadShot:
		s.effects.ActivateSpreadShot(tank, int(strength))
	case defs.PowerUpShield:
		s.effects.ActivateShield(tank, duration)
	case defs.PowerUpExplosiveBomb:
		s.effects.ActivateExplosiveBomb(tank, strength)
	case defs.PowerUpSpeedBoost:
		s.effects.ActivateSpeedBoost(tank, duration, strength)
	case defs.PowerUpRapidFire:
		s.effects.ActivateRapidFire(tank, duration, strength)
	default:
		s.log.Warn().Str("kind", string(kind)).Msg("unknown power-up kind")
	}
}

// Update убирает бонусы, чьё время на арене истекло.
func (s *PickupSystem) Update(deltaTime float64) {
	now := s.ctx.Now()
	for _, id := range sortedIDs(s.ctx.ECS.PowerUps) {
		p := s.ctx.ECS.PowerUps[id]
		if p.ExpiresAt == 0 || now < p.ExpiresAt {
			continue
		}
		pos, _ := s.ctx.position(id)
		s.ctx.ECS.Destroy(id)
		s.ctx.dispatch(event.PowerUpExpired, event.PowerUpPayload{PowerUp: id, Kind: p.Kind, Pos: pos})
	}
}

// DestroyAll clears the arena of pickups.
func (s *PickupSystem) DestroyAll() {
	for _, id := range sortedIDs(s.ctx.ECS.PowerUps) {
		s.ctx.ECS.Destroy(id)
	}
}
