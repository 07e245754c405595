// internal/system/area_attack_system.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/logging"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
)

// ExplosionResolver находит танки в радиусе взрыва и наносит им урон.
type ExplosionResolver struct {
	ctx   *Context
	tanks *TankSystem
	log   zerolog.Logger
}

func NewExplosionResolver(ctx *Context) *ExplosionResolver {
	return &ExplosionResolver{
		ctx: ctx,
		log: logging.For(ctx.Log, "explosion"),
	}
}

// SetTanks wires the damage target after the tank system exists.
func (r *ExplosionResolver) SetTanks(tanks *TankSystem) {
	r.tanks = tanks
}

// Resolve взрывает в center и возвращает все танки в радиусе, кроме танков
// excludePlayer. Каждый получает урон по тем же правилам, что и при прямом попадании.
func (r *ExplosionResolver) Resolve(center utils.Vec2, radius float64, excludePlayer int) []types.EntityID {
	return r.ResolveFor(0, center, radius, excludePlayer)
}

// ResolveFor is Resolve with the detonating bullet recorded on hit events.
func (r *ExplosionResolver) ResolveFor(bullet types.EntityID, center utils.Vec2, radius float64, excludePlayer int) []types.EntityID {
	targets := r.targets(center, radius, excludePlayer)

	// Визуальный эффект масштабируется от радиуса и исчезает сам
	r.ctx.Presenter.SpawnEffect(interfaces.EffectRequest{
		Kind:     interfaces.EffectExplosion,
		Pos:      center,
		Scale:    radius / 2,
		Lifetime: r.ctx.Tuning.Explosion.EffectLifetime,
	})
	r.ctx.Presenter.PlaySound(interfaces.SoundExplosion, center)
	r.ctx.dispatch(event.ExplosionDetonated, event.ExplosionPayload{
		Center:  center,
		Radius:  radius,
		Owner:   excludePlayer,
		Targets: targets,
	})
	r.log.Debug().
		Float64("x", center.X).Float64("y", center.Y).
		Float64("radius", radius).
		Int("targets", len(targets)).
		Msg("explosion")

	if r.tanks != nil {
		for _, id := range targets {
			r.tanks.TakeDamage(id, HitInfo{Bullet: bullet, Shooter: excludePlayer, Explosive: true})
		}
	}
	return targets
}

func (r *ExplosionResolver) targets(center utils.Vec2, radius float64, excludePlayer int) []types.EntityID {
	var out []types.EntityID
	for _, id := range sortedIDs(r.ctx.ECS.Tanks) {
		tank := r.ctx.ECS.Tanks[id]
		if tank.PlayerNumber == excludePlayer || tank.Inert {
			continue
		}
		tr, ok := r.ctx.ECS.Transforms[id]
		if !ok {
			continue
		}
		col, ok := r.ctx.ECS.Colliders[id]
		if !ok {
			col = &component.Collider{}
		}
		if CircleTouches(center, radius, tr.Pos, col) {
			out = append(out, id)
		}
	}
	return out
}
