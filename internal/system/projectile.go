// internal/system/projectile.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/logging"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
)

// Причины уничтожения пули.
const (
	CauseTankHit    = "tank_hit"
	CauseShield     = "shield"
	CauseWall       = "wall"
	CauseObstacle   = "obstacle"
	CauseLifetime   = "lifetime"
	CauseOwnerHit   = "owner_hit" // владелец получил урон
	CauseMatchReset = "match_reset"
)

// BulletSpec describes a bullet to spawn.
type BulletSpec struct {
	OwnerTank    types.EntityID // 0 — пуля без владельца (веер)
	OwnerPlayer  int
	Pos          utils.Vec2
	Rotation     float64
	Speed        float64
	Controllable bool
}

// BulletSystem управляет полётом пуль, управлением летящей пулей и
// разрешением столкновений.
type BulletSystem struct {
	ctx        *Context
	tanks      *TankSystem
	effects    *PowerUpEffectSystem
	shields    *ShieldSystem
	explosions *ExplosionResolver
	log        zerolog.Logger
}

func NewBulletSystem(ctx *Context, effects *PowerUpEffectSystem, shields *ShieldSystem, explosions *ExplosionResolver) *BulletSystem {
	return &BulletSystem{
		ctx:        ctx,
		effects:    effects,
		shields:    shields,
		explosions: explosions,
		log:        logging.For(ctx.Log, "bullet"),
	}
}

// SetTanks closes the tank/bullet cycle after both systems exist.
func (s *BulletSystem) SetTanks(tanks *TankSystem) {
	s.tanks = tanks
}

// Spawn создаёт пулю со скоростью speed вдоль её оси. Пуля без танка-владельца
// никогда не управляется, даже если Controllable=true.
func (s *BulletSystem) Spawn(spec BulletSpec) types.EntityID {
	ecs := s.ctx.ECS
	tuning := s.ctx.Tuning.Bullet

	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Pos: spec.Pos, Rotation: spec.Rotation}
	ecs.Velocities[id] = &component.Velocity{Vec: utils.Heading(spec.Rotation).Scale(spec.Speed)}
	ecs.Colliders[id] = &component.Collider{Category: component.CategoryBullet, Radius: tuning.Radius}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.BulletColor,
		Radius: float32(tuning.Radius * config.PixelsPerUnit),
	}
	ecs.Bullets[id] = &component.Bullet{
		OwnerPlayer:  spec.OwnerPlayer,
		OwnerTank:    spec.OwnerTank,
		Speed:        spec.Speed,
		Controllable: spec.Controllable && spec.OwnerTank != 0,
		ExpiresAt:    s.ctx.Now() + tuning.Lifetime,
	}

	s.log.Debug().
		Uint32("bullet", uint32(id)).
		Int("player", spec.OwnerPlayer).
		Float64("speed", spec.Speed).
		Bool("controllable", spec.OwnerTank != 0 && spec.Controllable).
		Msg("bullet spawned")
	s.hasBody(id, ecs.Bullets[id])
	return id
}

// SetExplosive делает пулю разрывной. Неположительный радиус заменяется радиусом по умолчанию.
func (s *BulletSystem) SetExplosive(bullet types.EntityID, radius float64) {
	b, ok := s.ctx.ECS.Bullets[bullet]
	if !ok {
		return
	}
	if radius <= 0 {
		radius = s.ctx.Tuning.Explosion.DefaultRadius
	}
	b.Explosive = true
	b.ExplosionRadius = radius
	if r, ok := s.ctx.ECS.Renderables[bullet]; ok {
		r.Color = config.ExplosiveColor
	}
}

// HandleInput подталкивает управляемую пулю в сторону input (мировые оси) и
// ограничивает скорость maxSpeedFactor × начальной.
func (s *BulletSystem) HandleInput(bullet types.EntityID, input utils.Vec2, deltaTime float64) {
	b, ok := s.ctx.ECS.Bullets[bullet]
	if !ok || !b.Controllable || b.OwnerTank == 0 || b.Resolved || !s.hasBody(bullet, b) {
		return
	}
	vel, ok := s.ctx.ECS.Velocities[bullet]
	if !ok {
		return
	}
	tuning := s.ctx.Tuning.Bullet
	accel := tuning.ControlForce * tuning.ForceStep
	vel.Vec = vel.Vec.Add(input.Scale(accel * deltaTime)).ClampLen(b.Speed * tuning.MaxSpeedFactor)

	if tr, ok := s.ctx.ECS.Transforms[bullet]; ok && vel.Vec.LenSq() > 0 {
		tr.Rotation = utils.AngleOf(vel.Vec)
	}
}

// OnCollision разрешает касание пули с другим объектом. Пуля обрабатывается
// не более одного раза; возвращает true, если касание что-то решило.
func (s *BulletSystem) OnCollision(bullet, other types.EntityID, category component.Category) bool {
	b, ok := s.ctx.ECS.Bullets[bullet]
	if !ok || b.Resolved || b.Inert {
		return false
	}

	switch category {
	case component.CategoryShield:
		b.Resolved = true
		pos, _ := s.ctx.position(bullet)
		s.log.Debug().Uint32("bullet", uint32(bullet)).Uint32("shield", uint32(other)).Msg("bullet hit shield")
		if owner, ok := s.shields.OwnerOf(other); ok {
			s.effects.BreakShield(owner)
		}
		// щит без записи в эффектах всё равно уничтожается
		s.ctx.ECS.Destroy(other)
		s.ctx.Presenter.PlaySound(interfaces.SoundShieldBreak, pos)
		s.ctx.Presenter.SpawnEffect(interfaces.EffectRequest{
			Kind:     interfaces.EffectShieldPop,
			Pos:      pos,
			Scale:    1,
			Lifetime: 0.3,
		})
		s.Destroy(bullet, CauseShield)
		return true

	case component.CategoryTank:
		tank, ok := s.ctx.ECS.Tanks[other]
		if !ok || tank.PlayerNumber == b.OwnerPlayer {
			return false
		}
		b.Resolved = true
		s.log.Debug().Uint32("bullet", uint32(bullet)).Int("target", tank.PlayerNumber).Msg("bullet hit enemy tank")

		hit := HitInfo{Bullet: bullet, Shooter: b.OwnerPlayer, Explosive: b.Explosive}
		s.ctx.dispatch(event.TankHit, event.HitPayload{
			Bullet:    bullet,
			Shooter:   b.OwnerPlayer,
			Target:    other,
			Victim:    tank.PlayerNumber,
			Explosive: b.Explosive,
		})
		if b.Explosive {
			s.detonate(bullet, b)
		} else if s.tanks != nil {
			s.tanks.TakeDamage(other, hit)
		}
		s.Destroy(bullet, CauseTankHit)
		return true

	case component.CategoryWall:
		b.Resolved = true
		s.log.Debug().Uint32("bullet", uint32(bullet)).Msg("bullet hit wall")
		if b.Explosive {
			s.detonate(bullet, b)
		}
		s.Destroy(bullet, CauseWall)
		return true

	case component.CategoryObstacle, component.CategoryBarrier, component.CategoryPlayer:
		b.Resolved = true
		s.log.Debug().Uint32("bullet", uint32(bullet)).Stringer("category", category).Msg("bullet stopped")
		s.Destroy(bullet, CauseObstacle)
		return true
	}
	return false
}

func (s *BulletSystem) detonate(id types.EntityID, b *component.Bullet) {
	pos, ok := s.ctx.position(id)
	if !ok {
		return
	}
	s.explosions.ResolveFor(id, pos, b.ExplosionRadius, b.OwnerPlayer)
}

// Destroy удаляет пулю и освобождает слот владельца. Повторный вызов ничего не делает.
func (s *BulletSystem) Destroy(bullet types.EntityID, cause string) {
	b, ok := s.ctx.ECS.Bullets[bullet]
	if !ok {
		return
	}
	s.ctx.ECS.Destroy(bullet)

	if b.OwnerTank != 0 && s.tanks != nil {
		s.tanks.OnBulletDestroyed(b.OwnerTank, bullet)
	}
	s.ctx.dispatch(event.BulletDestroyed, event.BulletPayload{Bullet: bullet, Owner: b.OwnerPlayer, Cause: cause})
	s.log.Debug().Uint32("bullet", uint32(bullet)).Str("cause", cause).Msg("bullet destroyed")
}

// DestroyAll removes every live bullet (match reset).
func (s *BulletSystem) DestroyAll(cause string) {
	for _, id := range sortedIDs(s.ctx.ECS.Bullets) {
		s.Destroy(id, cause)
	}
}

// Update уничтожает пули по истечении времени жизни и помечает пули без тела.
func (s *BulletSystem) Update(deltaTime float64) {
	now := s.ctx.Now()
	for _, id := range sortedIDs(s.ctx.ECS.Bullets) {
		b, ok := s.ctx.ECS.Bullets[id]
		if !ok {
			continue
		}
		s.hasBody(id, b)
		if now >= b.ExpiresAt {
			s.Destroy(id, CauseLifetime)
		}
	}
}

// hasBody помечает пулю без тела инертной: она не летит и не сталкивается,
// но по-прежнему истекает по времени жизни.
func (s *BulletSystem) hasBody(id types.EntityID, b *component.Bullet) bool {
	if b.Inert {
		return false
	}
	if err := s.ctx.requireBody(id); err != nil {
		b.Inert = true
		s.log.Warn().Err(err).Int("player", b.OwnerPlayer).Msg("bullet is inert")
		return false
	}
	return true
}
