// internal/system/status_effect.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/defs"
	"tank-arena/internal/event"
	"tank-arena/internal/logging"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
)

// iconPriority — порядок выбора иконки, если последний активированный эффект уже закончился.
var iconPriority = []defs.PowerUpKind{
	defs.PowerUpShield,
	defs.PowerUpExplosiveBomb,
	defs.PowerUpSpreadShot,
	defs.PowerUpRapidFire,
	defs.PowerUpSpeedBoost,
}

// PowerUpEffectSystem управляет эффектами бонусов каждого танка: щитом,
// одноразовыми зарядами (веер, разрывная пуля) и временными баффами.
type PowerUpEffectSystem struct {
	ctx     *Context
	shields *ShieldSystem
	log     zerolog.Logger
}

func NewPowerUpEffectSystem(ctx *Context, shields *ShieldSystem) *PowerUpEffectSystem {
	return &PowerUpEffectSystem{
		ctx:     ctx,
		shields: shields,
		log:     logging.For(ctx.Log, "powerup"),
	}
}

// effects returns the effect state of a tank, creating it on first use.
func (s *PowerUpEffectSystem) effects(tank types.EntityID) *component.PowerUpEffects {
	if _, ok := s.ctx.ECS.Tanks[tank]; !ok {
		return nil
	}
	fx, ok := s.ctx.ECS.Effects[tank]
	if !ok {
		fx = &component.PowerUpEffects{}
		s.ctx.ECS.Effects[tank] = fx
	}
	return fx
}

// ActivateSpreadShot заряжает веерный выстрел. Количество пуль ограничивается
// диапазоном [minBullets, maxBullets]; новый заряд заменяет старый.
func (s *PowerUpEffectSystem) ActivateSpreadShot(tank types.EntityID, bullets int) {
	fx := s.effects(tank)
	if fx == nil {
		return
	}
	spread := s.ctx.Tuning.Spread
	fx.SpreadShot = component.SpreadShotCharge{
		Active:      true,
		BulletCount: utils.ClampInt(bullets, spread.MinBullets, spread.MaxBullets),
	}
	s.activated(tank, fx, defs.PowerUpSpreadShot)
}

// ActivateShield включает щит. Уже активный щит не продлевается.
func (s *PowerUpEffectSystem) ActivateShield(tank types.EntityID, duration float64) bool {
	fx := s.effects(tank)
	if fx == nil || fx.Shield.Active {
		return false
	}
	fx.Shield = component.ShieldState{
		Active:    true,
		ExpiresAt: s.ctx.Now() + duration,
		Visual:    s.shields.Spawn(tank),
	}
	s.ctx.Presenter.AttachShield(tank)
	s.activated(tank, fx, defs.PowerUpShield)
	return true
}

// ActivateExplosiveBomb заряжает следующую очередь разрывными пулями.
func (s *PowerUpEffectSystem) ActivateExplosiveBomb(tank types.EntityID, radius float64) {
	fx := s.effects(tank)
	if fx == nil {
		return
	}
	if radius <= 0 {
		radius = s.ctx.Tuning.Explosion.DefaultRadius
	}
	fx.Explosive = component.ExplosiveCharge{Active: true, Radius: radius}
	s.activated(tank, fx, defs.PowerUpExplosiveBomb)
}

// ActivateSpeedBoost multiplies move speed until the deadline. Ignored while active.
func (s *PowerUpEffectSystem) ActivateSpeedBoost(tank types.EntityID, duration, multiplier float64) bool {
	fx := s.effects(tank)
	if fx == nil || fx.SpeedBoost.Active || multiplier <= 0 {
		return false
	}
	fx.SpeedBoost = component.TimedBuff{Active: true, Multiplier: multiplier, ExpiresAt: s.ctx.Now() + duration}
	s.activated(tank, fx, defs.PowerUpSpeedBoost)
	return true
}

// ActivateRapidFire divides the fire cooldown until the deadline. Ignored while active.
func (s *PowerUpEffectSystem) ActivateRapidFire(tank types.EntityID, duration, multiplier float64) bool {
	fx := s.effects(tank)
	if fx == nil || fx.RapidFire.Active || multiplier <= 0 {
		return false
	}
	fx.RapidFire = component.TimedBuff{Active: true, Multiplier: multiplier, ExpiresAt: s.ctx.Now() + duration}
	s.activated(tank, fx, defs.PowerUpRapidFire)
	return true
}

// ShouldTakeDamage снимает активный щит и возвращает false; без щита — true.
func (s *PowerUpEffectSystem) ShouldTakeDamage(tank types.EntityID) bool {
	fx, ok := s.ctx.ECS.Effects[tank]
	if !ok || !fx.Shield.Active {
		return true
	}
	s.deactivateShield(tank, fx)
	s.ctx.dispatch(event.ShieldAbsorbed, event.ShieldPayload{Tank: tank, Player: s.playerOf(tank)})
	s.log.Debug().Uint32("tank", uint32(tank)).Msg("shield absorbed hit")
	return false
}

// BreakShield is called when a bullet touches the shield object itself.
func (s *PowerUpEffectSystem) BreakShield(tank types.EntityID) {
	fx, ok := s.ctx.ECS.Effects[tank]
	if !ok || !fx.Shield.Active {
		return
	}
	s.deactivateShield(tank, fx)
	s.ctx.dispatch(event.ShieldBroken, event.ShieldPayload{Tank: tank, Player: s.playerOf(tank)})
}

// OnSpreadShotFired consumes the spread charge. Called once per fire action.
func (s *PowerUpEffectSystem) OnSpreadShotFired(tank types.EntityID) {
	fx, ok := s.ctx.ECS.Effects[tank]
	if !ok {
		return
	}
	fx.SpreadShot = component.SpreadShotCharge{}
	s.refreshIcon(tank, fx)
}

// OnExplosiveBulletFired consumes the explosive charge. Called once per fire action.
func (s *PowerUpEffectSystem) OnExplosiveBulletFired(tank types.EntityID) {
	fx, ok := s.ctx.ECS.Effects[tank]
	if !ok {
		return
	}
	fx.Explosive = component.ExplosiveCharge{}
	s.refreshIcon(tank, fx)
}

// MoveSpeed returns base adjusted by an active speed boost.
func (s *PowerUpEffectSystem) MoveSpeed(tank types.EntityID, base float64) float64 {
	if fx, ok := s.ctx.ECS.Effects[tank]; ok && fx.SpeedBoost.Active {
		return base * fx.SpeedBoost.Multiplier
	}
	return base
}

// FireRate returns the cooldown adjusted by an active rapid-fire buff.
func (s *PowerUpEffectSystem) FireRate(tank types.EntityID, base float64) float64 {
	if fx, ok := s.ctx.ECS.Effects[tank]; ok && fx.RapidFire.Active {
		return base / fx.RapidFire.Multiplier
	}
	return base
}

// Clear drops every effect of the tank (match reset).
func (s *PowerUpEffectSystem) Clear(tank types.EntityID) {
	fx, ok := s.ctx.ECS.Effects[tank]
	if !ok {
		return
	}
	if fx.Shield.Active {
		s.deactivateShield(tank, fx)
	}
	*fx = component.PowerUpEffects{Icon: fx.Icon}
	s.refreshIcon(tank, fx)
}

// Update снимает истёкшие эффекты.
func (s *PowerUpEffectSystem) Update(deltaTime float64) {
	now := s.ctx.Now()
	for _, id := range sortedIDs(s.ctx.ECS.Effects) {
		fx := s.ctx.ECS.Effects[id]
		if _, alive := s.ctx.ECS.Tanks[id]; !alive {
			delete(s.ctx.ECS.Effects, id)
			continue
		}

		if fx.Shield.Active && now >= fx.Shield.ExpiresAt {
			s.deactivateShield(id, fx)
			s.ctx.dispatch(event.ShieldExpired, event.ShieldPayload{Tank: id, Player: s.playerOf(id)})
		}
		if fx.SpeedBoost.Active && now >= fx.SpeedBoost.ExpiresAt {
			fx.SpeedBoost = component.TimedBuff{}
		}
		if fx.RapidFire.Active && now >= fx.RapidFire.ExpiresAt {
			fx.RapidFire = component.TimedBuff{}
		}
		s.refreshIcon(id, fx)
	}
}

func (s *PowerUpEffectSystem) deactivateShield(tank types.EntityID, fx *component.PowerUpEffects) {
	visual := fx.Shield.Visual
	fx.Shield = component.ShieldState{}
	if visual != 0 {
		s.ctx.ECS.Destroy(visual)
	}
	s.ctx.Presenter.DetachShield(tank)
	s.refreshIcon(tank, fx)
}

func (s *PowerUpEffectSystem) activated(tank types.EntityID, fx *component.PowerUpEffects, kind defs.PowerUpKind) {
	fx.LastKind = kind
	s.refreshIcon(tank, fx)
	s.log.Debug().Uint32("tank", uint32(tank)).Str("kind", string(kind)).Msg("power-up activated")
}

// refreshIcon показывает последний активированный эффект, пока он действует,
// иначе первый активный по приоритету. Презентер вызывается только при смене.
func (s *PowerUpEffectSystem) refreshIcon(tank types.EntityID, fx *component.PowerUpEffects) {
	var want defs.PowerUpKind
	if fx.LastKind != "" && fx.IsActive(fx.LastKind) {
		want = fx.LastKind
	} else {
		for _, kind := range iconPriority {
			if fx.IsActive(kind) {
				want = kind
				break
			}
		}
	}
	if want == fx.Icon {
		return
	}
	fx.Icon = want
	s.ctx.Presenter.SetIcon(tank, want)
}

func (s *PowerUpEffectSystem) playerOf(tank types.EntityID) int {
	if t, ok := s.ctx.ECS.Tanks[tank]; ok {
		return t.PlayerNumber
	}
	return 0
}
