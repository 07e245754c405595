// internal/system/combat.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/types"
)

// HitInfo describes who dealt a hit.
type HitInfo struct {
	Bullet    types.EntityID
	Shooter   int
	Explosive bool
}

// TakeDamage наносит танку попадание. Активный щит поглощает его и
// расходуется. Иначе танк останавливается, теряет летящую пулю и входит во
// вращение; очко стрелку начисляется подписчиком TankDamaged.
// Возвращает true, если урон применён.
func (s *TankSystem) TakeDamage(id types.EntityID, hit HitInfo) bool {
	tank, ok := s.ctx.ECS.Tanks[id]
	if !ok {
		return false
	}
	if !s.effects.ShouldTakeDamage(id) {
		return false
	}

	s.stop(id)
	if tank.ActiveBullet != 0 {
		s.bullets.Destroy(tank.ActiveBullet, CauseOwnerHit)
		tank.ActiveBullet = 0
	}

	// повторное попадание во время вращения не перезапускает его
	if !tank.Spinning() {
		s.startSpin(id, tank)
	}

	pos, _ := s.ctx.position(id)
	s.ctx.Presenter.PlaySound(interfaces.SoundHit, pos)
	s.ctx.dispatch(event.TankDamaged, event.HitPayload{
		Bullet:    hit.Bullet,
		Shooter:   hit.Shooter,
		Target:    id,
		Victim:    tank.PlayerNumber,
		Explosive: hit.Explosive,
	})
	s.log.Debug().Int("victim", tank.PlayerNumber).Int("shooter", hit.Shooter).Msg("tank damaged")
	return true
}

func (s *TankSystem) startSpin(id types.EntityID, tank *component.Tank) {
	tuning := s.ctx.Tuning.Tank
	start := 0.0
	if tr, ok := s.ctx.ECS.Transforms[id]; ok {
		start = tr.Rotation
	}
	now := s.ctx.Now()
	tank.Spin = component.SpinState{
		Active:        true,
		StartRotation: start,
		TotalDegrees:  360 * float64(tuning.SpinRotations),
		StartedAt:     now,
		EndsAt:        now + tuning.SpinDuration,
	}
	tank.CanMove = false
}

// advanceSpin ставит угол как линейную функцию прошедшего времени, а на
// дедлайне — ровно в start + total, независимо от шага кадра.
func (s *TankSystem) advanceSpin(id types.EntityID, tank *component.Tank, now float64) {
	spin := &tank.Spin
	tr, ok := s.ctx.ECS.Transforms[id]
	if !ok {
		return
	}
	s.stop(id)
	if now >= spin.EndsAt {
		tr.Rotation = spin.StartRotation + spin.TotalDegrees
		tank.Spin = component.SpinState{}
		tank.CanMove = tank.ActiveBullet == 0
		return
	}
	progress := (now - spin.StartedAt) / (spin.EndsAt - spin.StartedAt)
	tr.Rotation = spin.StartRotation + spin.TotalDegrees*progress
}
