// internal/system/player_system.go
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

// TankSystem — танки игроков: движение, стрельба с перезарядкой, слот
// управляемой пули и оглушение вращением после попадания.
type TankSystem struct {
	ctx     *Context
	bullets *BulletSystem
	effects *PowerUpEffectSystem
	log     zerolog.Logger
}

func NewTankSystem(ctx *Context, bullets *BulletSystem, effects *PowerUpEffectSystem) *TankSystem {
	return &TankSystem{
		ctx:     ctx,
		bullets: bullets,
		effects: effects,
		log:     logging.For(ctx.Log, "tank"),
	}
}

// Register создаёт танк игрока с параметрами из конфигурации.
func (s *TankSystem) Register(playerNumber int, pos utils.Vec2, rotation float64) types.EntityID {
	ecs := s.ctx.ECS
	tuning := s.ctx.Tuning.Tank

	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Pos: pos, Rotation: rotation}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Colliders[id] = &component.Collider{Category: component.CategoryTank, Radius: tuning.Radius}
	ecs.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor(playerNumber),
		Radius:    float32(tuning.Radius * config.PixelsPerUnit),
		HasStroke: true,
	}
	ecs.Tanks[id] = &component.Tank{
		PlayerNumber:  playerNumber,
		MoveSpeed:     tuning.MoveSpeed,
		RotationSpeed: tuning.RotationSpeed,
		FireRate:      tuning.FireRate,
		BulletSpeed:   tuning.BulletSpeed,
		CanMove:       true,
		PrevPos:       pos,
	}
	ecs.Effects[id] = &component.PowerUpEffects{}

	s.log.Info().Int("player", playerNumber).Uint32("tank", uint32(id)).Msg("tank registered")
	s.hasBody(id, ecs.Tanks[id])
	return id
}

// Respawn puts a tank back to its start pose with a clean state.
func (s *TankSystem) Respawn(id types.EntityID, pos utils.Vec2, rotation float64) {
	tank, ok := s.ctx.ECS.Tanks[id]
	if !ok {
		return
	}
	if tank.ActiveBullet != 0 {
		s.bullets.Destroy(tank.ActiveBullet, CauseMatchReset)
	}
	if tr, ok := s.ctx.ECS.Transforms[id]; ok {
		tr.Pos = pos
		tr.Rotation = rotation
	}
	s.stop(id)
	tank.Spin = component.SpinState{}
	tank.CanMove = true
	tank.ActiveBullet = 0
	tank.NextFireTime = 0
	tank.Score = 0
	tank.PrevPos = pos
}

// HandleInput применяет ввод игрока за кадр. Во время вращения ввод
// игнорируется полностью; при активной пуле ввод управляет пулёй.
func (s *TankSystem) HandleInput(id types.EntityID, intent Intent, deltaTime float64) {
	tank, ok := s.ctx.ECS.Tanks[id]
	if !ok || !s.hasBody(id, tank) {
		return
	}
	if tank.Spinning() {
		s.stop(id)
		return
	}
	if tank.ActiveBullet != 0 {
		s.bullets.HandleInput(tank.ActiveBullet, intent.Move, deltaTime)
		s.stop(id)
		return
	}
	if !tank.CanMove {
		return
	}

	tr := s.ctx.ECS.Transforms[id]
	vel := s.ctx.ECS.Velocities[id]

	move := 0.0
	switch {
	case intent.Move.Y > 0:
		move = 1
	case intent.Move.Y < 0:
		move = -s.ctx.Tuning.Tank.ReverseFactor
	}
	turn := 0.0
	switch {
	case intent.Move.X < 0:
		turn = 1 // влево — против часовой
	case intent.Move.X > 0:
		turn = -1
	}

	if turn != 0 {
		tr.Rotation += turn * tank.RotationSpeed * deltaTime
	}
	if vel != nil {
		vel.Vec = tr.Forward().Scale(move * s.effects.MoveSpeed(id, tank.MoveSpeed))
	}

	if intent.Fire {
		s.Fire(id)
	}
}

// Fire стреляет одиночной управляемой пулей или веером, если заряжен
// SpreadShot. Разрывной заряд применяется ко всем пулям выстрела и
// расходуется один раз. Возвращает false, если выстрел не состоялся.
func (s *TankSystem) Fire(id types.EntityID) bool {
	tank, ok := s.ctx.ECS.Tanks[id]
	if !ok || !s.hasBody(id, tank) {
		return false
	}
	if tank.ActiveBullet != 0 || tank.Spinning() {
		return false
	}
	now := s.ctx.Now()
	if now < tank.NextFireTime {
		return false
	}
	tr, ok := s.ctx.ECS.Transforms[id]
	if !ok {
		return false
	}

	firePos := tr.Pos.Add(tr.Forward().Scale(s.ctx.Tuning.Tank.FirePointOffset))
	fx := s.ctx.ECS.Effects[id]
	explosive := fx != nil && fx.Explosive.Active
	radius := 0.0
	if explosive {
		radius = fx.Explosive.Radius
	}

	fired := 0
	spread := fx != nil && fx.SpreadShot.Active
	if spread {
		for _, angle := range SpreadAngles(fx.SpreadShot.BulletCount, s.ctx.Tuning.Spread) {
			bullet := s.bullets.Spawn(BulletSpec{
				OwnerPlayer: tank.PlayerNumber,
				Pos:         firePos,
				Rotation:    tr.Rotation + angle,
				Speed:       tank.BulletSpeed,
			})
			if explosive {
				s.bullets.SetExplosive(bullet, radius)
			}
			fired++
		}
		s.effects.OnSpreadShotFired(id)
	} else {
		bullet := s.bullets.Spawn(BulletSpec{
			OwnerTank:    id,
			OwnerPlayer:  tank.PlayerNumber,
			Pos:          firePos,
			Rotation:     tr.Rotation,
			Speed:        tank.BulletSpeed,
			Controllable: true,
		})
		if explosive {
			s.bullets.SetExplosive(bullet, radius)
		}
		tank.ActiveBullet = bullet
		tank.CanMove = false
		s.stop(id)
		fired = 1
	}
	if explosive {
		s.effects.OnExplosiveBulletFired(id)
	}

	tank.NextFireTime = now + s.effects.FireRate(id, tank.FireRate)
	s.ctx.Presenter.PlaySound(interfaces.SoundFire, firePos)
	s.ctx.dispatch(event.BulletFired, event.FirePayload{
		Tank:      id,
		Player:    tank.PlayerNumber,
		Bullets:   fired,
		Spread:    spread,
		Explosive: explosive,
	})
	s.log.Debug().Int("player", tank.PlayerNumber).Int("bullets", fired).Bool("explosive", explosive).Msg("fire")
	return true
}

// OnBulletDestroyed освобождает слот, если его занимала именно эта пуля.
// Повторный вызов ничего не делает.
func (s *TankSystem) OnBulletDestroyed(id, bullet types.EntityID) {
	tank, ok := s.ctx.ECS.Tanks[id]
	if !ok || tank.ActiveBullet == 0 || tank.ActiveBullet != bullet {
		return
	}
	tank.ActiveBullet = 0
	tank.CanMove = !tank.Spinning()
}

// OnWallContact возвращает танк на последнюю позицию без пересечения.
func (s *TankSystem) OnWallContact(id types.EntityID) {
	tank, ok := s.ctx.ECS.Tanks[id]
	if !ok {
		return
	}
	if tr, ok := s.ctx.ECS.Transforms[id]; ok {
		tr.Pos = tank.PrevPos
	}
	s.stop(id)
}

// Update доводит вращение оглушения и помечает танки без тела.
func (s *TankSystem) Update(deltaTime float64) {
	now := s.ctx.Now()
	for _, id := range sortedIDs(s.ctx.ECS.Tanks) {
		tank := s.ctx.ECS.Tanks[id]
		if !s.hasBody(id, tank) {
			continue
		}
		if tank.Spinning() {
			s.advanceSpin(id, tank, now)
		}
	}
}

// hasBody помечает танк без Transform или Collider инертным; предупреждение пишется один раз.
func (s *TankSystem) hasBody(id types.EntityID, tank *component.Tank) bool {
	if tank.Inert {
		return false
	}
	if err := s.ctx.requireBody(id); err != nil {
		tank.Inert = true
		s.log.Warn().Err(err).Int("player", tank.PlayerNumber).Msg("tank is inert")
		return false
	}
	return true
}

func (s *TankSystem) stop(id types.EntityID) {
	if vel, ok := s.ctx.ECS.Velocities[id]; ok {
		vel.Vec = utils.Vec2{}
	}
}

// SpreadAngles returns the offsets, in degrees from the aim axis, of a fan of
// n bullets: total spread clamp(n*anglePerBullet, minSpread, maxSpread),
// evenly spaced and symmetric.
func SpreadAngles(n int, tuning config.SpreadTuning) []float64 {
	n = utils.ClampInt(n, tuning.MinBullets, tuning.MaxBullets)
	if n < 2 {
		return []float64{0}
	}
	total := utils.Clamp(float64(n)*tuning.AnglePerBullet, tuning.MinSpread, tuning.MaxSpread)
	step := total / float64(n-1)
	start := -total / 2

	angles := make([]float64, n)
	for i := range angles {
		angles[i] = start + step*float64(i)
	}
	return angles
}
