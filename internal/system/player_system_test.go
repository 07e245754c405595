package system

import (
	"bytes"
	"strings"
	"testing"

	"tank-arena/internal/config"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTankFire_SingleBulletFreezesMovement(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)

	require.True(t, w.rules.Tanks.Fire(tank))

	state := w.ecs.Tanks[tank]
	require.NotZero(t, state.ActiveBullet)
	assert.False(t, state.CanMove)
	b := w.ecs.Bullets[state.ActiveBullet]
	assert.True(t, b.Controllable)
	assert.Equal(t, tank, b.OwnerTank)
	assert.InDelta(t, 1.0, w.ecs.Transforms[state.ActiveBullet].Pos.Y, 1e-9, "bullet starts at the fire point")
	assert.Equal(t, 1, w.out.count(interfaces.SoundFire))
}

func TestTankFire_IgnoredWhileSlotOccupied(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	require.True(t, w.rules.Tanks.Fire(tank))
	first := w.ecs.Tanks[tank].ActiveBullet

	w.ecs.GameTime += 2
	assert.False(t, w.rules.Tanks.Fire(tank))
	assert.Equal(t, first, w.ecs.Tanks[tank].ActiveBullet)
	assert.Len(t, w.ecs.Bullets, 1)
}

func TestTankFire_RespectsFireRate(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	w.rules.Effects.ActivateSpreadShot(tank, 3)
	require.True(t, w.rules.Tanks.Fire(tank))

	w.ecs.GameTime += 0.25
	assert.False(t, w.rules.Tanks.Fire(tank))

	w.ecs.GameTime += 0.25
	assert.True(t, w.rules.Tanks.Fire(tank))
}

func TestTankFire_IgnoredWhileSpinning(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(2, 0, 0, 0)
	require.True(t, w.rules.Tanks.TakeDamage(tank, HitInfo{Shooter: 1}))

	assert.False(t, w.rules.Tanks.Fire(tank))
	assert.Empty(t, w.ecs.Bullets)
}

func TestTankFire_SpreadShot(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 30)
	w.rules.Effects.ActivateSpreadShot(tank, 5)

	require.True(t, w.rules.Tanks.Fire(tank))

	state := w.ecs.Tanks[tank]
	assert.Zero(t, state.ActiveBullet, "spread fire does not occupy the slot")
	assert.True(t, state.CanMove, "spread fire does not freeze the tank")
	assert.False(t, w.ecs.Effects[tank].SpreadShot.Active)
	require.Len(t, w.ecs.Bullets, 5)

	var rotations []float64
	for _, id := range sortedIDs(w.ecs.Bullets) {
		b := w.ecs.Bullets[id]
		assert.False(t, b.Controllable)
		assert.Zero(t, b.OwnerTank)
		assert.Equal(t, 1, b.OwnerPlayer)
		rotations = append(rotations, w.ecs.Transforms[id].Rotation)
	}
	// 5 * 15 = 75 degrees total, 18.75 between bullets
	assert.InDeltaSlice(t, []float64{-7.5, 11.25, 30, 48.75, 67.5}, rotations, 1e-9)

	fired := w.events(event.BulletFired)
	require.Len(t, fired, 1)
	assert.Equal(t, event.FirePayload{Tank: tank, Player: 1, Bullets: 5, Spread: true}, fired[0].Data)
}

func TestTankFire_ExplosiveChargeAppliesToWholeSpread(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	w.rules.Effects.ActivateSpreadShot(tank, 3)
	w.rules.Effects.ActivateExplosiveBomb(tank, 2.5)

	require.True(t, w.rules.Tanks.Fire(tank))

	require.Len(t, w.ecs.Bullets, 3)
	for _, b := range w.ecs.Bullets {
		assert.True(t, b.Explosive)
		assert.Equal(t, 2.5, b.ExplosionRadius)
	}
	fx := w.ecs.Effects[tank]
	assert.False(t, fx.Explosive.Active)
	assert.False(t, fx.SpreadShot.Active)

	// next shot is a plain single bullet
	w.ecs.GameTime += 1
	require.True(t, w.rules.Tanks.Fire(tank))
	assert.False(t, w.ecs.Bullets[w.ecs.Tanks[tank].ActiveBullet].Explosive)
}

func TestTankFire_ExplosiveSingleBullet(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	w.rules.Effects.ActivateExplosiveBomb(tank, 3)

	require.True(t, w.rules.Tanks.Fire(tank))

	b := w.ecs.Bullets[w.ecs.Tanks[tank].ActiveBullet]
	assert.True(t, b.Explosive)
	assert.True(t, b.Controllable)
	assert.False(t, w.ecs.Effects[tank].Explosive.Active)
}

func TestTankTakeDamage_SpinsAndPurgesBullet(t *testing.T) {
	w := newWorld(t)
	victim := w.tank(2, 0, 0, 0)
	require.True(t, w.rules.Tanks.Fire(victim))
	bullet := w.ecs.Tanks[victim].ActiveBullet

	require.True(t, w.rules.Tanks.TakeDamage(victim, HitInfo{Shooter: 1}))

	state := w.ecs.Tanks[victim]
	assert.True(t, state.Spinning())
	assert.False(t, state.CanMove)
	assert.Zero(t, state.ActiveBullet)
	assert.False(t, w.ecs.Alive(bullet))
	assert.Equal(t, []string{CauseOwnerHit}, w.destroyedCauses())
	assert.Equal(t, utils.Vec2{}, w.ecs.Velocities[victim].Vec)
}

func TestTankTakeDamage_WhileSpinningDoesNotRestartSpin(t *testing.T) {
	w := newWorld(t)
	victim := w.tank(2, 0, 0, 0)
	require.True(t, w.rules.Tanks.TakeDamage(victim, HitInfo{Shooter: 1}))
	endsAt := w.ecs.Tanks[victim].Spin.EndsAt

	w.run(0.5)
	require.True(t, w.rules.Tanks.TakeDamage(victim, HitInfo{Shooter: 1}))

	assert.Equal(t, endsAt, w.ecs.Tanks[victim].Spin.EndsAt)
	assert.Equal(t, 2, w.rules.Scorer.Score(1))
}

func TestTankSpin_EndsWithExactRotation(t *testing.T) {
	w := newWorld(t)
	victim := w.tank(2, 0, 0, 45)
	require.True(t, w.rules.Tanks.TakeDamage(victim, HitInfo{Shooter: 1}))

	w.step(0.3)
	assert.InDelta(t, 45+0.3*1080, w.ecs.Transforms[victim].Rotation, 1e-6)

	w.step(0.9)
	assert.Equal(t, 45+1080.0, w.ecs.Transforms[victim].Rotation)
	assert.False(t, w.ecs.Tanks[victim].Spinning())
	assert.True(t, w.ecs.Tanks[victim].CanMove)
}

func TestTankHandleInput_Movement(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: 1}}, frame)
	assert.InDelta(t, 5.0, w.ecs.Velocities[tank].Vec.Y, 1e-9)

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: -1}}, frame)
	assert.InDelta(t, -2.5, w.ecs.Velocities[tank].Vec.Y, 1e-9)

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{X: -1}}, 0.5)
	assert.InDelta(t, 50.0, w.ecs.Transforms[tank].Rotation, 1e-9, "left turns counter-clockwise")
	assert.Equal(t, utils.Vec2{}, w.ecs.Velocities[tank].Vec)

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{X: 1}}, 1)
	assert.InDelta(t, -50.0, w.ecs.Transforms[tank].Rotation, 1e-9)
}

func TestTankHandleInput_SteersActiveBullet(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	w.rules.Tanks.HandleInput(tank, Intent{Fire: true}, frame)
	bullet := w.ecs.Tanks[tank].ActiveBullet
	require.NotZero(t, bullet)

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{X: 1, Y: 1}}, frame)

	assert.Equal(t, utils.Vec2{}, w.ecs.Velocities[tank].Vec)
	assert.Equal(t, 0.0, w.ecs.Transforms[tank].Rotation)
	assert.Greater(t, w.ecs.Velocities[bullet].Vec.X, 0.0)
}

func TestTankHandleInput_IgnoredWhileSpinning(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(2, 0, 0, 0)
	require.True(t, w.rules.Tanks.TakeDamage(tank, HitInfo{Shooter: 1}))

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: 1}, Fire: true}, frame)

	assert.Equal(t, utils.Vec2{}, w.ecs.Velocities[tank].Vec)
	assert.Empty(t, w.ecs.Bullets)
}

func TestTankBuffs(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	require.True(t, w.rules.Effects.ActivateSpeedBoost(tank, 5, 2))
	require.True(t, w.rules.Effects.ActivateRapidFire(tank, 5, 2))

	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: 1}}, frame)
	assert.InDelta(t, 10.0, w.ecs.Velocities[tank].Vec.Y, 1e-9)

	w.rules.Effects.ActivateSpreadShot(tank, 3)
	require.True(t, w.rules.Tanks.Fire(tank))
	assert.InDelta(t, 0.25, w.ecs.Tanks[tank].NextFireTime, 1e-9)

	w.ecs.GameTime = 5
	w.rules.Effects.Update(0)
	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: 1}}, frame)
	assert.InDelta(t, 5.0, w.ecs.Velocities[tank].Vec.Y, 1e-9)
}

func TestTankWallContact_PushesBack(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	w.wall(0, 1.2, 5, 0.5)

	for i := 0; i < 30; i++ {
		w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: 1}}, frame)
		w.step(frame)
	}

	assert.Less(t, w.ecs.Transforms[tank].Pos.Y, 0.26, "tank must not enter the wall")
	assert.Greater(t, w.ecs.Transforms[tank].Pos.Y, 0.1)
}

func TestTankWithoutBody_IsInert(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	delete(w.ecs.Colliders, tank)

	w.step(frame)

	assert.True(t, w.ecs.Tanks[tank].Inert)
	assert.False(t, w.rules.Tanks.Fire(tank))
}

func TestTankLosesBodyBeforeFirstTick(t *testing.T) {
	var buf bytes.Buffer
	w := newWorldLogged(t, testTuning(), newFakePresenter(), zerolog.New(&buf))
	tank := w.tank(1, 0, 0, 0)
	delete(w.ecs.Colliders, tank)

	// выстрел до первого кадра уже видит, что тела нет
	assert.False(t, w.rules.Tanks.Fire(tank))
	assert.True(t, w.ecs.Tanks[tank].Inert)
	assert.Empty(t, w.ecs.Bullets)

	pos := w.ecs.Transforms[tank].Pos
	w.rules.Tanks.HandleInput(tank, Intent{Move: utils.Vec2{Y: 1}}, frame)
	w.step(frame)
	w.step(frame)

	assert.Equal(t, pos, w.ecs.Transforms[tank].Pos)
	assert.Equal(t, 1, strings.Count(buf.String(), "tank is inert"))
}

func TestSpreadAngles_Clamps(t *testing.T) {
	tuning := config.Default().Spread

	assert.InDeltaSlice(t, []float64{-22.5, 0, 22.5}, SpreadAngles(3, tuning), 1e-9)
	assert.InDeltaSlice(t, []float64{-22.5, 0, 22.5}, SpreadAngles(1, tuning), 1e-9)
	assert.Len(t, SpreadAngles(12, tuning), 7)
	angles := SpreadAngles(7, tuning)
	assert.InDelta(t, -45.0, angles[0], 1e-9)
	assert.InDelta(t, 45.0, angles[6], 1e-9)
}
