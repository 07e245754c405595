package system

import (
	"testing"

	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosionResolve_ExcludesFiringPlayer(t *testing.T) {
	w := newWorld(t)
	own := w.tank(1, 0, 0, 0)
	near := w.tank(2, 2, 0, 0)
	far := w.tank(3, 8, 0, 0)

	targets := w.rules.Explosions.Resolve(utils.Vec2{}, 3, 1)

	assert.Equal(t, []types.EntityID{near}, targets)
	assert.False(t, w.ecs.Tanks[own].Spinning())
	assert.True(t, w.ecs.Tanks[near].Spinning())
	assert.False(t, w.ecs.Tanks[far].Spinning())
	assert.Equal(t, 1, w.rules.Scorer.Score(1))
}

func TestExplosionResolve_EdgeTouchCounts(t *testing.T) {
	w := newWorld(t)
	edge := w.tank(2, 3.4, 0, 0) // tank radius 0.45 reaches into a radius-3 blast

	targets := w.rules.Explosions.Resolve(utils.Vec2{}, 3, 1)

	assert.Equal(t, []types.EntityID{edge}, targets)
}

func TestExplosionResolve_RequestsScaledEffect(t *testing.T) {
	w := newWorld(t)
	center := utils.Vec2{X: 1, Y: 2}

	w.rules.Explosions.Resolve(center, 4, 1)

	require.Len(t, w.out.effects, 1)
	assert.Equal(t, interfaces.EffectRequest{
		Kind:     interfaces.EffectExplosion,
		Pos:      center,
		Scale:    2,
		Lifetime: 3,
	}, w.out.effects[0])
	assert.Equal(t, 1, w.out.count(interfaces.SoundExplosion))

	detonated := w.events(event.ExplosionDetonated)
	require.Len(t, detonated, 1)
	assert.Equal(t, 4.0, detonated[0].Data.(event.ExplosionPayload).Radius)
}

func TestExplosionResolve_ShieldAbsorbs(t *testing.T) {
	w := newWorld(t)
	shielded := w.tank(2, 1, 0, 0)
	require.True(t, w.rules.Effects.ActivateShield(shielded, 8))

	targets := w.rules.Explosions.Resolve(utils.Vec2{}, 3, 1)

	assert.Equal(t, []types.EntityID{shielded}, targets)
	assert.False(t, w.ecs.Tanks[shielded].Spinning())
	assert.False(t, w.ecs.Effects[shielded].Shield.Active)
	assert.Zero(t, w.rules.Scorer.Score(1))
}
