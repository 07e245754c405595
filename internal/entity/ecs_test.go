package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tank-arena/internal/component"
)

func TestNewEntity_Monotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)
}

func TestDestroy_Idempotent(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{}
	ecs.Bullets[id] = &component.Bullet{}
	assert.True(t, ecs.Alive(id))

	ecs.Destroy(id)
	ecs.Destroy(id)

	assert.False(t, ecs.Alive(id))
	assert.Empty(t, ecs.Bullets)
}

func TestTankByPlayer(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Tanks[id] = &component.Tank{PlayerNumber: 2}

	got, tank, ok := ecs.TankByPlayer(2)
	assert.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, 2, tank.PlayerNumber)

	_, _, ok = ecs.TankByPlayer(1)
	assert.False(t, ok)
}
