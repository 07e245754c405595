package system

import (
	"testing"

	"tank-arena/internal/component"
	"tank-arena/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	circle := &component.Collider{Radius: 0.5}
	box := &component.Collider{HalfExtents: utils.Vec2{X: 1, Y: 0.5}}

	tests := []struct {
		name string
		aPos utils.Vec2
		a    *component.Collider
		bPos utils.Vec2
		b    *component.Collider
		want bool
	}{
		{"circles apart", utils.Vec2{}, circle, utils.Vec2{X: 1.01}, circle, false},
		{"circles touching", utils.Vec2{}, circle, utils.Vec2{X: 1}, circle, true},
		{"circle beside box", utils.Vec2{X: 1.4}, circle, utils.Vec2{}, box, true},
		{"circle off box corner", utils.Vec2{X: 1.4, Y: 0.9}, circle, utils.Vec2{}, box, false},
		{"box then circle", utils.Vec2{}, box, utils.Vec2{Y: 0.9}, circle, true},
		{"boxes overlap", utils.Vec2{}, box, utils.Vec2{X: 1.9, Y: 0.9}, box, true},
		{"boxes apart", utils.Vec2{}, box, utils.Vec2{X: 2.1}, box, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aPos, tt.a, tt.bPos, tt.b))
		})
	}
}

func TestCollision_BulletIgnoresPickupsAndBullets(t *testing.T) {
	w := newWorld(t)
	pickup := w.rules.Spawner.Spawn("SHIELD", utils.Vec2{X: 0, Y: 0})
	a := w.rules.Bullets.Spawn(BulletSpec{OwnerPlayer: 1, Pos: utils.Vec2{}})
	b := w.rules.Bullets.Spawn(BulletSpec{OwnerPlayer: 2, Pos: utils.Vec2{X: 0.1}})

	w.step(frame)

	assert.True(t, w.ecs.Alive(pickup))
	assert.True(t, w.ecs.Alive(a))
	assert.True(t, w.ecs.Alive(b))
}

func TestCollision_TankCollectsPickup(t *testing.T) {
	w := newWorld(t)
	tank := w.tank(1, 0, 0, 0)
	pickup := w.rules.Spawner.Spawn("SHIELD", utils.Vec2{X: 0.5})

	w.step(frame)

	assert.False(t, w.ecs.Alive(pickup))
	assert.True(t, w.ecs.Effects[tank].Shield.Active)
}
