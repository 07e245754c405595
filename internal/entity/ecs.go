// internal/entity/ecs.go
package entity

import (
	"tank-arena/internal/component"
	"tank-arena/internal/types"
)

// ECS — реестр сущностей. Каждое хранилище — карта по EntityID.
// Уничтожение сущности удаляет её из всех хранилищ синхронно, поэтому
// таймеры и дедлайны, живущие в компонентах, отменяются вместе с ней.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Transforms  map[types.EntityID]*component.Transform
	Velocities  map[types.EntityID]*component.Velocity
	Colliders   map[types.EntityID]*component.Collider
	Renderables map[types.EntityID]*component.Renderable
	Tanks       map[types.EntityID]*component.Tank
	Bullets     map[types.EntityID]*component.Bullet
	Effects     map[types.EntityID]*component.PowerUpEffects
	PowerUps    map[types.EntityID]*component.PowerUp
	Visuals     map[types.EntityID]*component.Visual
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Tanks:       make(map[types.EntityID]*component.Tank),
		Bullets:     make(map[types.EntityID]*component.Bullet),
		Effects:     make(map[types.EntityID]*component.PowerUpEffects),
		PowerUps:    make(map[types.EntityID]*component.PowerUp),
		Visuals:     make(map[types.EntityID]*component.Visual),
		GameState:   &component.GameState{Phase: component.PhasePlaying},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Alive reports whether any component is still registered for id.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	if _, ok := ecs.Transforms[id]; ok {
		return true
	}
	if _, ok := ecs.Colliders[id]; ok {
		return true
	}
	if _, ok := ecs.Tanks[id]; ok {
		return true
	}
	if _, ok := ecs.Bullets[id]; ok {
		return true
	}
	_, ok := ecs.Visuals[id]
	return ok
}

// Destroy removes id from every store. Calling it twice is a no-op.
func (ecs *ECS) Destroy(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Colliders, id)
	delete(ecs.Renderables, id)
	delete(ecs.Tanks, id)
	delete(ecs.Bullets, id)
	delete(ecs.Effects, id)
	delete(ecs.PowerUps, id)
	delete(ecs.Visuals, id)
}

// TankByPlayer finds the tank entity controlled by playerNumber.
func (ecs *ECS) TankByPlayer(playerNumber int) (types.EntityID, *component.Tank, bool) {
	for id, tank := range ecs.Tanks {
		if tank.PlayerNumber == playerNumber {
			return id, tank, true
		}
	}
	return 0, nil, false
}
