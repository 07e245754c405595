// internal/system/shield.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/types"
)

// ShieldSystem владеет объектами щитов: круглыми коллайдерами, которые
// следуют за танком-владельцем и перехватывают пули раньше танка.
type ShieldSystem struct {
	ctx *Context
}

func NewShieldSystem(ctx *Context) *ShieldSystem {
	return &ShieldSystem{ctx: ctx}
}

// Spawn creates the shield object around tank and returns its id.
func (s *ShieldSystem) Spawn(tank types.EntityID) types.EntityID {
	ecs := s.ctx.ECS
	pos, _ := s.ctx.position(tank)
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Pos: pos}
	ecs.Colliders[id] = &component.Collider{
		Category: component.CategoryShield,
		Radius:   s.ctx.Tuning.Shield.Radius,
		Owner:    tank,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:     config.ShieldColor,
		Radius:    float32(s.ctx.Tuning.Shield.Radius * config.PixelsPerUnit),
		HasStroke: true,
	}
	return id
}

// OwnerOf returns the tank a shield object belongs to.
func (s *ShieldSystem) OwnerOf(shield types.EntityID) (types.EntityID, bool) {
	col, ok := s.ctx.ECS.Colliders[shield]
	if !ok || col.Category != component.CategoryShield || col.Owner == 0 {
		return 0, false
	}
	return col.Owner, true
}

// Update держит щит на позиции владельца и убирает осиротевшие щиты.
func (s *ShieldSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS
	for _, id := range sortedIDs(ecs.Colliders) {
		col := ecs.Colliders[id]
		if col.Category != component.CategoryShield {
			continue
		}
		ownerPos, ok := s.ctx.position(col.Owner)
		if !ok {
			ecs.Destroy(id)
			continue
		}
		if tr, ok := ecs.Transforms[id]; ok {
			tr.Pos = ownerPos
		}
	}
}
