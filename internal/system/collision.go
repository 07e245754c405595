// internal/system/collision.go
package system

import (
	"slices"

	"tank-arena/internal/component"
	"tank-arena/internal/types"
)

type contact struct {
	id       types.EntityID
	category component.Category
}

// CollisionSystem ищет пересечения и доставляет их правилам: пуля —
// BulletSystem.OnCollision (контакты со щитами первыми), танк — подбор
// бонусов и упор в стены.
type CollisionSystem struct {
	ctx     *Context
	bullets *BulletSystem
	tanks   *TankSystem
	pickups *PickupSystem
}

func NewCollisionSystem(ctx *Context, bullets *BulletSystem, tanks *TankSystem, pickups *PickupSystem) *CollisionSystem {
	return &CollisionSystem{ctx: ctx, bullets: bullets, tanks: tanks, pickups: pickups}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.resolveBullets()
	s.resolveTanks()
}

func (s *CollisionSystem) resolveBullets() {
	ecs := s.ctx.ECS
	for _, id := range sortedIDs(ecs.Bullets) {
		b, ok := ecs.Bullets[id]
		if !ok || b.Resolved || b.Inert {
			continue
		}
		contacts := s.contactsOf(id, func(c component.Category) bool {
			return c != component.CategoryBullet && c != component.CategoryPowerUp
		})
		slices.SortFunc(contacts, compareByCategory(component.CategoryShield))

		for _, c := range contacts {
			if _, alive := ecs.Colliders[c.id]; !alive {
				continue
			}
			if s.bullets.OnCollision(id, c.id, c.category) {
				break
			}
		}
	}
}

func (s *CollisionSystem) resolveTanks() {
	ecs := s.ctx.ECS
	for _, id := range sortedIDs(ecs.Tanks) {
		if ecs.Tanks[id].Inert {
			continue
		}
		blocked := false
		for _, c := range s.contactsOf(id, nil) {
			switch c.category {
			case component.CategoryPowerUp:
				s.pickups.Collect(id, c.id)
			case component.CategoryWall, component.CategoryObstacle, component.CategoryBarrier, component.CategoryTank:
				blocked = true
			}
		}
		if blocked {
			s.tanks.OnWallContact(id)
		}
	}
}

// contactsOf returns the colliders overlapping id, filtered by category.
func (s *CollisionSystem) contactsOf(id types.EntityID, accept func(component.Category) bool) []contact {
	ecs := s.ctx.ECS
	tr, ok := ecs.Transforms[id]
	if !ok {
		return nil
	}
	col, ok := ecs.Colliders[id]
	if !ok {
		return nil
	}

	var out []contact
	for _, otherID := range sortedIDs(ecs.Colliders) {
		if otherID == id {
			continue
		}
		other := ecs.Colliders[otherID]
		if accept != nil && !accept(other.Category) {
			continue
		}
		// собственный щит танка не мешает ему двигаться
		if other.Category == component.CategoryShield && other.Owner == id {
			continue
		}
		otherTr, ok := ecs.Transforms[otherID]
		if !ok {
			continue
		}
		if Overlaps(tr.Pos, col, otherTr.Pos, other) {
			out = append(out, contact{id: otherID, category: other.Category})
		}
	}
	return out
}
