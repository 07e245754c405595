// internal/system/movement.go
package system

import "tank-arena/internal/entity"

// MovementSystem интегрирует скорости в позиции. Для танков запоминает
// позицию до шага, чтобы столкновение со стеной могло её вернуть.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if tank, isTank := s.ecs.Tanks[id]; isTank {
			if tank.Inert {
				continue
			}
			tank.PrevPos = tr.Pos
		}
		if b, isBullet := s.ecs.Bullets[id]; isBullet && b.Inert {
			continue
		}
		tr.Pos = tr.Pos.Add(vel.Vec.Scale(deltaTime))
	}
}
