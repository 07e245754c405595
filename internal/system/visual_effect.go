// internal/system/visual_effect.go
package system

import (
	"tank-arena/internal/config"
	"tank-arena/internal/entity"
)

// VisualEffectSystem управляет временными эффектами: взрывами и вспышками подбора.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update анимирует эффекты и удаляет истёкшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for id, visual := range s.ecs.Visuals {
		if now >= visual.ExpiresAt {
			s.ecs.Destroy(id)
			continue
		}

		// Радиус растёт до полного за первую треть жизни, затем эффект тает
		renderable, ok := s.ecs.Renderables[id]
		if !ok {
			continue
		}
		progress := visual.Progress(now)
		grow := progress * 3
		if grow > 1 {
			grow = 1
		}
		full := visual.Scale * 2 * config.PixelsPerUnit
		renderable.Radius = float32(full * grow)
		renderable.Color.A = uint8(float64(config.ExplosionColor.A) * (1 - progress))
	}
}
