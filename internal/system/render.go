// internal/system/render.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// WorldToScreen переводит мировые координаты (y вверх) в пиксели экрана.
func WorldToScreen(p utils.Vec2) (float32, float32) {
	x := float64(config.ScreenWidth)/2 + p.X*config.PixelsPerUnit
	y := float64(config.ScreenHeight)/2 - p.Y*config.PixelsPerUnit
	return float32(x), float32(y)
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала стены и препятствия
	for _, id := range sortedIDs(s.ecs.Colliders) {
		col := s.ecs.Colliders[id]
		if !col.IsBox() {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		clr := config.WallColor
		if col.Category != component.CategoryWall {
			clr = config.ObstacleColor
		}
		x, y := WorldToScreen(utils.Vec2{X: tr.Pos.X - col.HalfExtents.X, Y: tr.Pos.Y + col.HalfExtents.Y})
		w := float32(col.HalfExtents.X * 2 * config.PixelsPerUnit)
		h := float32(col.HalfExtents.Y * 2 * config.PixelsPerUnit)
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	// Затем отрисовка сущностей с Renderable
	for _, id := range sortedIDs(s.ecs.Renderables) {
		render := s.ecs.Renderables[id]
		tr, hasPos := s.ecs.Transforms[id]
		if !hasPos {
			continue
		}
		if col, ok := s.ecs.Colliders[id]; ok && col.IsBox() {
			continue
		}
		x, y := WorldToScreen(tr.Pos)

		if col, ok := s.ecs.Colliders[id]; ok && col.Category == component.CategoryShield {
			vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
			vector.StrokeCircle(screen, x, y, render.Radius, 2, config.TextLightColor, true)
			continue
		}
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, config.StrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)

		// Ствол танка
		if _, isTank := s.ecs.Tanks[id]; isTank {
			tip := tr.Pos.Add(tr.Forward().Scale(s.barrelLength(id)))
			tx, ty := WorldToScreen(tip)
			vector.StrokeLine(screen, x, y, tx, ty, 4, config.StrokeColor, true)
		}
	}
}

func (s *RenderSystem) barrelLength(id types.EntityID) float64 {
	if col, ok := s.ecs.Colliders[id]; ok {
		return col.Radius * 1.6
	}
	return 0.7
}
