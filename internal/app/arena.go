// internal/app/arena.go
package app

import (
	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/entity"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

// Block — прямоугольник арены (стена или препятствие).
type Block struct {
	Category component.Category
	Center   utils.Vec2
	Half     utils.Vec2
}

// Spawn — стартовая позиция игрока.
type Spawn struct {
	Player   int
	Pos      utils.Vec2
	Rotation float64
}

// Arena describes the static layout of a match.
type Arena struct {
	Blocks []Block
	Spawns []Spawn
}

const (
	obstacleCount  = 2   // пар препятствий, зеркальных относительно центра
	laneHalfHeight = 1.5 // коридор y=0 между танками остаётся свободным
)

// DefaultArena builds the boundary walls, two fixed pillars and a few
// point-symmetric obstacles placed with the match PRNG.
func DefaultArena(rng *utils.PRNGService) Arena {
	hw, hh := config.ArenaHalfWidth, config.ArenaHalfHeight
	t := config.WallThickness / 2

	a := Arena{
		Spawns: []Spawn{
			{Player: 1, Pos: utils.Vec2{X: -hw + 2, Y: 0}, Rotation: -90},
			{Player: 2, Pos: utils.Vec2{X: hw - 2, Y: 0}, Rotation: 90},
		},
	}

	// Периметр
	a.Blocks = append(a.Blocks,
		Block{component.CategoryWall, utils.Vec2{X: 0, Y: hh - t}, utils.Vec2{X: hw, Y: t}},
		Block{component.CategoryWall, utils.Vec2{X: 0, Y: -hh + t}, utils.Vec2{X: hw, Y: t}},
		Block{component.CategoryWall, utils.Vec2{X: -hw + t, Y: 0}, utils.Vec2{X: t, Y: hh}},
		Block{component.CategoryWall, utils.Vec2{X: hw - t, Y: 0}, utils.Vec2{X: t, Y: hh}},
	)

	// Колонны по центру
	a.Blocks = append(a.Blocks,
		Block{component.CategoryObstacle, utils.Vec2{X: 0, Y: 4}, utils.Vec2{X: 0.5, Y: 1}},
		Block{component.CategoryObstacle, utils.Vec2{X: 0, Y: -4}, utils.Vec2{X: 0.5, Y: 1}},
	)

	if rng == nil {
		return a
	}
	for i := 0; i < obstacleCount; i++ {
		half := utils.Vec2{X: rng.Range(0.4, 1), Y: rng.Range(0.4, 1)}
		lo := laneHalfHeight + half.Y
		hi := hh - 1.5 - half.Y
		center := utils.Vec2{X: rng.Range(2, hw-4), Y: rng.Range(lo, hi)}
		if i%2 == 1 {
			center.Y = -center.Y
		}
		a.Blocks = append(a.Blocks,
			Block{component.CategoryObstacle, center, half},
			Block{component.CategoryObstacle, center.Scale(-1), half},
		)
	}
	return a
}

// Build registers every block of the arena as a static collider.
func (a Arena) Build(ecs *entity.ECS) []types.EntityID {
	ids := make([]types.EntityID, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		id := ecs.NewEntity()
		ecs.Transforms[id] = &component.Transform{Pos: b.Center}
		ecs.Colliders[id] = &component.Collider{Category: b.Category, HalfExtents: b.Half}
		ids = append(ids, id)
	}
	return ids
}
