// internal/system/spawner.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/defs"
	"tank-arena/internal/event"
	"tank-arena/internal/logging"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/rs/zerolog"
)

// PowerUpSpawner раз в spawnInterval выкладывает бонус на свободное место,
// пока на арене меньше maxPowerUps бонусов.
type PowerUpSpawner struct {
	ctx         *Context
	rng         *utils.PRNGService
	nextSpawnAt float64
	log         zerolog.Logger
}

func NewPowerUpSpawner(ctx *Context, rng *utils.PRNGService) *PowerUpSpawner {
	return &PowerUpSpawner{
		ctx:         ctx,
		rng:         rng,
		nextSpawnAt: ctx.Now() + ctx.Tuning.Spawner.SpawnInterval,
		log:         logging.For(ctx.Log, "spawner"),
	}
}

// Reset restarts the spawn timer from now.
func (s *PowerUpSpawner) Reset() {
	s.nextSpawnAt = s.ctx.Now() + s.ctx.Tuning.Spawner.SpawnInterval
}

func (s *PowerUpSpawner) Update(deltaTime float64) {
	tuning := s.ctx.Tuning.Spawner
	if !tuning.Enabled {
		return
	}
	now := s.ctx.Now()
	if now < s.nextSpawnAt {
		return
	}
	s.nextSpawnAt = now + tuning.SpawnInterval

	if len(s.ctx.ECS.PowerUps) >= tuning.MaxPowerUps {
		return
	}
	if _, ok := s.TrySpawn(); !ok {
		s.log.Debug().Msg("no free spot for power-up")
	}
}

// TrySpawn выбирает вид по весу и ищет свободную точку за maxAttempts попыток.
func (s *PowerUpSpawner) TrySpawn() (types.EntityID, bool) {
	kind, ok := s.rng.ChooseWeighted(s.ctx.Catalog.All())
	if !ok {
		return 0, false
	}
	def, ok := s.ctx.Catalog.Get(kind)
	if !ok {
		return 0, false
	}

	tuning := s.ctx.Tuning.Spawner
	for attempt := 0; attempt < tuning.MaxAttempts; attempt++ {
		pos := utils.Vec2{
			X: s.rng.Range(tuning.AreaMinX, tuning.AreaMaxX),
			Y: s.rng.Range(tuning.AreaMinY, tuning.AreaMaxY),
		}
		if !s.IsClear(pos, tuning.SpawnCheckRadius) {
			continue
		}
		return s.Spawn(def.Kind, pos), true
	}
	return 0, false
}

// Spawn places a pickup of kind at pos with the catalog parameters.
func (s *PowerUpSpawner) Spawn(kind defs.PowerUpKind, pos utils.Vec2) types.EntityID {
	ecs := s.ctx.ECS
	def, _ := s.ctx.Catalog.Get(kind)

	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Pos: pos}
	ecs.Colliders[id] = &component.Collider{Category: component.CategoryPowerUp, Radius: config.PowerUpRadius}
	ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.PowerUpRadius * config.PixelsPerUnit),
		HasStroke: true,
	}
	expires := 0.0
	if s.ctx.Tuning.Spawner.PowerUpLifetime > 0 {
		expires = s.ctx.Now() + s.ctx.Tuning.Spawner.PowerUpLifetime
	}
	ecs.PowerUps[id] = &component.PowerUp{
		Kind:      kind,
		Duration:  def.Duration,
		Strength:  def.Strength,
		ExpiresAt: expires,
	}

	s.ctx.dispatch(event.PowerUpSpawned, event.PowerUpPayload{PowerUp: id, Kind: kind, Pos: pos})
	s.log.Debug().Str("kind", string(kind)).Float64("x", pos.X).Float64("y", pos.Y).Msg("power-up spawned")
	return id
}

// IsClear reports whether no solid collider touches a circle at pos.
func (s *PowerUpSpawner) IsClear(pos utils.Vec2, radius float64) bool {
	for id, col := range s.ctx.ECS.Colliders {
		if col.Category == component.CategoryBullet {
			continue
		}
		tr, ok := s.ctx.ECS.Transforms[id]
		if !ok {
			continue
		}
		if CircleTouches(pos, radius, tr.Pos, col) {
			return false
		}
	}
	return true
}
