// internal/app/game.go
package app

import (
	"tank-arena/internal/config"
	"tank-arena/internal/defs"
	"tank-arena/internal/entity"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
	"tank-arena/internal/logging"
	"tank-arena/internal/system"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options собирает внешние зависимости игры.
type Options struct {
	Tuning    *config.Tuning
	Catalog   *defs.Catalog
	Log       zerolog.Logger
	Sound     SoundPlayer      // nil — без звука
	Listeners []event.Listener // наблюдатели: история, телеметрия, трансляция
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Context         *system.Context
	Rules           *system.Rules
	StateSystem     *system.StateSystem
	RenderSystem    *system.RenderSystem
	Presenter       *ScenePresenter
	Rng             *utils.PRNGService
	Arena           Arena
	MatchID         uuid.UUID

	players map[int]types.EntityID
	log     zerolog.Logger
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	tuning := opts.Tuning
	if tuning == nil {
		tuning = config.Default()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = defs.DefaultCatalog()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(tuning.Seed),
		players:         make(map[int]types.EntityID),
		log:             logging.For(opts.Log, "game"),
	}
	g.Presenter = NewScenePresenter(ecs, opts.Sound)
	g.Context = system.NewContext(ecs, eventDispatcher, g.Presenter, tuning, catalog, opts.Log)
	g.Rules = system.NewRules(g.Context, g.Rng)
	g.StateSystem = system.NewStateSystem(g.Context, g)
	g.RenderSystem = system.NewRenderSystem(ecs)

	for _, l := range opts.Listeners {
		eventDispatcher.SubscribeAll(l)
	}

	g.Arena = DefaultArena(g.Rng)
	g.Arena.Build(ecs)
	for _, spawn := range g.Arena.Spawns {
		g.players[spawn.Player] = g.Rules.Tanks.Register(spawn.Player, spawn.Pos, spawn.Rotation)
	}

	g.startMatch()
	return g
}

// Update progresses the game state by one frame. intents is keyed by player number.
func (g *Game) Update(deltaTime float64, intents map[int]system.Intent) {
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}

	if !g.StateSystem.InputsBlocked() {
		for _, player := range g.Players() {
			if intent, ok := intents[player]; ok {
				g.Rules.Tanks.HandleInput(g.players[player], intent, dt)
			}
		}
	}

	g.ECS.GameTime += dt
	g.Rules.Step(dt)
	g.StateSystem.Update(dt)
}

// ResetMatch returns the arena to its initial state and starts a new match.
func (g *Game) ResetMatch() {
	g.Rules.Bullets.DestroyAll(system.CauseMatchReset)
	g.Rules.Pickups.DestroyAll()
	for id := range g.ECS.Visuals {
		g.ECS.Destroy(id)
	}
	for _, spawn := range g.Arena.Spawns {
		id, ok := g.players[spawn.Player]
		if !ok {
			continue
		}
		g.Rules.Effects.Clear(id)
		g.Rules.Tanks.Respawn(id, spawn.Pos, spawn.Rotation)
	}
	g.Rules.Scorer.Reset()
	g.Rules.Spawner.Reset()
	g.Presenter.Reset()
	g.startMatch()
}

func (g *Game) startMatch() {
	g.MatchID = uuid.New()
	g.StateSystem.SwitchToPlaying()
	g.log.Info().Str("match", g.MatchID.String()).Msg("match started")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.MatchReset,
		Time: g.ECS.GameTime,
		Data: event.MatchPayload{Match: g.MatchID.String(), Scores: g.Rules.Scorer.Scores()},
	})
}

// Players returns the player numbers in ascending order.
func (g *Game) Players() []int {
	out := make([]int, 0, len(g.players))
	for _, spawn := range g.Arena.Spawns {
		if _, ok := g.players[spawn.Player]; ok {
			out = append(out, spawn.Player)
		}
	}
	return out
}

// TankOf returns the tank entity of a player.
func (g *Game) TankOf(player int) (types.EntityID, bool) {
	id, ok := g.players[player]
	return id, ok
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

// Winner returns the winning player while the round-over screen is shown.
func (g *Game) Winner() int {
	return g.ECS.GameState.Winner
}

var _ interfaces.MatchContext = (*Game)(nil)
