// internal/state/game_state.go
package state

import (
	"fmt"

	"tank-arena/internal/app"
	"tank-arena/internal/component"
	"tank-arena/internal/config"
	"tank-arena/internal/system"
	"tank-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState — идущий матч: опрос клавиатуры, шаг правил, отрисовка сцены и HUD.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	keys      Keys
	panels    map[int]*ui.ScorePanel
	indicator *ui.PowerUpIndicator
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	return &GameState{
		sm:   sm,
		game: game,
		keys: ebitenKeys{},
		panels: map[int]*ui.ScorePanel{
			1: ui.NewScorePanel(config.IndicatorOffsetX, 12, false),
			2: ui.NewScorePanel(config.ScreenWidth-config.IndicatorOffsetX, 12, true),
		},
		indicator: ui.NewPowerUpIndicator(config.IndicatorRadius),
	}
}

// Game returns the running match.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.keys.JustPressed(keyPause) {
		g.sm.SetState(NewPauseState(g.sm, g, g.keys))
		return
	}
	if g.keys.JustPressed(keyReset) {
		g.game.ResetMatch()
	}

	intents := make(map[int]system.Intent, len(DefaultBindings))
	for _, player := range g.game.Players() {
		if b, ok := DefaultBindings[player]; ok {
			intents[player] = ReadIntent(g.keys, b)
		}
	}
	g.game.Update(deltaTime, intents)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)

	now := g.game.GetGameTime()
	toWin := g.game.Context.Tuning.Match.ScoreToWin
	for _, player := range g.game.Players() {
		if panel, ok := g.panels[player]; ok {
			panel.Draw(screen, player, g.game.Presenter.Score(player), toWin)
		}

		// Значок бонуса над танком
		tank, _ := g.game.TankOf(player)
		kind, ok := g.game.Presenter.Icon(tank)
		tr, hasPos := g.game.ECS.Transforms[tank]
		if !ok || !hasPos {
			continue
		}
		x, y := system.WorldToScreen(tr.Pos)
		g.indicator.Draw(screen, player, kind, x, y-28, now, g.game.Context.Catalog)
	}

	if g.game.StateSystem.Current() == component.PhaseRoundOver {
		winner := g.game.Winner()
		ui.Banner{
			Title:    fmt.Sprintf("PLAYER %d WINS", winner),
			Subtitle: "new match starting... (R to restart now)",
			Color:    config.PlayerColor(winner),
		}.Draw(screen)
	}
}

func (g *GameState) Exit() {}
