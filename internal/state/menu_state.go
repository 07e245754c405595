// internal/state/menu_state.go
package state

import (
	"fmt"

	"tank-arena/internal/app"
	"tank-arena/internal/config"
	"tank-arena/internal/history"
	"tank-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const recentMatches = 3

// Records — прошлые матчи для заставки; *history.Store подходит.
type Records interface {
	Wins() (map[int]int, error)
	Recent(limit int) ([]history.Match, error)
}

// MenuState — заставка с подсказкой по управлению и итогами прошлых матчей.
type MenuState struct {
	sm      *StateMachine
	opts    app.Options
	keys    Keys
	records Records
	summary []string
}

// NewMenuState: records may be nil when history is off.
func NewMenuState(sm *StateMachine, opts app.Options, records Records) *MenuState {
	return &MenuState{sm: sm, opts: opts, keys: ebitenKeys{}, records: records}
}

func (m *MenuState) Enter() {
	m.summary = Summary(m.records, m.opts.Log)
}

// Summary formats the all-time win tally and the latest results.
func Summary(records Records, log zerolog.Logger) []string {
	if records == nil {
		return nil
	}
	wins, err := records.Wins()
	if err != nil {
		log.Warn().Err(err).Msg("load win tally")
		return nil
	}
	out := []string{fmt.Sprintf("all-time wins  P1 %d : %d P2", wins[1], wins[2])}

	recent, err := records.Recent(recentMatches)
	if err != nil {
		log.Warn().Err(err).Msg("load recent matches")
		return out
	}
	for _, match := range recent {
		out = append(out, describeMatch(match))
	}
	return out
}

func describeMatch(m history.Match) string {
	date := m.StartedAt.Format("Jan 2 15:04")
	switch {
	case m.Winner > 0:
		return fmt.Sprintf("%s  P%d won, %d shots", date, m.Winner, m.Shots)
	case m.EndedAt != nil:
		return fmt.Sprintf("%s  reset, %d shots", date, m.Shots)
	default:
		return fmt.Sprintf("%s  unfinished, %d shots", date, m.Shots)
	}
}

func (m *MenuState) Update(deltaTime float64) {
	if m.keys.JustPressed(keyStart) {
		gs := NewGameState(m.sm, app.NewGame(m.opts))
		gs.keys = m.keys
		m.sm.SetState(gs)
	}
}

var controls = []string{
	"P1: W/S move, A/D turn, SPACE fire",
	"P2: arrows move/turn, ENTER fire",
	"while your bullet flies, movement keys steer it",
	"P pause, R restart",
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.Banner{Title: "TANK ARENA", Subtitle: "press SPACE to start"}.Draw(screen)
	y := config.ScreenHeight/2 + 60
	for _, line := range controls {
		ui.DrawCentered(screen, line, config.ScreenWidth/2, y, config.TextLightColor)
		y += 18
	}
	y += 12
	for _, line := range m.summary {
		ui.DrawCentered(screen, line, config.ScreenWidth/2, y, config.WallColor)
		y += 18
	}
}

func (m *MenuState) Exit() {}
