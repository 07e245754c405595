// internal/state/pause_state.go
package state

import (
	"tank-arena/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч: часы игры не идут, ввод не читается.
type PauseState struct {
	sm            *StateMachine
	previousState State
	keys          Keys
}

func NewPauseState(sm *StateMachine, prevState State, keys Keys) *PauseState {
	return &PauseState{sm: sm, previousState: prevState, keys: keys}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.keys.JustPressed(keyPause) || s.keys.JustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	ui.Banner{Title: "PAUSED", Subtitle: "P to resume"}.Draw(screen)
}

func (s *PauseState) Exit() {}
