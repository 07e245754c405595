// internal/system/state.go
package system

import (
	"tank-arena/internal/component"
	"tank-arena/internal/event"
	"tank-arena/internal/interfaces"
)

// StateSystem ведёт фазы раунда: после победы блокирует ввод и по
// истечении gameOverDelay просит игру начать новый матч.
type StateSystem struct {
	ctx         *Context
	gameContext interfaces.MatchContext
}

func NewStateSystem(ctx *Context, gameContext interfaces.MatchContext) *StateSystem {
	ss := &StateSystem{ctx: ctx, gameContext: gameContext}
	ctx.Dispatcher.Subscribe(event.MatchWon, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.MatchWon {
		return
	}
	payload, _ := e.Data.(event.MatchPayload)
	s.SwitchToRoundOver(payload.Winner)
}

// SwitchToRoundOver freezes every tank and schedules the automatic reset.
func (s *StateSystem) SwitchToRoundOver(winner int) {
	gs := s.ctx.ECS.GameState
	gs.Phase = component.PhaseRoundOver
	gs.Winner = winner
	gs.ResetAt = s.ctx.Now() + s.ctx.Tuning.Match.GameOverDelay
	for id := range s.ctx.ECS.Tanks {
		if vel, ok := s.ctx.ECS.Velocities[id]; ok {
			vel.Vec.X, vel.Vec.Y = 0, 0
		}
	}
}

// SwitchToPlaying is called by the game once a new match has been set up.
func (s *StateSystem) SwitchToPlaying() {
	*s.ctx.ECS.GameState = component.GameState{Phase: component.PhasePlaying}
}

// InputsBlocked reports whether player input must be ignored this frame.
func (s *StateSystem) InputsBlocked() bool {
	return s.ctx.ECS.GameState.Phase != component.PhasePlaying
}

func (s *StateSystem) Update(deltaTime float64) {
	gs := s.ctx.ECS.GameState
	if gs.Phase == component.PhaseRoundOver && s.ctx.Now() >= gs.ResetAt {
		s.gameContext.ResetMatch()
	}
}

func (s *StateSystem) Current() component.MatchPhase {
	return s.ctx.ECS.GameState.Phase
}
