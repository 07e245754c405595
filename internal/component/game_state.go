// internal/component/game_state.go
package component

// MatchPhase — фаза раунда.
type MatchPhase int

const (
	PhasePlaying MatchPhase = iota
	PhaseRoundOver
)

// GameState holds round-flow state owned by the app layer.
type GameState struct {
	Phase   MatchPhase
	Winner  int
	ResetAt float64 // время автоматического сброса после победы
}
