// internal/interfaces/game_context.go
package interfaces

// MatchContext is the part of the game the round-flow system drives.
type MatchContext interface {
	ResetMatch()
}
