// internal/interfaces/presenter.go
package interfaces

import (
	"tank-arena/internal/defs"
	"tank-arena/internal/types"
	"tank-arena/internal/utils"
)

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

// Effect kinds understood by the presenter.
const (
	EffectExplosion = "explosion"
	EffectPickup    = "pickup"
	EffectShieldPop = "shield_pop"
)

// Sound identifiers. A presenter without a matching clip skips the request.
const (
	SoundFire        = "fire"
	SoundExplosion   = "explosion"
	SoundHit         = "hit"
	SoundShieldBreak = "shield_break"
	SoundPickup      = "pickup"
)

// EffectRequest asks for a short-lived visual at Pos, removed after Lifetime seconds.
type EffectRequest struct {
	Kind     string
	Pos      utils.Vec2
	Scale    float64
	Lifetime float64
}

// Presenter is the output sink of the rules engine: everything the player
// sees or hears is requested through it and nothing is ever read back.
type Presenter interface {
	SpawnEffect(req EffectRequest)
	PlaySound(sound string, pos utils.Vec2)
	ShowScore(playerNumber, score int)
	AttachShield(tank types.EntityID)
	DetachShield(tank types.EntityID)
	// SetIcon shows the glyph of kind over the tank; an empty kind clears it.
	SetIcon(tank types.EntityID, kind defs.PowerUpKind)
	MatchOver(winner int)
}

// NopPresenter discards every request.
type NopPresenter struct{}

func (NopPresenter) SpawnEffect(EffectRequest)                {}
func (NopPresenter) PlaySound(string, utils.Vec2)             {}
func (NopPresenter) ShowScore(int, int)                       {}
func (NopPresenter) AttachShield(types.EntityID)              {}
func (NopPresenter) DetachShield(types.EntityID)              {}
func (NopPresenter) SetIcon(types.EntityID, defs.PowerUpKind) {}
func (NopPresenter) MatchOver(int)                            {}
