// internal/state/input.go
package state

import (
	"tank-arena/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys — опрос клавиатуры за текущий кадр.
type Keys interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Bindings — раскладка одного игрока.
type Bindings struct {
	Forward, Back, Left, Right ebiten.Key
	Fire                       ebiten.Key
}

// DefaultBindings: игрок 1 — WASD + пробел, игрок 2 — стрелки + Enter.
var DefaultBindings = map[int]Bindings{
	1: {Forward: ebiten.KeyW, Back: ebiten.KeyS, Left: ebiten.KeyA, Right: ebiten.KeyD, Fire: ebiten.KeySpace},
	2: {Forward: ebiten.KeyArrowUp, Back: ebiten.KeyArrowDown, Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Fire: ebiten.KeyEnter},
}

const (
	keyPause = ebiten.KeyP
	keyReset = ebiten.KeyR
	keyStart = ebiten.KeySpace
)

// ReadIntent snapshots one player's input. Opposite keys cancel out and
// fire reacts to the press edge only.
func ReadIntent(keys Keys, b Bindings) system.Intent {
	var intent system.Intent
	if keys.Pressed(b.Forward) {
		intent.Move.Y++
	}
	if keys.Pressed(b.Back) {
		intent.Move.Y--
	}
	if keys.Pressed(b.Right) {
		intent.Move.X++
	}
	if keys.Pressed(b.Left) {
		intent.Move.X--
	}
	intent.Fire = keys.JustPressed(b.Fire)
	return intent
}
