// internal/ui/powerup_indicator.go
package ui

import (
	"math"

	"tank-arena/internal/config"
	"tank-arena/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PowerUpIndicator рисует значок активного бонуса над танком.
// Значок слегка пульсирует после смены.
type PowerUpIndicator struct {
	Radius    float32
	changedAt map[int]float64
	last      map[int]defs.PowerUpKind
}

func NewPowerUpIndicator(radius float32) *PowerUpIndicator {
	return &PowerUpIndicator{
		Radius:    radius,
		changedAt: make(map[int]float64),
		last:      make(map[int]defs.PowerUpKind),
	}
}

// Glyph returns the one-letter label of a power-up kind.
func Glyph(kind defs.PowerUpKind) string {
	switch kind {
	case defs.PowerUpSpreadShot:
		return "W"
	case defs.PowerUpShield:
		return "S"
	case defs.PowerUpExplosiveBomb:
		return "B"
	case defs.PowerUpSpeedBoost:
		return ">"
	case defs.PowerUpRapidFire:
		return "R"
	}
	return "?"
}

// Scale returns the pulse factor of the icon at time now.
func (i *PowerUpIndicator) Scale(player int, kind defs.PowerUpKind, now float64) float64 {
	if i.last[player] != kind {
		i.last[player] = kind
		i.changedAt[player] = now
	}
	elapsed := now - i.changedAt[player]
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Draw рисует значок в экранной точке (x, y).
func (i *PowerUpIndicator) Draw(screen *ebiten.Image, player int, kind defs.PowerUpKind, x, y float32, now float64, catalog *defs.Catalog) {
	clr := config.TextLightColor
	if def, ok := catalog.Get(kind); ok {
		clr = def.Visuals.Color
	}
	r := i.Radius * float32(i.Scale(player, kind, now))
	vector.DrawFilledCircle(screen, x, y, r, clr, true)
	vector.StrokeCircle(screen, x, y, r, borderWidth, borderColor, true)
	DrawCentered(screen, Glyph(kind), int(x), int(y)+4, config.BackgroundColor)
}
