// internal/ui/banner.go
package ui

import (
	"image/color"

	"tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var overlayColor = color.RGBA{0, 0, 0, 128}

// Banner — затемнение экрана с заголовком по центру (победа, пауза, меню).
type Banner struct {
	Title    string
	Subtitle string
	Color    color.Color
}

func (b Banner) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
	clr := b.Color
	if clr == nil {
		clr = config.TextLightColor
	}
	cy := config.ScreenHeight / 2
	DrawCentered(screen, b.Title, config.ScreenWidth/2, cy-6, clr)
	if b.Subtitle != "" {
		DrawCentered(screen, b.Subtitle, config.ScreenWidth/2, cy+18, config.TextLightColor)
	}
}
