// internal/ui/text.go
package ui

import (
	"image/color"

	"tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — моноширинный шрифт интерфейса.
var Face font.Face = basicfont.Face7x13

// TextWidth returns the pixel width of s in Face.
func TextWidth(s string) int {
	return len(s) * config.TextCharWidth
}

// DrawCentered рисует строку с центром по x.
func DrawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	text.Draw(screen, s, Face, cx-TextWidth(s)/2, y, clr)
}
