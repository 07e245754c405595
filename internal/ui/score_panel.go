// internal/ui/score_panel.go
package ui

import (
	"fmt"
	"image/color"

	"tank-arena/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	pipWidth    = 14
	pipHeight   = 10
	pipGap      = 6
	borderWidth = 1
	labelHeight = 14
)

var borderColor = color.White

// ScorePanel отображает счёт игрока: подпись и ряд ячеек до победного счёта.
type ScorePanel struct {
	X, Y       float32
	AlignRight bool // панель второго игрока растёт справа налево
}

func NewScorePanel(x, y float32, alignRight bool) *ScorePanel {
	return &ScorePanel{X: x, Y: y, AlignRight: alignRight}
}

// PipX returns the left edge of pip i.
func (p *ScorePanel) PipX(i int) float32 {
	offset := float32(i) * (pipWidth + pipGap)
	if p.AlignRight {
		return p.X - offset - pipWidth
	}
	return p.X + offset
}

// Draw рисует подпись и ячейки; заполнено min(score, toWin) ячеек.
func (p *ScorePanel) Draw(screen *ebiten.Image, player, score, toWin int) {
	clr := config.PlayerColor(player)

	label := fmt.Sprintf("P%d  %d", player, score)
	lx := int(p.X)
	if p.AlignRight {
		lx -= TextWidth(label)
	}
	text.Draw(screen, label, Face, lx, int(p.Y)+labelHeight-3, clr)

	y := p.Y + labelHeight
	for i := 0; i < toWin; i++ {
		x := p.PipX(i)
		vector.StrokeRect(screen, x, y, pipWidth, pipHeight, borderWidth, borderColor, true)
		if i < score {
			vector.DrawFilledRect(screen, x+borderWidth, y+borderWidth, pipWidth-borderWidth*2, pipHeight-borderWidth*2, clr, true)
		}
	}
}
