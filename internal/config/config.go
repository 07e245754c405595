// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 800
	ScreenHeight  = 600
	PixelsPerUnit = 40.0 // мировая единица арены в пикселях
	MaxDeltaTime  = 0.06

	ArenaHalfWidth  = ScreenWidth / PixelsPerUnit / 2  // 10 единиц
	ArenaHalfHeight = ScreenHeight / PixelsPerUnit / 2 // 7.5 единиц
	WallThickness   = 0.5

	PowerUpRadius = 0.4

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	TextCharWidth    = 7
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WallColor       = color.RGBA{128, 128, 128, 255}
	ObstacleColor   = color.RGBA{150, 70, 70, 220}
	BulletColor     = color.RGBA{240, 240, 240, 255}
	ExplosiveColor  = color.RGBA{255, 120, 40, 255}
	ShieldColor     = color.RGBA{80, 170, 255, 110}
	ExplosionColor  = color.RGBA{255, 160, 60, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	StrokeColor     = color.RGBA{255, 255, 255, 255}
	PlayerColors    = []color.RGBA{
		{50, 205, 50, 255}, // Игрок 1 — зелёный
		{220, 60, 60, 255}, // Игрок 2 — красный
	}
)

// PlayerColor returns the display colour of a player number (1-based).
func PlayerColor(playerNumber int) color.RGBA {
	if playerNumber < 1 || playerNumber > len(PlayerColors) {
		return TextLightColor
	}
	return PlayerColors[playerNumber-1]
}
