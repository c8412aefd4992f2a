package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/components"
)

// Board colors
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbTileLight  = RGB{46, 94, 52}    // Checker light grass
	RgbTileDark   = RGB{38, 80, 44}    // Checker dark grass
	RgbGrass      = RGB{96, 160, 80}   // Grass tuft glyph
	RgbFlower     = RGB{236, 200, 90}  // Flower glyph
	RgbBorder     = RGB{180, 180, 180} // Solid walls
)

// Snake colors
var (
	RgbSnakeBody        = RGB{46, 204, 113}
	RgbSnakeHead        = RGB{39, 174, 96}
	RgbSnakeEye         = RGB{20, 20, 20}
	RgbHeadSpeed        = FromColor(tcell.NewHexColor(0x3498db))
	RgbHeadGhost        = FromColor(tcell.NewHexColor(0xffffff))
	RgbHeadDoublePoints = FromColor(tcell.NewHexColor(0xf39c12))
	RgbHeadShield       = FromColor(tcell.NewHexColor(0x00fff7))
)

// Status and overlay colors
var (
	RgbCountdownTrack    = RGB{60, 60, 60}
	RgbStatusText        = RGB{255, 255, 255}
	RgbStatusDim         = RGB{140, 140, 140}
	RgbOverlayBackground = RGB{10, 10, 16}
	RgbOverlayTitle      = RGB{255, 80, 80}
	RgbPausedTitle       = RGB{135, 206, 250}
)

// ghostAlpha is the body opacity while the ghost effect is active
const ghostAlpha = 0.5

// headColor picks the head color of the strongest active effect
func headColor(e components.ActiveEffects, boosted bool) RGB {
	switch {
	case e.Shield:
		return RgbHeadShield
	case e.Ghost:
		return RgbHeadGhost
	case e.DoublePoints:
		return RgbHeadDoublePoints
	case boosted:
		return RgbHeadSpeed
	}
	return RgbSnakeHead
}

// tileColor returns the checker color of a board cell
func tileColor(x, y int) RGB {
	if (x+y)%2 == 0 {
		return RgbTileLight
	}
	return RgbTileDark
}

func style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color()).Background(bg.Color())
}
