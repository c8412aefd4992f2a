package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
)

// EffectKind tags the rule modifier a power-up applies
type EffectKind int

const (
	EffectSpeed        EffectKind = iota // Shorter tick interval
	EffectGhost                          // Walls wrap instead of killing
	EffectDoublePoints                   // Food points doubled
	EffectShield                         // Self-collision ignored
	effectKindCount
)

// EffectKinds lists every effect in display order
var EffectKinds = []EffectKind{EffectSpeed, EffectGhost, EffectDoublePoints, EffectShield}

// String returns the effect name, also used as the reset timer key
func (k EffectKind) String() string {
	switch k {
	case EffectSpeed:
		return "speed"
	case EffectGhost:
		return "ghost"
	case EffectDoublePoints:
		return "doublePoints"
	case EffectShield:
		return "shield"
	}
	return "unknown"
}

// Valid reports whether k is a known effect
func (k EffectKind) Valid() bool {
	return k >= 0 && k < effectKindCount
}

// PowerUpType is one row of the power-up table
type PowerUpType struct {
	Name        string
	Effect      EffectKind
	Probability float64
	Glyph       rune
	Color       tcell.Color
}

// Weight returns the spawn probability used by the weighted draw
func (p PowerUpType) Weight() float64 {
	return p.Probability
}

// PowerUpTypes is the power-up table, probabilities sum to 1
var PowerUpTypes = []PowerUpType{
	{Name: "Speed", Effect: EffectSpeed, Probability: 0.3, Glyph: '»', Color: tcell.NewHexColor(0x3498db)},
	{Name: "Ghost", Effect: EffectGhost, Probability: 0.2, Glyph: '○', Color: tcell.NewHexColor(0xffffff)},
	{Name: "Double Points", Effect: EffectDoublePoints, Probability: 0.3, Glyph: '×', Color: tcell.NewHexColor(0xf39c12)},
	{Name: "Shield", Effect: EffectShield, Probability: 0.2, Glyph: '◘', Color: tcell.NewHexColor(0x00fff7)},
}

// PowerUpItem is the single active power-up on the board
type PowerUpItem struct {
	Pos   core.Point
	Type  PowerUpType
	Scale float64
}
