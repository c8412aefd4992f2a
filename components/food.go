package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
)

// FoodType is one row of the food table
type FoodType struct {
	Name        string
	Points      int
	Probability float64
	Glyph       rune
	Color       tcell.Color
}

// Weight returns the spawn probability used by the weighted draw
func (f FoodType) Weight() float64 {
	return f.Probability
}

// FoodTypes is the food table, probabilities sum to 1
var FoodTypes = []FoodType{
	{Name: "apple", Points: 10, Probability: 0.6, Glyph: '🍎', Color: tcell.NewHexColor(0xe74c3c)},
	{Name: "orange", Points: 20, Probability: 0.3, Glyph: '🍊', Color: tcell.NewHexColor(0xf1c40f)},
	{Name: "grape", Points: 30, Probability: 0.1, Glyph: '🍇', Color: tcell.NewHexColor(0x9b59b6)},
}

// FoodItem is a food entity on the board
type FoodItem struct {
	Pos      core.Point
	Type     FoodType
	TimeLeft int     // Remaining lifetime in ticks
	Lifetime int     // Lifetime at spawn, used for countdown display
	Scale    float64 // Visual scale
}

// Remaining returns the fraction of lifetime left in [0, 1]
func (f FoodItem) Remaining() float64 {
	if f.Lifetime <= 0 {
		return 0
	}
	return float64(f.TimeLeft) / float64(f.Lifetime)
}
