package systems

import (
	"errors"
	"math/rand/v2"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/core"
)

// PowerUp holds at most one power-up on the board
type PowerUp struct {
	active *components.PowerUpItem
	types  []components.PowerUpType
}

// NewPowerUp creates an empty slot drawing from the default power-up table
func NewPowerUp() *PowerUp {
	return &PowerUp{types: components.PowerUpTypes}
}

// Generate places a weighted-random power-up on a free cell, replacing any active one
func (p *PowerUp) Generate(rng *rand.Rand, size int, occupied Occupancy) (components.PowerUpItem, error) {
	pt, ok := DrawWeighted(rng, p.types)
	if !ok {
		return components.PowerUpItem{}, errors.New("empty power-up table")
	}

	pos, err := FreeCell(rng, size, occupied)
	if err != nil {
		return components.PowerUpItem{}, err
	}

	item := components.PowerUpItem{Pos: pos, Type: pt, Scale: 1}
	p.active = &item
	occupied.Put(pos)
	return item, nil
}

// Place puts a prepared power-up on the board, replacing any active one
func (p *PowerUp) Place(item components.PowerUpItem) {
	p.active = &item
}

// Active returns the power-up on the board
func (p *PowerUp) Active() (components.PowerUpItem, bool) {
	if p.active == nil {
		return components.PowerUpItem{}, false
	}
	return *p.active, true
}

// At reports whether the active power-up sits at pt
func (p *PowerUp) At(pt core.Point) bool {
	return p.active != nil && p.active.Pos == pt
}

// Take removes the active power-up and returns its type
func (p *PowerUp) Take() (components.PowerUpType, bool) {
	if p.active == nil {
		return components.PowerUpType{}, false
	}
	pt := p.active.Type
	p.active = nil
	return pt, true
}

// Occupy adds the active cell to set
func (p *PowerUp) Occupy(set Occupancy) {
	if p.active != nil {
		set.Put(p.active.Pos)
	}
}

// Clear removes the active power-up
func (p *PowerUp) Clear() {
	p.active = nil
}
