package systems

import (
	"errors"
	"math/rand/v2"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/core"
)

// ErrFoodBagFull is returned when the bag already holds its maximum number of items
var ErrFoodBagFull = errors.New("food bag at capacity")

// FoodBag holds the simultaneous food items on the board
type FoodBag struct {
	items          []components.FoodItem
	types          []components.FoodType
	capacity       int
	lifetimeMin    int
	lifetimeSpread int
}

// NewFoodBag creates an empty bag drawing from the default food table
func NewFoodBag(capacity, lifetimeMin, lifetimeSpread int) *FoodBag {
	if capacity < 1 {
		capacity = 1
	}
	if lifetimeMin < 1 {
		lifetimeMin = 1
	}
	if lifetimeSpread < 1 {
		lifetimeSpread = 1
	}
	return &FoodBag{
		items:          make([]components.FoodItem, 0, capacity),
		types:          components.FoodTypes,
		capacity:       capacity,
		lifetimeMin:    lifetimeMin,
		lifetimeSpread: lifetimeSpread,
	}
}

// Generate spawns one item of a weighted-random type on a free cell
// Cells of existing items are added to occupied, and so is the new item's cell
func (b *FoodBag) Generate(rng *rand.Rand, size int, occupied Occupancy) (components.FoodItem, error) {
	if len(b.items) >= b.capacity {
		return components.FoodItem{}, ErrFoodBagFull
	}

	ft, ok := DrawWeighted(rng, b.types)
	if !ok {
		return components.FoodItem{}, errors.New("empty food table")
	}

	b.Occupy(occupied)
	pos, err := FreeCell(rng, size, occupied)
	if err != nil {
		return components.FoodItem{}, err
	}

	lifetime := b.lifetimeMin + rng.IntN(b.lifetimeSpread)
	item := components.FoodItem{
		Pos:      pos,
		Type:     ft,
		TimeLeft: lifetime,
		Lifetime: lifetime,
		Scale:    1,
	}
	b.items = append(b.items, item)
	occupied.Put(pos)
	return item, nil
}

// Place puts a prepared item on the board, used for scripted setups
func (b *FoodBag) Place(item components.FoodItem) error {
	if len(b.items) >= b.capacity {
		return ErrFoodBagFull
	}
	if b.At(item.Pos) {
		return ErrCellOccupied
	}
	b.items = append(b.items, item)
	return nil
}

// Update advances every countdown by one tick and drops expired items
// Returns true when the bag is empty afterwards
func (b *FoodBag) Update() bool {
	kept := b.items[:0]
	for _, item := range b.items {
		item.TimeLeft--
		if item.TimeLeft > 0 {
			kept = append(kept, item)
		}
	}
	b.items = kept
	return len(b.items) == 0
}

// Consume removes and returns the item at p
func (b *FoodBag) Consume(p core.Point) (components.FoodItem, bool) {
	for i, item := range b.items {
		if item.Pos == p {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return item, true
		}
	}
	return components.FoodItem{}, false
}

// At reports whether an item sits at p without consuming it
func (b *FoodBag) At(p core.Point) bool {
	for _, item := range b.items {
		if item.Pos == p {
			return true
		}
	}
	return false
}

// Occupy adds every item cell to set
func (b *FoodBag) Occupy(set Occupancy) {
	for _, item := range b.items {
		set.Put(item.Pos)
	}
}

// Items returns the current items; callers must not modify it
func (b *FoodBag) Items() []components.FoodItem {
	return b.items
}

// Len returns the number of items
func (b *FoodBag) Len() int {
	return len(b.items)
}

// Full reports whether the bag is at capacity
func (b *FoodBag) Full() bool {
	return len(b.items) >= b.capacity
}

// Capacity returns the maximum number of items
func (b *FoodBag) Capacity() int {
	return b.capacity
}

// Clear removes every item
func (b *FoodBag) Clear() {
	b.items = b.items[:0]
}
