package systems

import (
	"errors"
	"math/rand/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrBoardFull is returned when no unoccupied cell is left
	ErrBoardFull = errors.New("no free cell on board")

	// ErrCellOccupied rejects placing an entity on a taken cell
	ErrCellOccupied = errors.New("cell already occupied")
)

// Occupancy is the set of cells blocked for spawning
type Occupancy = mapset.Set[core.Point]

// NewOccupancy returns an empty occupancy set
func NewOccupancy() Occupancy {
	return mapset.New[core.Point]()
}

// FreeCell picks a random cell of a size x size board that is not in occupied
// Random probes come first, a full scan guarantees a result while any cell is free
func FreeCell(rng *rand.Rand, size int, occupied Occupancy) (core.Point, error) {
	if size <= 0 {
		return core.Point{}, ErrBoardFull
	}

	for range constants.PlacementAttempts {
		p := core.Point{X: rng.IntN(size), Y: rng.IntN(size)}
		if !occupied.Has(p) {
			return p, nil
		}
	}

	free := make([]core.Point, 0, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Point{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, ErrBoardFull
	}
	return free[rng.IntN(len(free))], nil
}
