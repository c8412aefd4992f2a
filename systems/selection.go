package systems

import "math/rand/v2"

// Weighted is a table row with a spawn probability
type Weighted interface {
	Weight() float64
}

// SelectWeighted walks the cumulative probability bands and returns the first row whose band contains r
// r is expected in [0, 1); rounding slack past the last band falls back to the first row
func SelectWeighted[T Weighted](table []T, r float64) (T, bool) {
	var zero T
	if len(table) == 0 {
		return zero, false
	}

	var cum float64
	for _, row := range table {
		cum += row.Weight()
		if r <= cum {
			return row, true
		}
	}
	return table[0], true
}

// DrawWeighted draws a row from table using rng
func DrawWeighted[T Weighted](rng *rand.Rand, table []T) (T, bool) {
	return SelectWeighted(table, rng.Float64())
}
