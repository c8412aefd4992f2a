package core

import "testing"

func TestPointWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{5, 5}, Point{5, 5}},
		{"left edge", Point{-1, 3}, Point{19, 3}},
		{"right edge", Point{20, 3}, Point{0, 3}},
		{"top edge", Point{4, -1}, Point{4, 19}},
		{"bottom edge", Point{4, 20}, Point{4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Wrap(20); got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointInBounds(t *testing.T) {
	if !(Point{0, 0}).InBounds(20) {
		t.Error("Expected origin to be in bounds")
	}
	if (Point{20, 0}).InBounds(20) {
		t.Error("Expected x == size to be out of bounds")
	}
	if (Point{0, -1}).InBounds(20) {
		t.Error("Expected negative y to be out of bounds")
	}
}

func TestDirection(t *testing.T) {
	if DirUp.Opposite() != DirDown {
		t.Errorf("Expected up.Opposite() = down, got %v", DirUp.Opposite())
	}
	if DirLeft.Opposite() != DirRight {
		t.Errorf("Expected left.Opposite() = right, got %v", DirLeft.Opposite())
	}
	if !Stationary.IsZero() {
		t.Error("Expected stationary to be zero")
	}
	if Stationary.IsUnit() {
		t.Error("Expected stationary not to be a unit direction")
	}
	if (Direction{DX: 1, DY: 1}).IsUnit() {
		t.Error("Expected diagonal not to be a unit direction")
	}
	if got := (Point{10, 10}).Add(DirRight); got != (Point{11, 10}) {
		t.Errorf("Expected (11,10), got %v", got)
	}
}
