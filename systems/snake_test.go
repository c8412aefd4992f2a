package systems

import (
	"errors"
	"testing"

	"github.com/lixenwraith/snake/core"
)

// buildSnake returns a snake moving right with the given cells, head first
func buildSnake(cells ...core.Point) *Snake {
	s := NewSnake(cells[0])
	s.segments = append(s.segments[:0], cells...)
	s.dir = core.DirRight
	s.next = core.DirRight
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(core.Point{X: 10, Y: 10})

	if s.Len() != 1 {
		t.Errorf("Expected length 1, got %d", s.Len())
	}
	if s.Head() != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected head at origin, got %v", s.Head())
	}
	if s.Moving() {
		t.Error("Expected new snake to be stationary")
	}
}

func TestSetDirectionAdoptsWhenStationary(t *testing.T) {
	s := NewSnake(core.Point{X: 10, Y: 10})

	if err := s.SetDirection(core.DirRight); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected stationary snake to adopt direction immediately, got %v", s.Direction())
	}
	if next := s.NextHead(); next != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Expected next head (11,10), got %v", next)
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		name    string
		moving  core.Direction
		attempt core.Direction
	}{
		{"Right to left", core.DirRight, core.DirLeft},
		{"Left to right", core.DirLeft, core.DirRight},
		{"Up to down", core.DirUp, core.DirDown},
		{"Down to up", core.DirDown, core.DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildSnake(core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})
			s.dir = tt.moving
			s.next = tt.moving

			if err := s.SetDirection(tt.attempt); !errors.Is(err, ErrReversal) {
				t.Errorf("Expected ErrReversal, got %v", err)
			}
			if s.Buffered() != tt.moving {
				t.Errorf("Expected buffered direction unchanged, got %v", s.Buffered())
			}
		})
	}
}

func TestSetDirectionAllowsReversalAtLengthOne(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})
	_ = s.SetDirection(core.DirRight)

	if err := s.SetDirection(core.DirLeft); err != nil {
		t.Errorf("Expected single-segment snake to turn around, got %v", err)
	}
}

func TestSetDirectionRejectsInvalid(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})

	for _, d := range []core.Direction{core.Stationary, {DX: 1, DY: 1}, {DX: 2, DY: 0}} {
		if err := s.SetDirection(d); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("SetDirection(%+v): expected ErrInvalidDirection, got %v", d, err)
		}
	}
}

// TestBufferedTurnComparesCurrentDirection prevents a quick double turn from reversing
func TestBufferedTurnComparesCurrentDirection(t *testing.T) {
	s := buildSnake(core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5})

	if err := s.SetDirection(core.DirUp); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.SetDirection(core.DirLeft); !errors.Is(err, ErrReversal) {
		t.Errorf("Expected left to be rejected while still moving right, got %v", err)
	}
	if next := s.NextHead(); next != (core.Point{X: 5, Y: 4}) {
		t.Errorf("Expected buffered up to apply, got next head %v", next)
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s := buildSnake(core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5})

	s.Move(s.NextHead())

	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}
	want := []core.Point{{6, 5}, {5, 5}, {4, 5}}
	for i, seg := range s.Segments() {
		if seg != want[i] {
			t.Errorf("Segment %d = %v, want %v", i, seg, want[i])
		}
	}
}

func TestGrowConsumedOnce(t *testing.T) {
	s := buildSnake(core.Point{X: 5, Y: 5})

	s.Grow()
	s.Move(s.NextHead())
	if s.Len() != 2 {
		t.Fatalf("Expected length 2 after growing move, got %d", s.Len())
	}
	if s.Growing() {
		t.Error("Expected growth flag to be consumed")
	}

	s.Move(s.NextHead())
	if s.Len() != 2 {
		t.Errorf("Expected length to stay 2, got %d", s.Len())
	}
}

func TestOccupies(t *testing.T) {
	s := buildSnake(core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5})

	if !s.Occupies(core.Point{X: 3, Y: 5}, false) {
		t.Error("Expected tail to be occupied")
	}
	if s.Occupies(core.Point{X: 3, Y: 5}, true) {
		t.Error("Expected tail to be skipped with excludeTail")
	}
	if !s.Occupies(core.Point{X: 4, Y: 5}, true) {
		t.Error("Expected body to be occupied with excludeTail")
	}
	if s.Occupies(core.Point{X: 9, Y: 9}, false) {
		t.Error("Expected empty cell to be free")
	}
}

func TestWillVacateTail(t *testing.T) {
	s := NewSnake(core.Point{X: 5, Y: 5})
	if s.WillVacateTail() {
		t.Error("Expected stationary snake to keep its tail")
	}

	_ = s.SetDirection(core.DirRight)
	if !s.WillVacateTail() {
		t.Error("Expected moving snake to vacate its tail")
	}

	s.Grow()
	if s.WillVacateTail() {
		t.Error("Expected growing snake to keep its tail")
	}
}

func TestReset(t *testing.T) {
	s := buildSnake(core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})
	s.Grow()

	s.Reset(core.Point{X: 10, Y: 10})

	if s.Len() != 1 || s.Head() != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Expected single segment at origin, got %v", s.Segments())
	}
	if s.Moving() || s.Growing() || !s.Buffered().IsZero() {
		t.Error("Expected reset snake to be stationary with no pending state")
	}
}
