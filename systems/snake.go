package systems

import (
	"errors"

	"github.com/lixenwraith/snake/core"
)

var (
	// ErrInvalidDirection rejects vectors that are not a single-tile axis move
	ErrInvalidDirection = errors.New("direction must be a unit axis vector")

	// ErrReversal rejects turning straight back onto the body
	ErrReversal = errors.New("direction reverses the snake")
)

// Snake is an ordered list of cells, head first
type Snake struct {
	segments []core.Point
	dir      core.Direction // Applied on the current move
	next     core.Direction // Buffered input, committed by NextHead
	growing  bool
}

// NewSnake creates a stationary one-segment snake at origin
func NewSnake(origin core.Point) *Snake {
	s := &Snake{}
	s.Reset(origin)
	return s
}

// Reset reinitializes the snake to a single stationary segment
func (s *Snake) Reset(origin core.Point) {
	s.segments = append(s.segments[:0], origin)
	s.dir = core.Stationary
	s.next = core.Stationary
	s.growing = false
}

// Head returns the first segment
func (s *Snake) Head() core.Point {
	return s.segments[0]
}

// Tail returns the last segment
func (s *Snake) Tail() core.Point {
	return s.segments[len(s.segments)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns the body, head first; callers must not modify it
func (s *Snake) Segments() []core.Point {
	return s.segments
}

// Direction returns the current velocity
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Buffered returns the direction that the next move will commit
func (s *Snake) Buffered() core.Direction {
	return s.next
}

// Growing reports whether the next move keeps the tail
func (s *Snake) Growing() bool {
	return s.growing
}

// Moving reports whether the snake has a velocity
func (s *Snake) Moving() bool {
	return !s.dir.IsZero()
}

// SetDirection buffers d for the next move
// A stationary snake adopts d immediately so the first tick already moves
func (s *Snake) SetDirection(d core.Direction) error {
	if !d.IsUnit() {
		return ErrInvalidDirection
	}
	if len(s.segments) > 1 && d == s.dir.Opposite() {
		return ErrReversal
	}

	s.next = d
	if s.dir.IsZero() {
		s.dir = d
	}
	return nil
}

// NextHead commits the buffered direction and returns the cell the head moves into
func (s *Snake) NextHead() core.Point {
	if !s.next.IsZero() {
		s.dir = s.next
	}
	return s.Head().Add(s.dir)
}

// Move prepends head and drops the tail unless a growth is pending
func (s *Snake) Move(head core.Point) {
	s.segments = append(s.segments, core.Point{})
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = head

	if s.growing {
		s.growing = false
		return
	}
	s.segments = s.segments[:len(s.segments)-1]
}

// Grow keeps the tail on the next move
func (s *Snake) Grow() {
	s.growing = true
}

// WillVacateTail reports whether the next move frees the tail cell
func (s *Snake) WillVacateTail() bool {
	return s.Moving() && !s.growing
}

// Occupies reports whether any segment is at p
// With excludeTail the last segment is skipped, for checks against a tail about to move away
func (s *Snake) Occupies(p core.Point, excludeTail bool) bool {
	n := len(s.segments)
	if excludeTail {
		n--
	}
	for i := 0; i < n; i++ {
		if s.segments[i] == p {
			return true
		}
	}
	return false
}

// Occupy adds every segment to set
func (s *Snake) Occupy(set Occupancy) {
	for _, seg := range s.segments {
		set.Put(seg)
	}
}
