package core

// Point is one grid cell addressed by tile coordinates
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// InBounds reports whether p lies inside a size x size board
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Wrap folds p back onto a size x size board, used by the ghost effect
func (p Point) Wrap(size int) Point {
	if p.X < 0 {
		p.X = size - 1
	} else if p.X >= size {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = size - 1
	} else if p.Y >= size {
		p.Y = 0
	}
	return p
}

// Direction is a velocity vector in tiles per tick
type Direction struct {
	DX, DY int
}

var (
	Stationary = Direction{}
	DirUp      = Direction{DX: 0, DY: -1}
	DirDown    = Direction{DX: 0, DY: 1}
	DirLeft    = Direction{DX: -1, DY: 0}
	DirRight   = Direction{DX: 1, DY: 0}
)

// IsZero reports whether the direction has no velocity
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the negated vector
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsUnit reports whether d moves exactly one tile along one axis
func (d Direction) IsUnit() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case Stationary:
		return "none"
	}
	return "invalid"
}
