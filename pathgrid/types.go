package pathgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for pathgrid operations.
var (
	// ErrMalformedInput indicates the input matrix is empty or not square.
	ErrMalformedInput = errors.New("pathgrid: input matrix must be square and non-empty")
	// ErrOutOfBounds indicates a coordinate outside [0,N)².
	ErrOutOfBounds = errors.New("pathgrid: coordinate out of bounds")
	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("pathgrid: no path between start and goal")
)

// Number is the set of element types accepted as a passability matrix.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Add returns c shifted one step in direction d.
func (c Coord) Add(d Direction) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a unit step; each component is -1, 0 or 1.
type Direction struct {
	DRow, DCol int
}

// Unit reports whether d is one of the eight unit steps: each component in
// {-1, 0, 1} and not both zero.
func (d Direction) Unit() bool {
	return d.DRow >= -1 && d.DRow <= 1 && d.DCol >= -1 && d.DCol <= 1 && d != Direction{}
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Unit directions. Right and Left move along a row, Down and Up along a column.
var (
	Right     = Direction{0, 1}
	Left      = Direction{0, -1}
	Down      = Direction{1, 0}
	Up        = Direction{-1, 0}
	DownRight = Direction{1, 1}
	DownLeft  = Direction{1, -1}
	UpRight   = Direction{-1, 1}
	UpLeft    = Direction{-1, -1}
)

// directions is the evaluation order for neighbor lists. The order decides
// which of two equal-cost neighbors is enqueued first, so it must not change.
var directions = [8]Direction{Right, Left, Down, Up, DownRight, DownLeft, UpRight, UpLeft}

// Directions returns the eight unit directions in neighbor-list order.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions[:])
	return out
}

// VisitState tags a cell for visualisation of a search.
type VisitState int

const (
	// Unvisited is the initial state and the state after a reset.
	Unvisited VisitState = iota
	// Open marks a cell that has been placed on the search frontier.
	Open
	// Closed marks a cell that has been expanded.
	Closed
)

// String returns the lower-case state name.
func (s VisitState) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unvisited"
	}
}

// Neighbor is one entry of a cell's adjacency list: the reachable cell and the
// cost of the step into it.
type Neighbor struct {
	At   Coord
	Cost float64
}

// Result is the outcome of a successful Search.
//
// Path holds the cells after the start up to and including the goal. It is
// empty (non-nil) when start equals goal. Cost is the sum of edge weights
// along Path and Expanded counts how many cells were popped off the frontier.
type Result struct {
	Path     []Coord
	Cost     float64
	Expanded int
}
