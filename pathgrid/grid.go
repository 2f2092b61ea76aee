package pathgrid

import (
	"fmt"
	"strings"
)

// Grid owns an N×N arena of Cells stored row-major. Cells are never replaced;
// only their passability, visit state and neighbor lists change.
type Grid struct {
	n     int
	cells []Cell
}

// New builds a Grid from a square matrix: 0 makes a barrier, any other value
// a passable cell. Cells start with empty neighbor lists, so call
// RebuildAllAdjacency before the first Search (or use Build).
//
// Returns ErrMalformedInput if the matrix is empty, or any row length differs
// from the number of rows.
// Complexity: O(N²) time and memory.
func New[T Number](matrix [][]T) (*Grid, error) {
	n := len(matrix)
	if n == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedInput)
	}
	for r, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedInput, r, len(row), n)
		}
	}

	g := &Grid{n: n, cells: make([]Cell, n*n)}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.cells[r*n+c] = Cell{
				row:      r,
				col:      c,
				gridSize: n,
				passable: matrix[r][c] != 0,
			}
		}
	}

	return g, nil
}

// Build is New followed by RebuildAllAdjacency.
func Build[T Number](matrix [][]T) (*Grid, error) {
	g, err := New(matrix)
	if err != nil {
		return nil, err
	}
	g.RebuildAllAdjacency()

	return g, nil
}

// Size returns N, the side length of the grid.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether at lies within [0,N)².
func (g *Grid) InBounds(at Coord) bool {
	return at.Row >= 0 && at.Row < g.n && at.Col >= 0 && at.Col < g.n
}

// Cell returns the cell at the given coordinate, or ErrOutOfBounds.
func (g *Grid) Cell(at Coord) (*Cell, error) {
	if !g.InBounds(at) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, at, g.n, g.n)
	}
	return g.at(at), nil
}

// at resolves an in-bounds coordinate without checking.
func (g *Grid) at(c Coord) *Cell {
	return &g.cells[g.index(c)]
}

// RebuildAllAdjacency recomputes every cell's neighbor list.
// Complexity: O(N²).
func (g *Grid) RebuildAllAdjacency() {
	for i := range g.cells {
		g.cells[i].RefreshNeighbors(g)
	}
}

// ToggleAndRepair flips passability at the given coordinate and repairs
// adjacency incrementally: every cell listed as a neighbor of at before the
// flip is refreshed, then at itself.
//
// Cells missing from that list because they changed after at was last
// refreshed are not repaired, so opening a cell can leave it unreachable from
// them. Follow with RebuildAllAdjacency when that matters.
//
// Returns ErrOutOfBounds without changing anything if at is outside the grid.
func (g *Grid) ToggleAndRepair(at Coord) error {
	cell, err := g.Cell(at)
	if err != nil {
		return err
	}

	before := cell.Neighbors()
	cell.passable = !cell.passable
	for _, nb := range before {
		g.at(nb.At).RefreshNeighbors(g)
	}
	cell.RefreshNeighbors(g)

	return nil
}

// ResetVisitStates marks every cell Unvisited.
func (g *Grid) ResetVisitStates() {
	for i := range g.cells {
		g.cells[i].visit = Unvisited
	}
}

// String renders the grid with '#' for barriers and '.' for passable cells,
// one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.cells[r*g.n+c].passable {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
