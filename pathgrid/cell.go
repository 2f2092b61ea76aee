package pathgrid

// Cell is one grid position. Its coordinates and grid size are fixed at
// creation; passability, visit state and the cached neighbor list change over
// the lifetime of the owning Grid.
type Cell struct {
	row, col  int
	gridSize  int
	passable  bool
	visit     VisitState
	neighbors []Neighbor
}

// Position returns the cell's coordinates.
func (c *Cell) Position() Coord {
	return Coord{Row: c.row, Col: c.col}
}

// Passable reports whether other cells may step into c.
func (c *Cell) Passable() bool { return c.passable }

// SetPassable sets passability directly. Adjacency is not repaired; use
// Grid.ToggleAndRepair or Grid.RebuildAllAdjacency for that.
func (c *Cell) SetPassable(p bool) { c.passable = p }

// VisitState returns the visualisation tag.
func (c *Cell) VisitState() VisitState { return c.visit }

// MarkOpen tags c as placed on the frontier.
func (c *Cell) MarkOpen() { c.visit = Open }

// MarkClosed tags c as expanded.
func (c *Cell) MarkClosed() { c.visit = Closed }

// ResetVisitState tags c as unvisited.
func (c *Cell) ResetVisitState() { c.visit = Unvisited }

// Neighbors returns a copy of the cached adjacency list in direction order.
func (c *Cell) Neighbors() []Neighbor {
	out := make([]Neighbor, len(c.neighbors))
	copy(out, c.neighbors)
	return out
}

// HasNeighbor reports whether at is in the cached adjacency list.
func (c *Cell) HasNeighbor(at Coord) bool {
	for _, nb := range c.neighbors {
		if nb.At == at {
			return true
		}
	}
	return false
}

// CanReach reports whether a single step from c in direction d is allowed on
// g's current state. target is always the cell the step would land on; cost is
// the step's weight when ok and 0 otherwise.
//
// A step fails when d is not a unit step, or the target is outside the grid or
// is a barrier. A diagonal
// step additionally needs both corner cells (row+dRow, col) and
// (row, col+dCol) to be passable.
func (c *Cell) CanReach(g *Grid, d Direction) (target Coord, cost float64, ok bool) {
	pos := c.Position()
	target = pos.Add(d)
	if !d.Unit() {
		return target, 0, false
	}
	if target.Row < 0 || target.Row > c.gridSize-1 || target.Col < 0 || target.Col > c.gridSize-1 {
		return target, 0, false
	}
	if !g.at(target).passable {
		return target, 0, false
	}

	distance := Euclidean(pos, target)
	if distance <= 1 {
		return target, distance, true
	}
	if g.at(Coord{Row: c.row + d.DRow, Col: c.col}).passable &&
		g.at(Coord{Row: c.row, Col: c.col + d.DCol}).passable {
		return target, distance, true
	}

	return target, 0, false
}

// RefreshNeighbors rebuilds the adjacency list from scratch by evaluating
// CanReach in every direction against g.
func (c *Cell) RefreshNeighbors(g *Grid) {
	neighbors := make([]Neighbor, 0, len(directions))
	for _, d := range directions {
		if target, cost, ok := c.CanReach(g, d); ok {
			neighbors = append(neighbors, Neighbor{At: target, Cost: cost})
		}
	}
	c.neighbors = neighbors
}
