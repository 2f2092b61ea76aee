package pathgrid

import (
	"container/list"
	"math"
)

// Bridge returns the fewest barrier cells that must be opened so that a path
// from a to b exists, in order from a toward b. The result is empty when b is
// already reachable and both ends are passable.
//
// Behavior:
//  1. 0-1 BFS over orthogonal moves from a.
//     • Entering a passable cell → cost 0
//     • Entering a barrier cell  → cost 1
//  2. Stop when b is popped; walk predecessors back to a.
//
// Orthogonal moves suffice: an allowed diagonal step always has both corner
// cells open, so it never saves a conversion. Opening the returned cells with
// ToggleAndRepair may leave stale lists around them; call RebuildAllAdjacency
// afterwards.
//
// Complexity: O(V) time and memory, V = N².
func (g *Grid) Bridge(a, b Coord) ([]Coord, error) {
	if _, err := g.Cell(a); err != nil {
		return nil, err
	}
	if _, err := g.Cell(b); err != nil {
		return nil, err
	}

	V := g.n * g.n
	dist := make([]int, V)
	prev := make([]int, V)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	src := g.index(a)
	dist[src] = g.conversion(src)

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	target := g.index(b)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		from := Coord{Row: u / g.n, Col: u % g.n}
		for _, d := range directions[:4] {
			next := from.Add(d)
			if !g.InBounds(next) {
				continue
			}
			v := g.index(next)
			step := g.conversion(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	var walls []Coord
	for at := target; at >= 0; at = prev[at] {
		if !g.cells[at].passable {
			walls = append(walls, g.cells[at].Position())
		}
	}
	for i, j := 0, len(walls)-1; i < j; i, j = i+1, j-1 {
		walls[i], walls[j] = walls[j], walls[i]
	}

	return walls, nil
}

func (g *Grid) index(at Coord) int { return at.Row*g.n + at.Col }

// conversion is the cost of standing on cell i: 1 for a barrier.
func (g *Grid) conversion(i int) int {
	if g.cells[i].passable {
		return 0
	}
	return 1
}
