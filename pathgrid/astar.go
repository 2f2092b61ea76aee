package pathgrid

import (
	"container/heap"
	"fmt"
	"math"
)

// Search finds a least-cost path from start to end with A* over the cached
// adjacency, using Euclidean as the heuristic.
//
// Outcomes:
//
//   - start == end:   Result with an empty Path and nil error.
//   - goal reached:   Result with Path from the first step after start through
//     end inclusive; start never appears in it.
//   - goal unreachable: ErrNoPath.
//
// Returns ErrOutOfBounds if either endpoint lies outside the grid.
//
// The frontier is ordered by f = g + h; equal f values are popped in the order
// cells were first enqueued, which makes the chosen path reproducible.
// A pending cell whose g improves keeps its enqueue position and has its key
// lowered in place.
//
// Complexity: O(V log V) time, O(V) memory, V = N².
func (g *Grid) Search(start, end Coord, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	if cfg.ResetVisits {
		g.ResetVisitStates()
	}
	if start == end {
		return Result{Path: []Coord{}}, nil
	}

	onOpen, onClose := cfg.OnOpen, cfg.OnClose
	if cfg.MarkVisits {
		onOpen = func(at Coord) {
			g.at(at).MarkOpen()
			cfg.OnOpen(at)
		}
		onClose = func(at Coord) {
			g.at(at).MarkClosed()
			cfg.OnClose(at)
		}
	}

	s := &search{
		end:      end,
		gScore:   map[Coord]float64{start: 0},
		cameFrom: make(map[Coord]Coord),
		pending:  make(map[Coord]*frontierItem),
	}
	heap.Init(&s.frontier)
	s.push(start, Euclidean(start, end))

	expanded := 0
	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(*frontierItem)
		current := item.at
		delete(s.pending, current)
		expanded++

		if current == end {
			path := s.reconstruct(start)
			return Result{Path: path, Cost: s.gScore[end], Expanded: expanded}, nil
		}

		for _, nb := range g.at(current).neighbors {
			tentative := s.gScore[current] + nb.Cost
			if tentative >= s.g(nb.At) {
				continue
			}
			s.cameFrom[nb.At] = current
			s.gScore[nb.At] = tentative
			f := tentative + Euclidean(nb.At, end)
			if item, ok := s.pending[nb.At]; ok {
				item.f = f
				heap.Fix(&s.frontier, item.index)
				continue
			}
			s.push(nb.At, f)
			onOpen(nb.At)
		}

		if current != start {
			onClose(current)
		}
	}

	return Result{}, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
}

// search is the per-call state of one A* run; nothing in it outlives Search.
type search struct {
	end      Coord
	gScore   map[Coord]float64
	cameFrom map[Coord]Coord
	frontier frontier
	pending  map[Coord]*frontierItem // cells currently on the frontier
	count    uint64
}

// g returns the recorded cost from start, +Inf when none is recorded yet.
func (s *search) g(at Coord) float64 {
	if v, ok := s.gScore[at]; ok {
		return v
	}
	return math.Inf(1)
}

// push enqueues at with the next insertion counter.
func (s *search) push(at Coord, f float64) {
	item := &frontierItem{at: at, f: f, seq: s.count}
	s.count++
	heap.Push(&s.frontier, item)
	s.pending[at] = item
}

// reconstruct walks predecessors back from the goal and returns the cells
// after start through the goal, in travel order.
func (s *search) reconstruct(start Coord) []Coord {
	var backward []Coord
	for at := s.end; at != start; at = s.cameFrom[at] {
		backward = append(backward, at)
	}
	path := make([]Coord, len(backward))
	for i, at := range backward {
		path[len(backward)-1-i] = at
	}
	return path
}

// frontierItem is one pending cell. seq is assigned once at enqueue time and
// breaks ties between equal f values.
type frontierItem struct {
	at    Coord
	f     float64
	seq   uint64
	index int
}

// frontier is a min-heap of *frontierItem ordered by (f, seq).
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
