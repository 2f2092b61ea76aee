package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// Dijkstra computes shortest distances from Options.Source to every cell of g
// over the grid's cached adjacency.
//
// Returns:
//
//   - dist: cell → minimum distance; math.Inf(1) when unreachable.
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == u means the shortest path to v arrives from u.
//   - err:  ErrNoSource, ErrNilGrid or ErrSourceOutOfBounds.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *pathgrid.Grid, opts ...Option) (map[pathgrid.Coord]float64, map[pathgrid.Coord]pathgrid.Coord, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}

	// 2) Prepare state sized for every cell of the grid.
	V := g.Size() * g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[pathgrid.Coord]float64, V),
		visited: make(map[pathgrid.Coord]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[pathgrid.Coord]pathgrid.Coord, V)
	}

	// 3) Run
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path to dest from a predecessor map returned with
// WithReturnPath. Like pathgrid Search, the result excludes source and ends
// with dest; it is empty when dest == source.
func PathTo(prev map[pathgrid.Coord]pathgrid.Coord, source, dest pathgrid.Coord) ([]pathgrid.Coord, error) {
	var backward []pathgrid.Coord
	for at := dest; at != source; {
		backward = append(backward, at)
		p, ok := prev[at]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
		}
		at = p
	}
	path := make([]pathgrid.Coord, len(backward))
	for i, at := range backward {
		path[len(backward)-1-i] = at
	}
	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *pathgrid.Grid
	options Options
	dist    map[pathgrid.Coord]float64
	prev    map[pathgrid.Coord]pathgrid.Coord
	visited map[pathgrid.Coord]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at distance 0.
func (r *runner) init() {
	n := r.g.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			r.dist[pathgrid.Coord{Row: row, Col: col}] = math.Inf(1)
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{at: r.options.Source, dist: 0})
}

// process pops cells in distance order until the heap empties or the nearest
// cell is beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.at

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distance of each neighbor of u where possible.
func (r *runner) relax(u pathgrid.Coord) {
	cell, err := r.g.Cell(u)
	if err != nil {
		return
	}
	for _, nb := range cell.Neighbors() {
		newDist := r.dist[u] + nb.Cost
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[nb.At] {
			continue
		}
		r.dist[nb.At] = newDist
		if r.prev != nil {
			r.prev[nb.At] = u
		}
		// lazy decrease-key: the old entry stays and is skipped when popped
		heap.Push(&r.pq, &nodeItem{at: nb.At, dist: newDist})
	}
}

// nodeItem represents a cell and its tentative distance from the source.
type nodeItem struct {
	at   pathgrid.Coord
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
