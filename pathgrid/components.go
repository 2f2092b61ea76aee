package pathgrid

import "github.com/zyedidia/generic/mapset"

// Components finds the connected regions of passable cells by following the
// cached neighbor lists. Each region lists its cells in BFS discovery order;
// regions appear in row-major order of their first cell.
//
// Because it walks the cached adjacency, the result reflects exactly what
// Search would see, including any staleness left by ToggleAndRepair.
//
// Time:   O(N²·8).
// Memory: O(N²) for the visited set and output.
func (g *Grid) Components() [][]Coord {
	seen := mapset.New[Coord]()
	var comps [][]Coord

	for i := range g.cells {
		root := &g.cells[i]
		if !root.passable || seen.Has(root.Position()) {
			continue
		}
		// BFS to collect component
		queue := []Coord{root.Position()}
		seen.Put(root.Position())
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range g.at(queue[qi]).neighbors {
				if !seen.Has(nb.At) {
					seen.Put(nb.At)
					queue = append(queue, nb.At)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether b can be reached from a over the cached adjacency,
// i.e. whether Search(a, b) would succeed. It is cheaper than a Search when
// only reachability matters. Returns ErrOutOfBounds for either endpoint.
func (g *Grid) Connected(a, b Coord) (bool, error) {
	if _, err := g.Cell(a); err != nil {
		return false, err
	}
	if _, err := g.Cell(b); err != nil {
		return false, err
	}
	if a == b {
		return true, nil
	}

	seen := mapset.New[Coord]()
	seen.Put(a)
	queue := []Coord{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range g.at(queue[qi]).neighbors {
			if nb.At == b {
				return true, nil
			}
			if !seen.Has(nb.At) {
				seen.Put(nb.At)
				queue = append(queue, nb.At)
			}
		}
	}

	return false, nil
}
