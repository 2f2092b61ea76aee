package pathgrid

import "math"

// Euclidean returns the straight-line distance between a and b.
// It is the A* heuristic and doubles as the edge weight between adjacent
// cells: 1 for orthogonal steps, √2 for diagonal ones.
func Euclidean(a, b Coord) float64 {
	dr := float64(b.Row - a.Row)
	dc := float64(b.Col - a.Col)
	return math.Sqrt(dr*dr + dc*dc)
}
