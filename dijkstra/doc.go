// Package dijkstra computes exact single-source shortest distances over the
// cached adjacency of a *pathgrid.Grid.
//
// Overview:
//
//   - Dijkstra expands cells in order of increasing distance from the source
//     using a min-heap with lazy decrease-key, so every reachable cell's
//     distance is final once popped.
//   - Edge weights are the float costs stored in each cell's neighbor list
//     (1 orthogonal, √2 diagonal), so results compare directly with
//     pathgrid.Grid.Search.
//
// When to use:
//
//   - As an exhaustive oracle to confirm an A* path is optimal.
//   - To compute a full distance field from one cell (every other cell's
//     cost to reach), e.g. for flow-field style movement.
//
// Options:
//
//   - Source(c):          required starting cell.
//   - WithReturnPath():   also return the predecessor map.
//   - WithMaxDistance(d): stop expanding once the nearest frontier cell is
//     farther than d (d ≥ 0, negative panics).
//
// Errors (sentinel):
//
//   - ErrNilGrid:           the grid pointer is nil.
//   - ErrNoSource:          Source was never set.
//   - ErrSourceOutOfBounds: Source lies outside the grid (wraps pathgrid.ErrOutOfBounds).
//   - ErrNoPath:            PathTo found no predecessor chain to the destination.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = N², E ≤ 8V.
//   - Space: O(V + E).
//
// Thread safety: the grid must not be mutated while Dijkstra runs.
package dijkstra
