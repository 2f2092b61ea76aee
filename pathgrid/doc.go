// Package pathgrid treats a square binary-passability grid as a mutable graph
// and answers shortest-path queries over it with A*.
//
// What:
//
//   - Grid owns N×N Cells in a row-major arena; a value of 0 in the input
//     matrix makes a barrier, anything else is passable.
//   - Each Cell caches its reachable neighbors (up to 8) with edge weights:
//     1 for orthogonal steps, √2 for diagonal ones.
//   - A diagonal step is allowed only when both orthogonal corner cells are
//     passable, so paths never squeeze between two diagonal barriers.
//   - ToggleAndRepair flips one cell and repairs adjacency incrementally;
//     RebuildAllAdjacency recomputes everything.
//   - Search runs A* with insertion-order tie-breaking, so equal-cost
//     candidates always resolve the same way.
//   - Components and Connected report reachability; Bridge names the fewest
//     barriers to open between two cells.
//
// Why:
//
//   - Game maps where a player places and removes walls while an enemy chases.
//   - Any occupancy grid that changes one cell at a time between queries.
//
// Complexity:
//
//   - New / RebuildAllAdjacency: O(N²) time and memory.
//   - ToggleAndRepair:           O(1) (at most 9 cells refreshed, 8 checks each).
//   - Search:                    O(V log V) with V = N², Memory: O(V).
//   - Components / Connected:    O(V) over the cached adjacency.
//   - Bridge:                    O(V) 0-1 BFS.
//
// Incremental repair blind spot:
//
// ToggleAndRepair decides which cells to refresh from the toggled cell's
// neighbor list as it was before the toggle. That list is only as fresh as the
// toggled cell's last refresh. If a neighbor changed since then (say it was
// opened while the toggled cell was a barrier), it is missing from the list,
// is not refreshed, and cannot step into the toggled cell until
// RebuildAllAdjacency runs. Rebuild after a toggle that opens a cell when
// exact adjacency matters.
//
// Visit states:
//
// Cells carry an Unvisited/Open/Closed tag for visualisation only. Search never
// reads it; pass WithVisitMarking to have Search write it, or WithOnOpen and
// WithOnClose to observe the frontier without touching the cells.
//
// Errors:
//
//   - ErrMalformedInput: the matrix is empty or not square.
//   - ErrOutOfBounds:    a coordinate lies outside [0,N)².
//   - ErrNoPath:         the goal cannot be reached from the start.
//
// Concurrency: a Grid is not safe for concurrent use. Serialise toggles and
// searches on the caller side.
package pathgrid
