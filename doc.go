// Package gridpath is a shortest-path toolkit for square, 8-directional
// grids whose walls change while you query them.
//
// What is gridpath?
//
//	A small set of packages that together take a maze from a file to an
//	answered path query, and keep answering as walls come and go:
//		• pathgrid: the engine with cells, cached adjacency, incremental repair, A*
//		• dijkstra: exhaustive float-cost distances, used as a correctness oracle
//		• loader:   PNG/GIF/JPEG/BMP/WebP or JSON → passability matrix
//		• chase:    a hide-and-seek round: player builds walls, enemy pursues
//		• metrics:  Prometheus counters and histograms for all of the above
//
// Why gridpath?
//
//   - Deterministic: equal-cost routes always break ties the same way
//   - No corner cutting: diagonal steps need both orthogonal cells open
//   - Cheap mutation: one toggle repairs at most nine neighbor lists
//   - Observable: search hooks and visit states for drawing the frontier
//
// Layout:
//
//	pathgrid/      Grid, Cell, Search, ToggleAndRepair, Components
//	dijkstra/      Dijkstra, PathTo
//	loader/        FromImage, FromJSON, Load
//	chase/         Session, Player, Actor
//	metrics/       Recorder, WriteTextfile
//	cmd/gridpath/  CLI: search, components, play
//	examples/      runnable walkthroughs
//
// Quick ASCII example (S start, G goal, # wall):
//
//	S . . .
//	. # # .
//	. . . G
//	. . . .
//
//	Search(S, G) goes over the top: the diagonals past the wall would
//	touch a '#' corner, so the route costs 5.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
