package pathgrid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// BenchmarkSearch_Open200 measures a corner-to-corner search on an
// unobstructed 200×200 grid.
// Complexity: O(V log V), V = 40 000.
func BenchmarkSearch_Open200(b *testing.B) {
	g, err := pathgrid.Build(ones(200))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	start, goal := pathgrid.Coord{}, pathgrid.Coord{Row: 199, Col: 199}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Search(start, goal)
	}
}

// BenchmarkSearch_Random200 measures searches on a 200×200 grid with roughly
// 25% barriers.
func BenchmarkSearch_Random200(b *testing.B) {
	g, err := pathgrid.Build(randomMatrix(42, 200, 0.25))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	start, goal := pathgrid.Coord{Row: 10, Col: 10}, pathgrid.Coord{Row: 190, Col: 180}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Search(start, goal)
	}
}

// BenchmarkRebuildAllAdjacency measures a full O(N²) rebuild on 500×500.
func BenchmarkRebuildAllAdjacency(b *testing.B) {
	g, err := pathgrid.New(randomMatrix(7, 500, 0.3))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RebuildAllAdjacency()
	}
}

// BenchmarkToggleAndRepair measures the incremental alternative on the same
// grid size.
func BenchmarkToggleAndRepair(b *testing.B) {
	g, err := pathgrid.Build(randomMatrix(7, 500, 0.3))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	at := pathgrid.Coord{Row: 250, Col: 250}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ToggleAndRepair(at)
	}
}
