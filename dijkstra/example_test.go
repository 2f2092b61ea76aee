// Package dijkstra_test provides runnable examples for the grid Dijkstra oracle.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/pathgrid"
)

// ExampleDijkstra computes distances from the top-left corner of a 3×3 grid
// whose centre is blocked.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build the grid; 0 marks the barrier.
	g, err := pathgrid.Build([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run from (0,0). No diagonal touches the centre, so every move is
	//    orthogonal.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(pathgrid.Coord{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("to (0,2)=%.0f, to (2,2)=%.0f, to (1,1)=%v\n",
		dist[pathgrid.Coord{Row: 0, Col: 2}],
		dist[pathgrid.Coord{Row: 2, Col: 2}],
		dist[pathgrid.Coord{Row: 1, Col: 1}])
	// Output: to (0,2)=2, to (2,2)=4, to (1,1)=+Inf
}

// ExamplePathTo rebuilds a route from the predecessor map.
func ExamplePathTo() {
	g, _ := pathgrid.Build([][]int{
		{1, 1},
		{0, 1},
	})
	src, dst := pathgrid.Coord{Row: 0, Col: 0}, pathgrid.Coord{Row: 1, Col: 1}

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := dijkstra.PathTo(prev, src, dst)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [(0,1) (1,1)]
}
