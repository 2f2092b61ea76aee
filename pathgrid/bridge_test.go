package pathgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// openAll toggles every wall and rebuilds, then checks the route exists.
func openAll(t *testing.T, g *pathgrid.Grid, walls []pathgrid.Coord, a, b pathgrid.Coord) {
	t.Helper()
	for _, w := range walls {
		cell, err := g.Cell(w)
		require.NoError(t, err)
		require.False(t, cell.Passable(), "%v is already open", w)
		require.NoError(t, g.ToggleAndRepair(w))
	}
	g.RebuildAllAdjacency()
	_, err := g.Search(a, b)
	require.NoError(t, err, "route %v→%v still blocked after opening %v", a, b, walls)
}

func TestBridge(t *testing.T) {
	cases := []struct {
		name   string
		matrix [][]int
		a, b   pathgrid.Coord
		want   int
	}{
		{"AlreadyConnected", ones(3), pathgrid.Coord{}, pathgrid.Coord{Row: 2, Col: 2}, 0},
		{"ThinWall", [][]int{
			{1, 0, 1},
			{1, 0, 1},
			{1, 0, 1},
		}, pathgrid.Coord{}, pathgrid.Coord{Row: 0, Col: 2}, 1},
		{"ThickWall", [][]int{
			{1, 0, 0, 1},
			{1, 0, 0, 1},
			{1, 0, 0, 1},
			{1, 0, 0, 1},
		}, pathgrid.Coord{Row: 3, Col: 0}, pathgrid.Coord{Row: 0, Col: 3}, 2},
		{"DiagonalGap", [][]int{
			{1, 1, 0},
			{1, 0, 1},
			{0, 1, 1},
		}, pathgrid.Coord{}, pathgrid.Coord{Row: 2, Col: 2}, 1},
		{"GoalIsBarrier", [][]int{
			{1, 1},
			{1, 0},
		}, pathgrid.Coord{}, pathgrid.Coord{Row: 1, Col: 1}, 1},
		{"BothEndsBarrier", [][]int{
			{0, 1},
			{1, 0},
		}, pathgrid.Coord{}, pathgrid.Coord{Row: 1, Col: 1}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pathgrid.Build(tc.matrix)
			require.NoError(t, err)

			walls, err := g.Bridge(tc.a, tc.b)
			require.NoError(t, err)
			assert.Len(t, walls, tc.want)
			openAll(t, g, walls, tc.a, tc.b)
		})
	}
}

func TestBridge_OrderFromStart(t *testing.T) {
	g, err := pathgrid.Build([][]int{
		{1, 0, 0, 1},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	walls, err := g.Bridge(pathgrid.Coord{Row: 3, Col: 3}, pathgrid.Coord{Row: 0, Col: 1})
	require.NoError(t, err)
	require.Len(t, walls, 2)
	assert.Equal(t, 2, walls[0].Row, "the row-2 wall comes first")
	assert.Equal(t, pathgrid.Coord{Row: 0, Col: 1}, walls[1])
}

func TestBridge_OutOfBounds(t *testing.T) {
	g, err := pathgrid.Build(ones(2))
	require.NoError(t, err)

	_, err = g.Bridge(pathgrid.Coord{Row: -1}, pathgrid.Coord{})
	assert.ErrorIs(t, err, pathgrid.ErrOutOfBounds)
	_, err = g.Bridge(pathgrid.Coord{}, pathgrid.Coord{Col: 2})
	assert.ErrorIs(t, err, pathgrid.ErrOutOfBounds)
}

// TestBridge_Random opens the suggested walls on random grids and checks the
// route always appears.
func TestBridge_Random(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g, err := pathgrid.Build(randomMatrix(seed, 12, 0.45))
		require.NoError(t, err)
		a, b := pathgrid.Coord{Row: 0, Col: 0}, pathgrid.Coord{Row: 11, Col: 11}

		walls, err := g.Bridge(a, b)
		require.NoError(t, err)
		openAll(t, g, walls, a, b)
	}
}
