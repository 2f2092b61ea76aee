package pathgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// TestComponents_SplitByWall: a full barrier column yields two regions.
//
//	. . # .
//	. . # .
//	. . # .
//	. . # .
func TestComponents_SplitByWall(t *testing.T) {
	g, err := pathgrid.Build([][]int{
		{1, 1, 0, 1},
		{1, 1, 0, 1},
		{1, 1, 0, 1},
		{1, 1, 0, 1},
	})
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 8)
	assert.Len(t, comps[1], 4)
	assert.Equal(t, pathgrid.Coord{Row: 0, Col: 0}, comps[0][0])
	assert.Equal(t, pathgrid.Coord{Row: 0, Col: 3}, comps[1][0])
}

// TestComponents_DiagonalTouchIsNotConnected: cells touching only at a corner
// between two barriers stay separate.
func TestComponents_DiagonalTouchIsNotConnected(t *testing.T) {
	g, err := pathgrid.Build([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	comps := g.Components()
	assert.Len(t, comps, 3)
	for _, comp := range comps {
		assert.Len(t, comp, 1)
	}
}

func TestComponents_AllBarrier(t *testing.T) {
	g, err := pathgrid.Build([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Empty(t, g.Components())
}

func TestConnected(t *testing.T) {
	g, err := pathgrid.Build([][]int{
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)

	ok, err := g.Connected(pathgrid.Coord{Row: 0, Col: 0}, pathgrid.Coord{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Connected(pathgrid.Coord{Row: 0, Col: 0}, pathgrid.Coord{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.Connected(pathgrid.Coord{Row: 2, Col: 2}, pathgrid.Coord{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = g.Connected(pathgrid.Coord{Row: 0, Col: 0}, pathgrid.Coord{Row: 0, Col: 3})
	assert.ErrorIs(t, err, pathgrid.ErrOutOfBounds)
}

// TestConnected_AgreesWithSearch checks reachability against Search on a
// random grid.
func TestConnected_AgreesWithSearch(t *testing.T) {
	g, err := pathgrid.Build(randomMatrix(11, 10, 0.35))
	require.NoError(t, err)
	src := pathgrid.Coord{Row: 5, Col: 5}

	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			dst := pathgrid.Coord{Row: r, Col: c}
			ok, err := g.Connected(src, dst)
			require.NoError(t, err)
			_, searchErr := g.Search(src, dst)
			assert.Equal(t, ok, searchErr == nil, "dst %v", dst)
		}
	}
}
