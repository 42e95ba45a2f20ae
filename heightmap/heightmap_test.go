package heightmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

//----------------------------------------------------------------------------//
// New and bounds tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, heightmap.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, heightmap.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, heightmap.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, heightmap.ErrNonRectangular},
		{"Negative", [][]int{{0, -1}}, heightmap.ErrElevationRange},
		{"TooHigh", [][]int{{26}}, heightmap.ErrElevationRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heightmap.New(tc.grid)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, heightmap.ErrParse)
		})
	}
}

// TestNew_CopiesInput ensures later writes to the source slice do not reach the Grid.
func TestNew_CopiesInput(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := heightmap.New(src)
	require.NoError(t, err)

	src[0][0] = 25
	e, err := g.Elevation(heightmap.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, 1, e)
}

// TestElevation checks in-bounds lookups and ErrOutOfBounds on a 2×3 grid.
func TestElevation(t *testing.T) {
	g, err := heightmap.New([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)

	rows, cols := g.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 6, g.Len())

	e, err := g.Elevation(heightmap.Position{Row: 1, Col: 2})
	require.NoError(t, err)
	require.Equal(t, 5, e)

	for _, p := range []heightmap.Position{{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: -1}} {
		_, err := g.Elevation(p)
		require.ErrorIs(t, err, heightmap.ErrOutOfBounds, "position %v", p)
		require.False(t, g.InBounds(p), "position %v", p)
	}
}

// TestIndexRoundTrip confirms Index and Position are inverse on every cell.
func TestIndexRoundTrip(t *testing.T) {
	g, err := heightmap.New([][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		p := g.Position(i)
		require.True(t, g.InBounds(p))
		require.Equal(t, i, g.Index(p))
	}
}

// TestFind lists lowest cells in row-major order.
func TestFind(t *testing.T) {
	g, err := heightmap.New([][]int{
		{0, 1, 0},
		{2, 0, 3},
	})
	require.NoError(t, err)

	want := []heightmap.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}}
	require.Equal(t, want, g.Find(0))
	require.Empty(t, g.Find(25))
}

// TestPosition_AddAndString covers the small Position helpers.
func TestPosition_AddAndString(t *testing.T) {
	p := heightmap.Position{Row: 2, Col: 3}
	require.Equal(t, heightmap.Position{Row: 1, Col: 3}, p.Add(heightmap.Directions[0]))
	require.Equal(t, heightmap.Position{Row: 2, Col: 4}, p.Add(heightmap.Directions[3]))
	require.Equal(t, "(2,3)", p.String())
}
