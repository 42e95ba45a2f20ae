package search_test

import (
	"container/list"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

const sampleMap = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// mustParse decodes a textual map or fails the test.
func mustParse(t testing.TB, s string) *heightmap.Map {
	t.Helper()
	m, err := heightmap.ParseString(s)
	require.NoError(t, err)
	return m
}

// randomGrid builds a rows×cols grid with elevations in [0, spread).
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols, spread int) *heightmap.Grid {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = rng.Intn(spread)
		}
	}
	g, err := heightmap.New(values)
	require.NoError(t, err)
	return g
}

// referenceDistances is a brute-force BFS over an explicit FIFO list, kept
// independent of the package code. -1 marks unreachable cells.
func referenceDistances(g *heightmap.Grid, start heightmap.Position) [][]int {
	rows, cols := g.Dims()
	dist := make([][]int, rows)
	for r := range dist {
		dist[r] = make([]int, cols)
		for c := range dist[r] {
			dist[r][c] = -1
		}
	}
	elev := func(p heightmap.Position) int {
		e, _ := g.Elevation(p)
		return e
	}

	q := list.New()
	dist[start.Row][start.Col] = 0
	q.PushBack(start)
	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		u := e.Value.(heightmap.Position)
		for _, v := range []heightmap.Position{
			{Row: u.Row - 1, Col: u.Col},
			{Row: u.Row + 1, Col: u.Col},
			{Row: u.Row, Col: u.Col - 1},
			{Row: u.Row, Col: u.Col + 1},
		} {
			if v.Row < 0 || v.Row >= rows || v.Col < 0 || v.Col >= cols {
				continue
			}
			if dist[v.Row][v.Col] >= 0 || elev(v) > elev(u)+1 {
				continue
			}
			dist[v.Row][v.Col] = dist[u.Row][u.Col] + 1
			q.PushBack(v)
		}
	}
	return dist
}
