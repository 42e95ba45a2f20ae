package heightmap

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of elevations.
// It copies the input so later changes to values do not leak into the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrElevationRange if any value lies outside [MinElevation, MaxElevation].
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]int, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if v < MinElevation || v > MaxElevation {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrElevationRange, v, r, c)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Elevation returns the elevation at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Elevation(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return g.cells[g.Index(p)], nil
}

// At returns the elevation stored at row-major index idx.
// idx must come from Index on an in-bounds position.
func (g *Grid) At(idx int) int {
	return g.cells[idx]
}

// Index maps p to its row-major index: Row*cols + Col.
// The result is meaningful only when InBounds(p).
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Find returns every position with the given elevation, in row-major order.
// Complexity: O(R×C).
func (g *Grid) Find(elevation int) []Position {
	var out []Position
	for i, v := range g.cells {
		if v == elevation {
			out = append(out, g.Position(i))
		}
	}
	return out
}
