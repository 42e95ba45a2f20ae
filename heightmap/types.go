// Package heightmap defines core types and sentinel errors
// for elevation grids.
package heightmap

import (
	"errors"
	"fmt"
)

// Elevation bounds accepted by New.
const (
	MinElevation = 0
	MaxElevation = 25
)

// Sentinel errors for grid construction and access.
var (
	// ErrParse is wrapped by every error raised while building a Grid.
	ErrParse = errors.New("heightmap: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrParse)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrParse)
	// ErrElevationRange indicates a value outside [MinElevation, MaxElevation].
	ErrElevationRange = fmt.Errorf("%w: elevation out of range", ErrParse)
	// ErrInvalidChar indicates a character with no elevation mapping.
	ErrInvalidChar = fmt.Errorf("%w: invalid character", ErrParse)
	// ErrMissingMarker indicates the input has no 'S' or no 'E'.
	ErrMissingMarker = fmt.Errorf("%w: missing marker", ErrParse)
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate marker", ErrParse)

	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("heightmap: position out of bounds")
)

// Position addresses a single cell by row and column.
type Position struct {
	Row, Col int
}

// Add returns p shifted by the offset d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Directions holds the four cardinal unit offsets: up, down, left, right.
var Directions = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is an immutable rectangular elevation map.
// cells holds elevations row-major: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []int
}

// Map is a decoded textual map: the grid plus its start and end markers.
type Map struct {
	Grid  *Grid
	Start Position
	End   Position
}
