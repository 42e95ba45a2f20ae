// Package heightmap models a rectangular elevation map as an immutable grid
// with bounds-checked access, and decodes the textual map format into it.
//
// What:
//
//   - Grid stores elevations in [MinElevation, MaxElevation] in a flat
//     row-major buffer and never changes after New returns.
//   - Position addresses a cell by (Row, Col); Directions lists the four
//     cardinal unit offsets (up, down, left, right).
//   - Parse turns lines of 'a'..'z' into elevations 0..25, with 'S' (start,
//     elevation 0) and 'E' (end, elevation 25) as markers.
//
// Why:
//
//   - One Grid is built once and borrowed read-only by any number of
//     concurrent searches; no search owns or mutates it.
//   - A flat buffer keeps neighbour lookups to a multiply and an add.
//
// Complexity:
//
//   - New, Parse:  O(R×C) time and memory.
//   - Elevation, InBounds, Index, Position: O(1).
//   - Find: O(R×C).
//
// Errors:
//
//   - ErrParse: umbrella for every construction failure below.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrElevationRange: a value outside [0,25].
//   - ErrInvalidChar: an unrecognised character in textual input.
//   - ErrMissingMarker / ErrDuplicateMarker: 'S' or 'E' absent or repeated.
//   - ErrOutOfBounds: Elevation called with a position outside the grid.
package heightmap
