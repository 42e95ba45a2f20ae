// Package step decides whether a single cardinal move between two adjacent
// cells of a heightmap.Grid is legal.
//
// The default rule allows climbing at most one level per step and descending
// any amount, so reachability is directed: a move from a to b being legal
// says nothing about the move from b to a.
package step

import "github.com/katalvlaran/hillclimb/heightmap"

// Rule reports whether a move from a cell at elevation from to an adjacent
// cell at elevation to is permitted.
type Rule func(from, to int) bool

// Default permits a climb of at most one level and any descent.
var Default = Climb(1)

// Climb returns a Rule permitting to <= from+limit. Descent is unrestricted.
func Climb(limit int) Rule {
	return func(from, to int) bool {
		return to <= from+limit
	}
}

// Reverse returns r viewed from the destination: r.Reverse()(a, b) == r(b, a).
// A search walking edges backwards from a target uses it to find the cells
// that could have stepped into the current one.
func (r Rule) Reverse() Rule {
	return func(from, to int) bool {
		return r(to, from)
	}
}

// Adjacent reports whether a and b differ by one unit in exactly one axis.
func Adjacent(a, b heightmap.Position) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}

// CanStep reports whether r permits moving from one cell of g to another.
// It returns false for out-of-bounds positions and for pairs that are not
// cardinal neighbours, so callers never need to pre-validate.
func CanStep(g *heightmap.Grid, r Rule, from, to heightmap.Position) bool {
	if g == nil || r == nil || !Adjacent(from, to) {
		return false
	}
	ef, err := g.Elevation(from)
	if err != nil {
		return false
	}
	et, err := g.Elevation(to)
	if err != nil {
		return false
	}
	return r(ef, et)
}
