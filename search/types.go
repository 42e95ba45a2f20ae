// Package search provides tunable options, error definitions and result
// types for breadth-first search over a heightmap.Grid.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/step"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrInvalidPosition is returned when start or end lies outside the grid.
	ErrInvalidPosition = errors.New("search: position outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a cell that was never settled.
	ErrUnreachable = errors.New("search: position not reached")
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a single search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Rule decides whether a move between adjacent cells is legal.
	Rule step.Rule

	// MaxDepth, if > 0, stops discovering cells beyond this distance.
	MaxDepth int

	// OnSettle is called once for each cell when its distance becomes final.
	OnSettle func(p heightmap.Position, dist int)

	err error
}

// DefaultOptions returns Options with background context, step.Default,
// no depth limit and a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Rule:     step.Default,
		MaxDepth: 0,
		OnSettle: func(heightmap.Position, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRule replaces the transition rule. A nil rule is an option violation.
func WithRule(r step.Rule) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rule cannot be nil", ErrOptionViolation)
			return
		}
		o.Rule = r
	}
}

// WithMaxDepth stops discovery beyond the given distance.
//
//	d > 0: limit to distance d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnSettle registers a callback run as each cell is settled.
func WithOnSettle(fn func(p heightmap.Position, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// cellState is the lifecycle of one cell within a single search.
type cellState uint8

const (
	unvisited cellState = iota
	queued
	settled
)

// Result holds the outcome of an exhaustive search from Origin.
//   - Order: settled cells, in non-decreasing distance.
type Result struct {
	Origin heightmap.Position
	Order  []heightmap.Position

	grid   *heightmap.Grid
	dist   []int
	parent []int
	state  []cellState
}

// Distance returns the minimal step count from Origin to p and whether p
// was reached.
func (r *Result) Distance(p heightmap.Position) (int, bool) {
	if !r.grid.InBounds(p) {
		return 0, false
	}
	i := r.grid.Index(p)
	if r.state[i] != settled {
		return 0, false
	}
	return r.dist[i], true
}

// Reachable returns the number of settled cells, Origin included.
func (r *Result) Reachable() int {
	return len(r.Order)
}

// PathTo reconstructs a shortest path from Origin to dest, both inclusive.
// Returns ErrUnreachable if dest was not settled.
func (r *Result) PathTo(dest heightmap.Position) ([]heightmap.Position, error) {
	if _, ok := r.Distance(dest); !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	return r.path(r.grid.Index(dest)), nil
}

// path walks parent links from idx back to the origin and reverses them.
func (r *Result) path(idx int) []heightmap.Position {
	out := make([]heightmap.Position, 0, r.dist[idx]+1)
	for at := idx; at >= 0; at = r.parent[at] {
		out = append(out, r.grid.Position(at))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
