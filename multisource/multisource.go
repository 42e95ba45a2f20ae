package multisource

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/search"
)

// outcome is one candidate's search result.
type outcome struct {
	dist  int
	found bool
}

// ShortestDistanceFromAny returns the minimal distance from any of starts to
// end. found is false iff no candidate has a legal path.
func ShortestDistanceFromAny(g *heightmap.Grid, starts []heightmap.Position, end heightmap.Position, opts ...Option) (int, bool, error) {
	m, ok, err := Best(g, starts, end, opts...)
	if err != nil || !ok {
		return 0, false, err
	}
	return m.Distance, true, nil
}

// FromLowest is Best over every cell of g at heightmap.MinElevation.
func FromLowest(g *heightmap.Grid, end heightmap.Position, opts ...Option) (Match, bool, error) {
	if g == nil {
		return Match{}, false, search.ErrGridNil
	}
	return Best(g, g.Find(heightmap.MinElevation), end, opts...)
}

// Best returns the candidate start closest to end and its distance.
// found is false iff no candidate has a legal path, including when starts
// is empty. All positions are validated before any search runs.
func Best(g *heightmap.Grid, starts []heightmap.Position, end heightmap.Position, opts ...Option) (Match, bool, error) {
	if g == nil {
		return Match{}, false, search.ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Match{}, false, o.err
	}
	if err := validate(g, starts, end); err != nil {
		return Match{}, false, err
	}

	log := o.Logger.With(
		zap.Stringer("strategy", o.Strategy),
		zap.Stringer("end", end),
		zap.Int("candidates", len(starts)),
	)
	if len(starts) == 0 {
		log.Debug("no candidate starts")
		return Match{}, false, nil
	}

	var (
		m   Match
		ok  bool
		err error
	)
	switch o.Strategy {
	case Reverse:
		m, ok, err = reverse(g, starts, end, o)
	default:
		m, ok, err = independent(g, starts, end, o, log)
	}
	if err != nil {
		return Match{}, false, err
	}
	log.Debug("multi-source search done",
		zap.Bool("found", ok),
		zap.Stringer("start", m.Start),
		zap.Int("distance", m.Distance),
	)
	return m, ok, nil
}

// validate checks end and every candidate against the grid bounds.
func validate(g *heightmap.Grid, starts []heightmap.Position, end heightmap.Position) error {
	rows, cols := g.Dims()
	if !g.InBounds(end) {
		return fmt.Errorf("%w: end %v in %dx%d grid", search.ErrInvalidPosition, end, rows, cols)
	}
	for i, s := range starts {
		if !g.InBounds(s) {
			return fmt.Errorf("%w: start #%d %v in %dx%d grid", search.ErrInvalidPosition, i, s, rows, cols)
		}
	}
	return nil
}

// independent runs one forward search per candidate on a bounded errgroup
// and min-reduces the per-candidate slots once all have finished.
func independent(g *heightmap.Grid, starts []heightmap.Position, end heightmap.Position, o Options, log *zap.Logger) (Match, bool, error) {
	results := make([]outcome, len(starts))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, s := range starts {
		eg.Go(func() error {
			d, ok, err := search.ShortestDistance(g, s, end,
				search.WithContext(ctx),
				search.WithRule(o.Rule),
			)
			if err != nil {
				return fmt.Errorf("multisource: start %v: %w", s, err)
			}
			results[i] = outcome{dist: d, found: ok}
			log.Debug("candidate searched",
				zap.Stringer("start", s),
				zap.Bool("found", ok),
				zap.Int("distance", d),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Match{}, false, err
	}

	var (
		best  Match
		found bool
	)
	for i, r := range results {
		if !r.found {
			continue
		}
		if !found || r.dist < best.Distance {
			best = Match{Start: starts[i], Distance: r.dist}
			found = true
		}
	}
	return best, found, nil
}

// reverse walks backwards from end under the inverted rule and stops at
// the first candidate it settles.
func reverse(g *heightmap.Grid, starts []heightmap.Position, end heightmap.Position, o Options) (Match, bool, error) {
	candidate := make([]bool, g.Len())
	for _, s := range starts {
		candidate[g.Index(s)] = true
	}

	p, d, ok, err := search.Nearest(g, end,
		func(p heightmap.Position) bool { return candidate[g.Index(p)] },
		search.WithContext(o.Ctx),
		search.WithRule(o.Rule.Reverse()),
	)
	if err != nil {
		return Match{}, false, fmt.Errorf("multisource: reverse from %v: %w", end, err)
	}
	if !ok {
		return Match{}, false, nil
	}
	return Match{Start: p, Distance: d}, true, nil
}
