package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// queueItem pairs a cell index with the distance at which it was discovered.
type queueItem struct {
	idx  int
	dist int
}

// walker encapsulates the mutable state of one search.
// The frontier is queue[head:]; entries before head have been settled.
type walker struct {
	grid  *heightmap.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	res   *Result
}

// ShortestDistance returns the minimal number of steps from start to end
// on g. found is false when no legal path exists; that is a normal outcome,
// not an error. The search stops as soon as end is settled.
// Returns ErrGridNil, ErrInvalidPosition, ErrOptionViolation or a context
// error for invalid input or cancellation.
func ShortestDistance(g *heightmap.Grid, start, end heightmap.Position, opts ...Option) (dist int, found bool, err error) {
	w, err := prepare(g, start, opts, end)
	if err != nil {
		return 0, false, err
	}
	idx, ok, err := w.run(w.isIndex(g.Index(end)))
	if err != nil || !ok {
		return 0, false, err
	}
	return w.res.dist[idx], true, nil
}

// ShortestPath is ShortestDistance returning one minimal path from start to
// end, both inclusive, instead of its length.
func ShortestPath(g *heightmap.Grid, start, end heightmap.Position, opts ...Option) ([]heightmap.Position, bool, error) {
	w, err := prepare(g, start, opts, end)
	if err != nil {
		return nil, false, err
	}
	idx, ok, err := w.run(w.isIndex(g.Index(end)))
	if err != nil || !ok {
		return nil, false, err
	}
	return w.res.path(idx), true, nil
}

// Nearest returns the first cell settled from start for which goal reports
// true, together with its distance. Because settling happens in
// non-decreasing distance order, no other goal cell is strictly closer.
// found is false if no reachable cell satisfies goal.
func Nearest(g *heightmap.Grid, start heightmap.Position, goal func(heightmap.Position) bool, opts ...Option) (heightmap.Position, int, bool, error) {
	if goal == nil {
		return heightmap.Position{}, 0, false, fmt.Errorf("%w: goal cannot be nil", ErrOptionViolation)
	}
	w, err := prepare(g, start, opts)
	if err != nil {
		return heightmap.Position{}, 0, false, err
	}
	idx, ok, err := w.run(func(i int) bool { return goal(g.Position(i)) })
	if err != nil || !ok {
		return heightmap.Position{}, 0, false, err
	}
	return g.Position(idx), w.res.dist[idx], true, nil
}

// Search traverses every cell reachable from start and returns their
// distances, settle order and parent links.
// Complexity: O(V + E) time, O(V) memory.
func Search(g *heightmap.Grid, start heightmap.Position, opts ...Option) (*Result, error) {
	w, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	if _, _, err := w.run(nil); err != nil {
		return nil, err
	}
	return w.res, nil
}

// prepare validates g, the options and every position, then builds a walker
// seeded with start at distance 0.
func prepare(g *heightmap.Grid, start heightmap.Position, opts []Option, others ...heightmap.Position) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, p := range append([]heightmap.Position{start}, others...) {
		if !g.InBounds(p) {
			rows, cols := g.Dims()
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrInvalidPosition, p, rows, cols)
		}
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Origin: start,
			Order:  make([]heightmap.Position, 0, n),
			grid:   g,
			dist:   make([]int, n),
			parent: make([]int, n),
			state:  make([]cellState, n),
		},
	}
	w.enqueue(g.Index(start), 0, -1)
	return w, nil
}

// isIndex returns a stop predicate matching one cell index.
func (w *walker) isIndex(target int) func(int) bool {
	return func(i int) bool { return i == target }
}

// enqueue marks idx Queued at dist, records its parent and appends it to
// the frontier.
func (w *walker) enqueue(idx, dist, parent int) {
	w.res.state[idx] = queued
	w.res.dist[idx] = dist
	w.res.parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, dist: dist})
}

// run settles frontier entries in FIFO order until stop matches a settled
// cell, the frontier empties, or the context is cancelled.
// It returns the matching index and true, or -1 and false.
func (w *walker) run(stop func(idx int) bool) (int, bool, error) {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return -1, false, w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		// Cells are queued only from Unvisited, so this never fires; a
		// settled distance must not be overwritten.
		if w.res.state[item.idx] == settled {
			continue
		}
		w.settle(item)
		if stop != nil && stop(item.idx) {
			return item.idx, true, nil
		}
		w.expand(item)
	}
	return -1, false, nil
}

// settle finalises the distance of item's cell and calls OnSettle.
func (w *walker) settle(item queueItem) {
	w.res.state[item.idx] = settled
	p := w.grid.Position(item.idx)
	w.res.Order = append(w.res.Order, p)
	w.opts.OnSettle(p, item.dist)
}

// expand queues every unvisited cardinal neighbour the rule lets item's
// cell step into, honouring MaxDepth.
func (w *walker) expand(item queueItem) {
	next := item.dist + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	p := w.grid.Position(item.idx)
	from := w.grid.At(item.idx)
	for _, d := range heightmap.Directions {
		q := p.Add(d)
		if !w.grid.InBounds(q) {
			continue
		}
		j := w.grid.Index(q)
		if w.res.state[j] != unvisited {
			continue
		}
		if !w.opts.Rule(from, w.grid.At(j)) {
			continue
		}
		w.enqueue(j, next, item.idx)
	}
}
