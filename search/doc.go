// Package search computes shortest step counts on a heightmap.Grid under a
// step.Rule, using breadth-first search with a strict first-in-first-out
// frontier.
//
// What
//
//   - ShortestDistance: minimal steps from start to end, stopping as soon as
//     end is settled. A missing path is reported as found == false, not as an
//     error.
//   - ShortestPath: the same, plus one minimal sequence of positions.
//   - Nearest: the closest settled cell satisfying a goal predicate.
//   - Search: exhaustive traversal returning a Result with the distance of
//     every reachable cell, settle order and parent links.
//
// Why FIFO
//
//	Cells leave the frontier in non-decreasing distance order, so the first
//	time a cell is settled its distance is minimal. Each cell is queued at
//	most once and settled at most once, giving O(V + E) time, where
//	E <= 4V on a grid. A last-in-first-out frontier with a "skip if already
//	recorded shorter" guard does not have this property: it can settle a
//	cell with a non-minimal distance and then keep relaxing it.
//
// State
//
//	Every call allocates its own state table (Unvisited, Queued, Settled per
//	cell) and frontier; nothing is shared between calls except the read-only
//	Grid, so concurrent calls on one Grid are safe.
//
// Options
//
//   - DefaultOptions(): background Context, step.Default, no depth limit, no hook.
//   - WithContext(ctx):   cancellation, checked once per settled cell.
//   - WithRule(r):        replace the transition rule.
//   - WithMaxDepth(d):    do not discover cells farther than d steps (d > 0).
//   - WithOnSettle(fn):   hook called as each cell is settled.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrInvalidPosition    if start or end lies outside the grid.
//   - ErrOptionViolation    for invalid options (e.g. negative MaxDepth).
//   - ErrUnreachable        from Result.PathTo for a cell never settled.
//   - ctx.Err()             when the context is cancelled mid-search.
package search
