// Package multisource answers "how close is the nearest of several start
// cells to a target" on a heightmap.Grid.
//
// What
//
//   - Best: the minimal search.ShortestDistance to end over a set of
//     candidate starts, and which start achieved it.
//   - ShortestDistanceFromAny: the distance only.
//   - FromLowest: Best over every cell at heightmap.MinElevation.
//
// A candidate with no legal path is excluded from the minimum; the result
// is "not found" only if every candidate (or an empty set) has no path.
//
// Strategies
//
//   - Independent (default): one forward search per candidate, dispatched on
//     an errgroup bounded by WithWorkers. Each search owns its state and only
//     reads the shared Grid; results land in per-candidate slots and are
//     min-reduced after Wait, so completion order does not matter. Ties go to
//     the earliest candidate. O(S×V).
//   - Reverse: a single backward search from end under the reversed rule,
//     stopping at the first settled candidate. Same distance, O(V). On ties
//     the reported Start is whichever candidate the backward search settles
//     first.
//
// Errors
//
//   - search.ErrGridNil, search.ErrInvalidPosition for bad input; every
//     candidate and end are validated before any search starts.
//   - ErrOptionViolation for invalid options (workers < 1, nil rule, unknown
//     strategy).
//   - context errors when the supplied context is cancelled.
package multisource
