// Package hillclimb counts the fewest steps across an elevation map when
// each step may climb at most one level.
//
// 🧭 What is in the box?
//
//	heightmap/     immutable elevation Grid, Position, and the 'a'..'z'/S/E text decoder
//	step/          transition rules: how far a single move may climb
//	search/        FIFO breadth-first search: ShortestDistance, ShortestPath, Nearest, Search
//	multisource/   best of many starts: Independent (errgroup fan-out) or Reverse (one backward search)
//	cmd/hillclimb  CLI: `hillclimb distance FILE`, `hillclimb any FILE`
//
// Quick ASCII example:
//
//	S a b q p o n m
//	a b c r y x x l
//	a c c s z E x k     S → E in 31 steps
//	a c c t u v w j     any 'a' → E in 29 steps
//	a b d e f g h i
//
// A Grid is built once and borrowed read-only by every query, so queries can
// run concurrently without locks. Each query owns its own frontier and
// distance table and settles every cell at most once, in O(V + E).
//
//	go get github.com/katalvlaran/hillclimb
package hillclimb
