// Package dijkstra runs the forward phase of the reindeer maze solver:
// Dijkstra's algorithm over (position, heading) states of a gridgraph.Grid.
//
// Overview:
//
//   - A state is (row, col, heading). From every settled state exactly three
//     transitions exist: turn left and turn right in place (TurnCost each,
//     default 1000) and one step forward (MoveCost, default 1) when the cell
//     ahead is in bounds and open.
//   - Relax exhausts the priority queue. It never stops when an End state is
//     first popped: the four End headings can carry different costs, and the
//     backward phase needs the complete cost table, not only its minimum.
//   - The result is a CostMap holding the true shortest cost to every
//     reachable state, plus MinimalEndCost over the four End headings.
//
// Determinism:
//
//   - Heap entries are ordered by (cost, state index), so the pop sequence,
//     and hence the CostMap, is identical across runs on identical input.
//
// Performance and complexity:
//
//   - S = 4·R·C states, each with 3 outgoing transitions.
//   - Time:  O(S log S) with the lazy decrease-key binary heap.
//   - Space: O(S) for the dense CostMap and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         Relax was given a nil grid.
//   - ErrOptionViolation: a non-positive MoveCost or TurnCost was supplied.
//   - ErrNoPath:          MinimalEndCost found no recorded End state.
//   - ErrMalformedState:  an internal invariant broke (negative or overflowing
//     cost). This signals a bug, never a property of the input maze.
//
// API reference:
//
//	func Relax(g *gridgraph.Grid, opts ...Option) (*Result, error)
//
//	  - g:    an immutable grid; read-only for the whole run.
//	  - opts: WithMoveCost(int64), WithTurnCost(int64), WithOnSettle(fn).
//
// Thread safety:
//
//   - Relax owns its CostMap and heap exclusively. The returned CostMap is not
//     mutated afterwards and may be shared read-only between goroutines.
package dijkstra
