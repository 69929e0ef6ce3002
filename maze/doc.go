// Package maze is the public entry point of reindeer. It sequences the two
// search phases and projects their internal sets onto the two values callers
// need: the minimal cost from Start to End, and the tiles lying on any
// minimal-cost path.
//
//	res, err := maze.Solve(grid)
//	switch {
//	case errors.Is(err, maze.ErrNoPathFound):
//	    // End is unreachable under every heading.
//	case err != nil:
//	    // invalid options or an internal invariant violation
//	default:
//	    fmt.Println(res.MinimalCost, res.Count())
//	}
//
// Phases run strictly in order, Forward → Backward → Done. A Solver refuses
// out-of-order calls with ErrPhaseOrder and, once Done, accepts no further
// mutation. When the forward phase proves End unreachable the solver jumps
// straight to Done with a no-path outcome.
package maze
