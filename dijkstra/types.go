// Package dijkstra defines core types and configuration options
// for the heading-aware forward relaxation.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// Sentinel errors returned by the forward phase.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Relax.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that no End state was ever recorded.
	ErrNoPath = errors.New("dijkstra: end is unreachable from start")

	// ErrMalformedState indicates an internal invariant violation, such as a
	// negative or overflowing cost.
	ErrMalformedState = errors.New("dijkstra: malformed state")
)

// Default transition costs.
const (
	DefaultMoveCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Options configures the behavior of Relax.
//
// MoveCost – cost of one forward step. Must be > 0. Default 1.
// TurnCost – cost of one in-place 90° rotation. Must be > 0. Default 1000.
// OnSettle – called once for every non-stale pop, with the settled cost.
type Options struct {
	MoveCost int64
	TurnCost int64
	OnSettle func(s gridgraph.State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Relax.
type Option func(*Options)

// DefaultOptions returns Options with MoveCost=1, TurnCost=1000 and a no-op
// OnSettle hook.
func DefaultOptions() Options {
	return Options{
		MoveCost: DefaultMoveCost,
		TurnCost: DefaultTurnCost,
		OnSettle: func(gridgraph.State, int64) {},
	}
}

// WithMoveCost sets the cost of a forward step.
// Non-positive values are recorded and surface as ErrOptionViolation.
func WithMoveCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: MoveCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.MoveCost = c
	}
}

// WithTurnCost sets the cost of a 90° turn.
// Non-positive values are recorded and surface as ErrOptionViolation.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: TurnCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithOnSettle registers a callback invoked for each settled state.
func WithOnSettle(fn func(s gridgraph.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result is the output of Relax.
type Result struct {
	// Costs holds the shortest cost to every reachable state.
	Costs *CostMap
	// MoveCost and TurnCost echo the costs the table was built with.
	MoveCost, TurnCost int64
	// Settled counts non-stale pops; Pushed counts heap pushes.
	Settled, Pushed int

	end gridgraph.Position
}

// MinimalEndCost returns the minimum recorded cost across the four End
// headings, or ErrNoPath if none was recorded.
func (r *Result) MinimalEndCost() (int64, error) {
	best, found := int64(0), false
	for h := gridgraph.North; h <= gridgraph.West; h++ {
		c, ok := r.Costs.Cost(gridgraph.State{Row: r.end.Row, Col: r.end.Col, Heading: h})
		if ok && (!found || c < best) {
			best, found = c, true
		}
	}
	if !found {
		return 0, ErrNoPath
	}

	return best, nil
}
