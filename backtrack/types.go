package backtrack

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/gridgraph"
)

// Sentinel errors for the backward phase.
var (
	// ErrNilGrid is returned if a nil grid is passed.
	ErrNilGrid = errors.New("backtrack: grid is nil")

	// ErrNilCosts is returned if a nil cost table is passed.
	ErrNilCosts = errors.New("backtrack: cost map is nil")

	// ErrCostShape is returned when the cost table was not built for a grid
	// of the same shape.
	ErrCostShape = errors.New("backtrack: cost map does not match grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("backtrack: invalid option supplied")

	// ErrMalformedState reports an internal invariant violation: no End state
	// carries the minimal cost, or the walk never reaches the start state.
	ErrMalformedState = errors.New("backtrack: malformed state")
)

// Options mirror the transition costs used by the forward phase. A table
// built with custom costs must be walked with the same costs.
type Options struct {
	MoveCost int64
	TurnCost int64

	err error
}

// Option configures Collect.
type Option func(*Options)

// DefaultOptions returns MoveCost=1, TurnCost=1000.
func DefaultOptions() Options {
	return Options{
		MoveCost: dijkstra.DefaultMoveCost,
		TurnCost: dijkstra.DefaultTurnCost,
	}
}

// WithMoveCost sets the forward-step cost delta.
func WithMoveCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: MoveCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.MoveCost = c
	}
}

// WithTurnCost sets the turn cost delta.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: TurnCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// StateSet is the set of states proven to lie on some minimal-cost path.
// Membership is a dense bitmap over gridgraph.Grid.StateIndex.
type StateSet struct {
	grid    *gridgraph.Grid
	members []bool
	size    int
}

func newStateSet(g *gridgraph.Grid) *StateSet {
	return &StateSet{grid: g, members: make([]bool, g.NumStates())}
}

// add inserts idx and reports whether it was new.
func (s *StateSet) add(idx int) bool {
	if s.members[idx] {
		return false
	}
	s.members[idx] = true
	s.size++

	return true
}

// Has reports membership of st.
func (s *StateSet) Has(st gridgraph.State) bool {
	if !s.grid.InBounds(st.Row, st.Col) || !st.Heading.Valid() {
		return false
	}
	return s.members[s.grid.StateIndex(st)]
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int { return s.size }

// States returns the members ordered by dense state index.
func (s *StateSet) States() []gridgraph.State {
	out := make([]gridgraph.State, 0, s.size)
	for idx, ok := range s.members {
		if ok {
			out = append(out, s.grid.StateAt(idx))
		}
	}

	return out
}

// Tiles projects the set onto distinct (row, col) pairs in row-major order.
func (s *StateSet) Tiles() []gridgraph.Position {
	seen := make(map[gridgraph.Position]struct{}, s.size)
	out := make([]gridgraph.Position, 0, s.size)
	for _, st := range s.States() {
		p := st.Pos()
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}
