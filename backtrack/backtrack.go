package backtrack

import (
	"fmt"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/gridgraph"
)

// walker encapsulates mutable state of one backward walk.
type walker struct {
	grid  *gridgraph.Grid
	costs *dijkstra.CostMap
	opts  Options
	queue []int
	set   *StateSet
}

// Collect walks inverse transitions from every End state whose cost equals
// minimal and returns all states on some minimal-cost path.
// costs must be the complete table produced by dijkstra.Relax on g with the
// same transition costs.
//
// Returns ErrNilGrid, ErrNilCosts, ErrCostShape or ErrOptionViolation for
// bad input, and ErrMalformedState if the table and minimal disagree.
func Collect(g *gridgraph.Grid, costs *dijkstra.CostMap, minimal int64, opts ...Option) (*StateSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if costs == nil {
		return nil, ErrNilCosts
	}
	if costs.Len() != g.NumStates() {
		return nil, fmt.Errorf("%w: %d slots for %d states", ErrCostShape, costs.Len(), g.NumStates())
	}

	w := &walker{
		grid:  g,
		costs: costs,
		opts:  o,
		set:   newStateSet(g),
	}
	if err := w.seed(minimal); err != nil {
		return nil, err
	}
	w.loop()

	// Every optimal chain ends at the start state with cost 0.
	if !w.set.Has(g.StartState()) {
		return nil, fmt.Errorf("%w: walk from end never reached %v", ErrMalformedState, g.StartState())
	}

	return w.set, nil
}

// seed enqueues every End heading recorded at exactly minimal.
func (w *walker) seed(minimal int64) error {
	end := w.grid.End()
	for h := gridgraph.North; h <= gridgraph.West; h++ {
		s := gridgraph.State{Row: end.Row, Col: end.Col, Heading: h}
		if c, ok := w.costs.Cost(s); ok && c == minimal {
			w.enqueue(w.grid.StateIndex(s))
		}
	}
	if w.set.Len() == 0 {
		return fmt.Errorf("%w: no end state has cost %d", ErrMalformedState, minimal)
	}

	return nil
}

func (w *walker) enqueue(idx int) {
	if w.set.add(idx) {
		w.queue = append(w.queue, idx)
	}
}

// loop drains the work list.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		idx := w.queue[0]
		w.queue = w.queue[1:]
		w.expand(idx)
	}
}

// expand tests the three inverse transitions of the state at idx.
func (w *walker) expand(idx int) {
	cur, _ := w.costs.CostAt(idx)
	s := w.grid.StateAt(idx)

	dr, dc := s.Heading.Delta()
	prev := gridgraph.State{Row: s.Row - dr, Col: s.Col - dc, Heading: s.Heading}
	if w.grid.Passable(prev.Row, prev.Col) {
		w.match(prev, cur, w.opts.MoveCost)
	}

	// The state that reached h by turning t faced t.Inverse() applied to h.
	for _, t := range gridgraph.Turns {
		pred := gridgraph.State{Row: s.Row, Col: s.Col, Heading: t.Inverse().Apply(s.Heading)}
		w.match(pred, cur, w.opts.TurnCost)
	}
}

// match enqueues pred when its cost plus delta equals cur exactly.
func (w *walker) match(pred gridgraph.State, cur, delta int64) {
	c, ok := w.costs.Cost(pred)
	if ok && c+delta == cur {
		w.enqueue(w.grid.StateIndex(pred))
	}
}
