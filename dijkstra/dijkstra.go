// Package dijkstra implements the forward relaxation over oriented grid states.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries whose cost exceeds the CostMap value.
//   - Relaxation is strict (“<”), so equal-cost rediscoveries never re-enter
//     the heap.
//   - The loop runs until the heap is empty; there is no early exit on End.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// Relax computes the shortest cost from (Start, initial Heading) to every
// reachable state of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·R·C
//   - Space: O(S)
func Relax(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	r := &runner{
		g:     g,
		opts:  cfg,
		costs: newCostMap(g),
		pq:    make(statePQ, 0, g.NumStates()/4+1),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Costs:    r.costs,
		MoveCost: cfg.MoveCost,
		TurnCost: cfg.TurnCost,
		Settled:  r.settled,
		Pushed:   r.pushed,
		end:      g.End(),
	}, nil
}

// runner holds the mutable state for a single relaxation.
type runner struct {
	g       *gridgraph.Grid // read-only input
	opts    Options
	costs   *CostMap
	pq      statePQ
	settled int
	pushed  int
}

// init records the start state at cost 0 and seeds the heap with it.
func (r *runner) init() {
	heap.Init(&r.pq)
	start := r.g.StartState()
	idx := r.g.StateIndex(start)
	r.costs.improve(idx, 0)
	r.push(idx, 0)
}

// process pops until the heap is empty, skipping stale entries.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(stateItem)

		if item.cost < 0 {
			return fmt.Errorf("%w: negative cost %d at %v", ErrMalformedState, item.cost, r.g.StateAt(item.idx))
		}
		// Stale entry: the state was improved after this push.
		if item.cost > r.costs.dist[item.idx] {
			continue
		}

		r.settled++
		s := r.g.StateAt(item.idx)
		r.opts.OnSettle(s, item.cost)
		if err := r.relax(s, item.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax generates the three candidate transitions of s and records every
// strict improvement.
func (r *runner) relax(s gridgraph.State, k int64) error {
	for _, turn := range gridgraph.Turns {
		next := gridgraph.State{Row: s.Row, Col: s.Col, Heading: turn.Apply(s.Heading)}
		if err := r.offer(next, k, r.opts.TurnCost); err != nil {
			return err
		}
	}

	dr, dc := s.Heading.Delta()
	nr, nc := s.Row+dr, s.Col+dc
	if !r.g.Passable(nr, nc) {
		return nil
	}

	return r.offer(gridgraph.State{Row: nr, Col: nc, Heading: s.Heading}, k, r.opts.MoveCost)
}

// offer pushes next at cost k+w if that beats its recorded cost.
func (r *runner) offer(next gridgraph.State, k, w int64) error {
	if k > math.MaxInt64-w {
		return fmt.Errorf("%w: cost overflow reaching %v", ErrMalformedState, next)
	}
	idx := r.g.StateIndex(next)
	if r.costs.improve(idx, k+w) {
		r.push(idx, k+w)
	}

	return nil
}

func (r *runner) push(idx int, cost int64) {
	heap.Push(&r.pq, stateItem{idx: idx, cost: cost})
	r.pushed++
}

// stateItem is a heap entry: a dense state index and the cost it was pushed with.
type stateItem struct {
	idx  int
	cost int64
}

// statePQ is a min-heap of stateItem ordered by cost, then by state index so
// that pops are deterministic among equal costs.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost ascending, ties by state index.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
