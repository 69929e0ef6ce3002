package maze

import (
	"fmt"
	"time"

	"github.com/katalvlaran/reindeer/backtrack"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/gridgraph"
)

// Solver runs one solve of one grid. It is not safe for concurrent use; the
// grid it reads may be shared.
type Solver struct {
	grid  *gridgraph.Grid
	opts  Options
	phase Phase

	forward *dijkstra.Result
	minimal int64
	found   bool
	states  *backtrack.StateSet
}

// NewSolver validates options and returns a Solver in PhaseForward.
func NewSolver(g *gridgraph.Grid, opts ...Option) (*Solver, error) {
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

	return &Solver{grid: g, opts: o, phase: PhaseForward}, nil
}

// Phase reports the current phase.
func (s *Solver) Phase() Phase { return s.phase }

// Forward builds the complete cost table. On an unreachable End it moves the
// solver to PhaseDone and returns ErrNoPathFound.
func (s *Solver) Forward() error {
	if s.phase != PhaseForward {
		return fmt.Errorf("%w: Forward in %s", ErrPhaseOrder, s.phase)
	}
	began := time.Now()
	res, err := dijkstra.Relax(s.grid,
		dijkstra.WithMoveCost(s.opts.MoveCost),
		dijkstra.WithTurnCost(s.opts.TurnCost),
	)
	if err != nil {
		return fmt.Errorf("maze: forward: %w", err)
	}
	s.forward = res

	minimal, err := res.MinimalEndCost()
	if err != nil {
		s.phase = PhaseDone
		s.opts.Logger.Debug("forward phase finished without a path",
			"settled", res.Settled, "pushed", res.Pushed, "elapsed", time.Since(began))
		return ErrNoPathFound
	}
	s.minimal, s.found = minimal, true
	s.phase = PhaseBackward
	s.opts.Logger.Debug("forward phase done",
		"cost", minimal, "settled", res.Settled, "pushed", res.Pushed, "elapsed", time.Since(began))

	return nil
}

// Backward collects every state on a minimal-cost path. The cost table is
// released afterwards.
func (s *Solver) Backward() error {
	if s.phase != PhaseBackward {
		return fmt.Errorf("%w: Backward in %s", ErrPhaseOrder, s.phase)
	}
	began := time.Now()
	set, err := backtrack.Collect(s.grid, s.forward.Costs, s.minimal,
		backtrack.WithMoveCost(s.opts.MoveCost),
		backtrack.WithTurnCost(s.opts.TurnCost),
	)
	if err != nil {
		return fmt.Errorf("maze: backward: %w", err)
	}
	s.states = set
	s.forward = nil
	s.phase = PhaseDone
	s.opts.Logger.Debug("backward phase done", "states", set.Len(), "elapsed", time.Since(began))

	return nil
}

// Result projects the final sets onto caller-facing values. It is only
// available in PhaseDone; a no-path outcome returns ErrNoPathFound.
func (s *Solver) Result() (Result, error) {
	if s.phase != PhaseDone {
		return Result{}, fmt.Errorf("%w: Result in %s", ErrPhaseOrder, s.phase)
	}
	if !s.found {
		return Result{}, ErrNoPathFound
	}

	return Result{
		Found:       true,
		MinimalCost: s.minimal,
		Tiles:       s.states.Tiles(),
	}, nil
}

// Solve runs Forward, Backward and Result on g.
func Solve(g *gridgraph.Grid, opts ...Option) (Result, error) {
	s, err := NewSolver(g, opts...)
	if err != nil {
		return Result{}, err
	}
	if err := s.Forward(); err != nil {
		return Result{}, err
	}
	if err := s.Backward(); err != nil {
		return Result{}, err
	}

	return s.Result()
}
