package maze

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/gridgraph"
)

var (
	// ErrNoPathFound is returned when End is unreachable from Start.
	// It wraps dijkstra.ErrNoPath.
	ErrNoPathFound = fmt.Errorf("maze: no path found: %w", dijkstra.ErrNoPath)

	// ErrPhaseOrder is returned when a phase is run out of order.
	ErrPhaseOrder = errors.New("maze: phase called out of order")

	// ErrNilGrid is returned when NewSolver receives a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrOptionViolation is returned for invalid options.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Phase is the solver's position in its strictly ordered lifecycle.
type Phase int

const (
	PhaseForward Phase = iota
	PhaseBackward
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseForward:
		return "forward"
	case PhaseBackward:
		return "backward"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Result is what callers see. Found is false only when End is unreachable,
// in which case MinimalCost and Tiles carry no meaning.
type Result struct {
	Found       bool
	MinimalCost int64
	// Tiles lists every tile on some minimal-cost path, in row-major order.
	Tiles []gridgraph.Position
}

// Count returns the number of distinct optimal tiles.
func (r Result) Count() int { return len(r.Tiles) }

// Options configures a Solver.
type Options struct {
	MoveCost int64
	TurnCost int64
	Logger   *log.Logger

	err error
}

// Option configures a Solver.
type Option func(*Options)

// DefaultOptions returns the puzzle costs (1 per step, 1000 per turn) and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		MoveCost: dijkstra.DefaultMoveCost,
		TurnCost: dijkstra.DefaultTurnCost,
		Logger:   log.New(io.Discard),
	}
}

// WithMoveCost sets the forward-step cost for both phases.
func WithMoveCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: MoveCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.MoveCost = c
	}
}

// WithTurnCost sets the turn cost for both phases.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: TurnCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithLogger routes phase diagnostics to l at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
