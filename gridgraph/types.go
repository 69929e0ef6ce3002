// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/reindeer.
package gridgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates an unrecognised character in the text format.
	ErrUnknownCell = errors.New("gridgraph: unknown cell character")
	// ErrMissingStart indicates the text has no 'S' cell.
	ErrMissingStart = errors.New("gridgraph: start cell not found")
	// ErrMissingEnd indicates the text has no 'E' cell.
	ErrMissingEnd = errors.New("gridgraph: end cell not found")
	// ErrDuplicateStart indicates more than one 'S' cell.
	ErrDuplicateStart = errors.New("gridgraph: more than one start cell")
	// ErrDuplicateEnd indicates more than one 'E' cell.
	ErrDuplicateEnd = errors.New("gridgraph: more than one end cell")
	// ErrStartOutOfBounds indicates Start lies outside the grid.
	ErrStartOutOfBounds = errors.New("gridgraph: start position out of bounds")
	// ErrEndOutOfBounds indicates End lies outside the grid.
	ErrEndOutOfBounds = errors.New("gridgraph: end position out of bounds")
	// ErrStartOnWall indicates Start is a wall cell.
	ErrStartOnWall = errors.New("gridgraph: start position is a wall")
	// ErrEndOnWall indicates End is a wall cell.
	ErrEndOnWall = errors.New("gridgraph: end position is a wall")
	// ErrBadHeading indicates a heading outside North..West.
	ErrBadHeading = errors.New("gridgraph: invalid heading")
)

// CellKind classifies a single grid cell.
type CellKind uint8

const (
	// Open cells can be entered.
	Open CellKind = iota
	// Wall cells can never be entered.
	Wall
)

// Heading is one of the four cardinal directions, in clockwise order.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// NumHeadings is the size of the heading cycle.
const NumHeadings = 4

// headingDeltas holds (dRow, dCol) per heading.
var headingDeltas = [NumHeadings][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var headingNames = [NumHeadings]string{"north", "east", "south", "west"}

// Valid reports whether h is one of North, East, South, West.
func (h Heading) Valid() bool { return h < NumHeadings }

// Right rotates one step clockwise.
func (h Heading) Right() Heading { return (h + 1) % NumHeadings }

// Left rotates one step counter-clockwise.
func (h Heading) Left() Heading { return (h + NumHeadings - 1) % NumHeadings }

// Delta returns the row and column offset of one forward step.
func (h Heading) Delta() (dr, dc int) {
	d := headingDeltas[h%NumHeadings]
	return d[0], d[1]
}

// String returns the lower-case heading name.
func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("heading(%d)", uint8(h))
	}
	return headingNames[h]
}

// ParseHeading accepts a heading name ("north", "e", "South", ...) or one of
// the arrow glyphs '^', '>', 'v', '<'.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up", "^":
		return North, nil
	case "east", "e", "right", ">":
		return East, nil
	case "south", "s", "down", "v":
		return South, nil
	case "west", "w", "left", "<":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadHeading, s)
}

// Turn is an in-place rotation by one heading step.
type Turn uint8

const (
	TurnLeft Turn = iota
	TurnRight
)

// Turns lists both rotations in a fixed order.
var Turns = [2]Turn{TurnLeft, TurnRight}

// inverseTurn undoes a rotation: the state reached by turning left is left
// again by turning right, and vice versa.
var inverseTurn = [2]Turn{
	TurnLeft:  TurnRight,
	TurnRight: TurnLeft,
}

// Apply rotates h.
func (t Turn) Apply(h Heading) Heading {
	if t == TurnLeft {
		return h.Left()
	}
	return h.Right()
}

// Inverse returns the rotation that undoes t.
func (t Turn) Inverse() Turn { return inverseTurn[t&1] }

// String returns "left" or "right".
func (t Turn) String() string {
	if t == TurnLeft {
		return "left"
	}
	return "right"
}

// Position is a tile: a grid cell independent of heading.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// State is a (position, heading) pair. Two States are equal only when all
// three fields match.
type State struct {
	Row, Col int
	Heading  Heading
}

// Pos projects the state onto its tile.
func (s State) Pos() Position { return Position{Row: s.Row, Col: s.Col} }

// String formats the state as "(row,col,heading)".
func (s State) String() string { return fmt.Sprintf("(%d,%d,%s)", s.Row, s.Col, s.Heading) }

// Grid is an immutable maze. Cells[r][c] holds the kind of cell (r, c).
// Start, End and the initial heading are validated at construction.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
	start      Position
	end        Position
	heading    Heading
}
