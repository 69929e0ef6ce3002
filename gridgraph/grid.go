// Package gridgraph provides the immutable oriented maze consumed by the
// shortest-path packages. Cells are addressed as (row, col) with row 0 at
// the top; headings index a dense state space of 4·R·C slots.
package gridgraph

import (
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular matrix of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadHeading for an unknown
// heading, and the out-of-bounds / on-wall errors for Start and End.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(cells [][]CellKind, start Position, heading Heading, end Position) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !heading.Valid() {
		return nil, ErrBadHeading
	}
	// Deep copy to prevent external mutation
	cp := make([][]CellKind, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]CellKind, w)
		copy(cp[r], cells[r])
	}
	g := &Grid{
		rows:    h,
		cols:    w,
		cells:   cp,
		start:   start,
		end:     end,
		heading: heading,
	}
	if !g.InBounds(start.Row, start.Col) {
		return nil, ErrStartOutOfBounds
	}
	if !g.InBounds(end.Row, end.Col) {
		return nil, ErrEndOutOfBounds
	}
	if g.IsWall(start.Row, start.Col) {
		return nil, ErrStartOnWall
	}
	if g.IsWall(end.Row, end.Col) {
		return nil, ErrEndOnWall
	}

	return g, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start tile.
func (g *Grid) Start() Position { return g.start }

// End returns the end tile.
func (g *Grid) End() Position { return g.end }

// Heading returns the initial heading at Start.
func (g *Grid) Heading() Heading { return g.heading }

// StartState is (Start, initial Heading).
func (g *Grid) StartState() State {
	return State{Row: g.start.Row, Col: g.start.Col, Heading: g.heading}
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// IsWall reports whether (r,c) is a wall. Out-of-bounds cells are not walls;
// combine with InBounds, or use Passable.
func (g *Grid) IsWall(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c] == Wall
}

// Passable reports whether (r,c) is in bounds and open.
func (g *Grid) Passable(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c] != Wall
}

// Kind returns the kind of cell (r,c). It panics if (r,c) is out of bounds.
func (g *Grid) Kind(r, c int) CellKind {
	return g.cells[r][c]
}

// NumStates is the size of the dense state space, 4·R·C.
func (g *Grid) NumStates() int {
	return g.rows * g.cols * NumHeadings
}

// StateIndex maps s to its dense slot: (r·C + c)·4 + heading.
// The caller must ensure s is in bounds with a valid heading.
// Complexity: O(1).
func (g *Grid) StateIndex(s State) int {
	return g.index(s.Row, s.Col)*NumHeadings + int(s.Heading)
}

// StateAt is the inverse of StateIndex.
func (g *Grid) StateAt(idx int) State {
	r, c := g.Coordinate(idx / NumHeadings)
	return State{Row: r, Col: c, Heading: Heading(idx % NumHeadings)}
}

// WithWall returns a copy of g with (r,c) turned into a wall.
// Walling Start or End yields ErrStartOnWall / ErrEndOnWall.
func (g *Grid) WithWall(r, c int) (*Grid, error) {
	if !g.InBounds(r, c) {
		return g, nil
	}
	cells := make([][]CellKind, g.rows)
	for i := range g.cells {
		cells[i] = g.cells[i]
	}
	row := make([]CellKind, g.cols)
	copy(row, g.cells[r])
	row[c] = Wall
	cells[r] = row

	return NewGrid(cells, g.start, g.heading, g.end)
}

// String renders the grid back into the text format accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch {
			case r == g.start.Row && c == g.start.Col:
				sb.WriteByte(glyphStart)
			case r == g.end.Row && c == g.end.Col:
				sb.WriteByte(glyphEnd)
			case g.cells[r][c] == Wall:
				sb.WriteByte(glyphWall)
			default:
				sb.WriteByte(glyphOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (r,c) to a row‑major index: r*Cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row‑major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}
