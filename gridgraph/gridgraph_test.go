package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/reindeer/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects malformed inputs.
func TestNewGrid_Errors(t *testing.T) {
	o, w := gridgraph.Open, gridgraph.Wall
	square := [][]gridgraph.CellKind{{o, o}, {o, w}}
	cases := []struct {
		name    string
		cells   [][]gridgraph.CellKind
		start   gridgraph.Position
		heading gridgraph.Heading
		end     gridgraph.Position
		err     error
	}{
		{"EmptyRows", [][]gridgraph.CellKind{}, gridgraph.Position{}, gridgraph.East, gridgraph.Position{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.CellKind{{}}, gridgraph.Position{}, gridgraph.East, gridgraph.Position{}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.CellKind{{o, o}, {o}}, gridgraph.Position{}, gridgraph.East, gridgraph.Position{}, gridgraph.ErrNonRectangular},
		{"BadHeading", square, gridgraph.Position{}, gridgraph.Heading(7), gridgraph.Position{}, gridgraph.ErrBadHeading},
		{"StartOut", square, gridgraph.Position{Row: 2}, gridgraph.East, gridgraph.Position{}, gridgraph.ErrStartOutOfBounds},
		{"EndOut", square, gridgraph.Position{}, gridgraph.East, gridgraph.Position{Col: -1}, gridgraph.ErrEndOutOfBounds},
		{"StartWall", square, gridgraph.Position{Row: 1, Col: 1}, gridgraph.East, gridgraph.Position{}, gridgraph.ErrStartOnWall},
		{"EndWall", square, gridgraph.Position{}, gridgraph.East, gridgraph.Position{Row: 1, Col: 1}, gridgraph.ErrEndOnWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.cells, tc.start, tc.heading, tc.end)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	cells := [][]gridgraph.CellKind{{gridgraph.Open, gridgraph.Open}}
	g, err := gridgraph.NewGrid(cells, gridgraph.Position{}, gridgraph.East, gridgraph.Position{Col: 1})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	cells[0][1] = gridgraph.Wall
	if g.IsWall(0, 1) {
		t.Errorf("grid mutated through input slice")
	}
}

// TestInBounds checks InBounds, IsWall and Passable on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.ParseString("S#.\n..E\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {1, 3}, {0, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
		if g.Passable(rc[0], rc[1]) || g.IsWall(rc[0], rc[1]) {
			t.Errorf("(%d,%d) out of bounds must be neither passable nor wall", rc[0], rc[1])
		}
	}
	if !g.IsWall(0, 1) || g.Passable(0, 1) {
		t.Errorf("(0,1) should be a wall")
	}
}

//----------------------------------------------------------------------------//
// Heading and State indexing
//----------------------------------------------------------------------------//

// TestHeading_Rotation checks the clockwise cycle and that Left undoes Right.
func TestHeading_Rotation(t *testing.T) {
	want := map[gridgraph.Heading][2]gridgraph.Heading{
		gridgraph.North: {gridgraph.West, gridgraph.East},
		gridgraph.East:  {gridgraph.North, gridgraph.South},
		gridgraph.South: {gridgraph.East, gridgraph.West},
		gridgraph.West:  {gridgraph.South, gridgraph.North},
	}
	for h, lr := range want {
		if got := h.Left(); got != lr[0] {
			t.Errorf("%s.Left() = %s; want %s", h, got, lr[0])
		}
		if got := h.Right(); got != lr[1] {
			t.Errorf("%s.Right() = %s; want %s", h, got, lr[1])
		}
		if h.Left().Right() != h || h.Right().Left() != h {
			t.Errorf("%s: Left and Right are not inverses", h)
		}
	}
}

// TestHeading_Delta checks the forward step of every heading.
func TestHeading_Delta(t *testing.T) {
	cases := []struct {
		h      gridgraph.Heading
		dr, dc int
	}{
		{gridgraph.North, -1, 0},
		{gridgraph.East, 0, 1},
		{gridgraph.South, 1, 0},
		{gridgraph.West, 0, -1},
	}
	for _, tc := range cases {
		dr, dc := tc.h.Delta()
		if dr != tc.dr || dc != tc.dc {
			t.Errorf("%s.Delta() = (%d,%d); want (%d,%d)", tc.h, dr, dc, tc.dr, tc.dc)
		}
	}
}

// TestParseHeading covers names, abbreviations, glyphs and rejects junk.
func TestParseHeading(t *testing.T) {
	ok := map[string]gridgraph.Heading{
		"north": gridgraph.North, "E": gridgraph.East, " South ": gridgraph.South,
		"<": gridgraph.West, "^": gridgraph.North, "v": gridgraph.South,
	}
	for in, want := range ok {
		got, err := gridgraph.ParseHeading(in)
		if err != nil || got != want {
			t.Errorf("ParseHeading(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := gridgraph.ParseHeading("up-left"); !errors.Is(err, gridgraph.ErrBadHeading) {
		t.Errorf("ParseHeading(up-left) error = %v; want ErrBadHeading", err)
	}
}

// TestStateIndex_RoundTrip verifies StateIndex is a bijection onto [0, 4·R·C).
func TestStateIndex_RoundTrip(t *testing.T) {
	g, err := gridgraph.ParseString("S..\n...\n..E\n...\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.NumStates() != 4*4*3 {
		t.Fatalf("NumStates = %d; want 48", g.NumStates())
	}
	seen := make(map[int]bool, g.NumStates())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			for h := gridgraph.North; h <= gridgraph.West; h++ {
				s := gridgraph.State{Row: r, Col: c, Heading: h}
				idx := g.StateIndex(s)
				if idx < 0 || idx >= g.NumStates() || seen[idx] {
					t.Fatalf("StateIndex(%v) = %d out of range or duplicated", s, idx)
				}
				seen[idx] = true
				if back := g.StateAt(idx); back != s {
					t.Errorf("StateAt(StateIndex(%v)) = %v", s, back)
				}
			}
		}
	}
}

// TestWithWall returns a new grid and leaves the original untouched.
func TestWithWall(t *testing.T) {
	g, err := gridgraph.ParseString("S..E\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	g2, err := g.WithWall(0, 1)
	if err != nil {
		t.Fatalf("WithWall error: %v", err)
	}
	if !g2.IsWall(0, 1) || g.IsWall(0, 1) {
		t.Errorf("WithWall must only affect the copy")
	}
	if _, err := g.WithWall(0, 3); !errors.Is(err, gridgraph.ErrEndOnWall) {
		t.Errorf("walling End error = %v; want ErrEndOnWall", err)
	}
}

// TestTurn_Inverse checks that undoing a turn restores the heading and that
// the inverse of a left turn is a right turn.
func TestTurn_Inverse(t *testing.T) {
	if gridgraph.TurnLeft.Inverse() != gridgraph.TurnRight || gridgraph.TurnRight.Inverse() != gridgraph.TurnLeft {
		t.Fatalf("inverse table must swap left and right")
	}
	for h := gridgraph.North; h <= gridgraph.West; h++ {
		for _, turn := range gridgraph.Turns {
			if got := turn.Inverse().Apply(turn.Apply(h)); got != h {
				t.Errorf("%s then inverse from %s gave %s", turn, h, got)
			}
			if turn.Apply(turn.Apply(h)) == h {
				t.Errorf("%s applied twice from %s must not return to it", turn, h)
			}
		}
	}
}
