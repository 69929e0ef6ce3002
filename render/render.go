// Package render draws a maze as terminal text, highlighting the tiles that
// lie on some minimal-cost route.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// ColorMode selects whether ANSI styling is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Options controls glyphs and styling.
type Options struct {
	Color ColorMode
	Wall  rune
	Open  rune
	Tile  rune
	// Out is the destination checked in ColorAuto mode. Defaults to os.Stdout.
	Out *os.File
}

// DefaultOptions draws walls as '#', open cells as '.', path tiles as 'O'.
func DefaultOptions() Options {
	return Options{
		Color: ColorAuto,
		Wall:  '#',
		Open:  '.',
		Tile:  'O',
	}
}

// cellKind is what a single output glyph represents.
type cellKind int

const (
	kindOpen cellKind = iota
	kindWall
	kindTile
	kindStart
	kindEnd
)

// palette maps cell kinds to lipgloss styles.
type palette map[cellKind]lipgloss.Style

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		kindOpen:  r.NewStyle().Foreground(lipgloss.Color("240")),
		kindWall:  r.NewStyle().Foreground(lipgloss.Color("245")),
		kindTile:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		kindStart: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		kindEnd:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Maze renders g one text line per row. Cells listed in tiles use the Tile
// glyph; Start and End are always drawn as 'S' and 'E'.
func Maze(g *gridgraph.Grid, tiles []gridgraph.Position, opts Options) string {
	if g == nil {
		return ""
	}
	onPath := make(map[gridgraph.Position]struct{}, len(tiles))
	for _, p := range tiles {
		onPath[p] = struct{}{}
	}

	var styles palette
	if r := renderer(opts); r != nil {
		styles = newPalette(r)
	}

	var sb strings.Builder
	sb.Grow(g.Rows()*(g.Cols()+1) + 16)
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells of the same kind into one styled run.
		c := 0
		for c < g.Cols() {
			kind := classify(g, onPath, r, c)
			var run strings.Builder
			for c < g.Cols() && classify(g, onPath, r, c) == kind {
				run.WriteRune(glyph(kind, opts))
				c++
			}
			if styles == nil {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles[kind].Render(run.String()))
		}
	}

	return sb.String()
}

func classify(g *gridgraph.Grid, onPath map[gridgraph.Position]struct{}, r, c int) cellKind {
	p := gridgraph.Position{Row: r, Col: c}
	switch {
	case p == g.Start():
		return kindStart
	case p == g.End():
		return kindEnd
	case g.IsWall(r, c):
		return kindWall
	}
	if _, ok := onPath[p]; ok {
		return kindTile
	}
	return kindOpen
}

func glyph(k cellKind, opts Options) rune {
	switch k {
	case kindStart:
		return 'S'
	case kindEnd:
		return 'E'
	case kindWall:
		return orDefault(opts.Wall, '#')
	case kindTile:
		return orDefault(opts.Tile, 'O')
	default:
		return orDefault(opts.Open, '.')
	}
}

func orDefault(r, def rune) rune {
	if r == 0 {
		return def
	}
	return r
}

// renderer returns nil when no styling should be applied.
func renderer(opts Options) *lipgloss.Renderer {
	switch opts.Color {
	case ColorNever:
		return nil
	case ColorAlways:
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI256)
		return r
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if !term.IsTerminal(int(out.Fd())) {
		return nil
	}
	return lipgloss.NewRenderer(out)
}
