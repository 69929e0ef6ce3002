package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Glyphs of the text maze format.
const (
	glyphWall  = '#'
	glyphOpen  = '.'
	glyphStart = 'S'
	glyphEnd   = 'E'
)

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	heading Heading
}

// WithStartHeading overrides the initial heading (default East).
func WithStartHeading(h Heading) ParseOption {
	return func(o *parseOptions) {
		o.heading = h
	}
}

// Parse reads a maze in the text format: one line per row, '#' for walls,
// '.' for open cells, exactly one 'S' and one 'E' (both open).
// Trailing blank lines and carriage returns are ignored.
//
// Complexity: O(R×C).
func Parse(r io.Reader, opts ...ParseOption) (*Grid, error) {
	o := parseOptions{heading: East}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		cells            [][]CellKind
		start, end       Position
		hasStart, hasEnd bool
		blankLines       int
	)
	width := -1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			blankLines++
			continue
		}
		if blankLines > 0 && len(cells) > 0 {
			return nil, fmt.Errorf("%w: blank line inside maze at row %d", ErrNonRectangular, len(cells))
		}
		blankLines = 0
		if width >= 0 && len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, len(cells), len(line), width)
		}
		width = len(line)

		row := make([]CellKind, width)
		rIdx := len(cells)
		for c := 0; c < width; c++ {
			switch line[c] {
			case glyphWall:
				row[c] = Wall
			case glyphOpen:
				row[c] = Open
			case glyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateStart, rIdx, c)
				}
				hasStart, start = true, Position{Row: rIdx, Col: c}
			case glyphEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateEnd, rIdx, c)
				}
				hasEnd, end = true, Position{Row: rIdx, Col: c}
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, line[c], rIdx, c)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	return NewGrid(cells, start, o.heading, end)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...ParseOption) (*Grid, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile opens path and parses its contents.
func ParseFile(path string, opts ...ParseOption) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open maze: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}
