package core

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ANSI control sequences emitted by the screen.
const (
	SeqClear      = "\x1b[2J"
	SeqHome       = "\x1b[0;0H"
	SeqDown       = "\x1b[1B"
	SeqColorReset = "\x1b[0m"
)

// Cell is one addressable character position. The zero Cell is blank.
type Cell struct {
	Glyph rune
	Color Color
	Set   bool
}

// Blank reports whether nothing was written to the cell this frame.
func (c Cell) Blank() bool {
	return !c.Set
}

// appendTo writes the rendered form of the cell to buf.
func (c Cell) appendTo(buf *bytes.Buffer) {
	if !c.Set {
		buf.WriteByte(' ')
		return
	}
	buf.WriteString("\x1b[38;5;")
	buf.WriteString(c.Color.Code())
	buf.WriteByte('m')
	buf.WriteRune(c.Glyph)
	buf.WriteString(SeqColorReset)
}

// flusher is implemented by buffered streams such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Screen is a fixed-size character grid that accumulates writes for one
// frame and sends them to the terminal stream as a single block.
// A Screen has a single owner; it is not safe for concurrent use.
type Screen struct {
	out   io.Writer
	cols  int
	rows  int
	cells []Cell       // row-major, len == cols*rows
	frame bytes.Buffer // reused across flushes
}

// NewScreen allocates a cols x rows grid of blank cells and clears the
// terminal behind w. Non-positive dimensions panic.
func NewScreen(w io.Writer, cols, rows int) (*Screen, error) {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("core: invalid screen size %dx%d", cols, rows))
	}
	s := &Screen{
		out:   w,
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	if _, err := io.WriteString(w, SeqClear); err != nil {
		return nil, fmt.Errorf("core: cannot clear terminal: %w", err)
	}
	return s, nil
}

// Cols returns the grid width in characters.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the grid height in characters.
func (s *Screen) Rows() int {
	return s.rows
}

// Clear blanks every cell. The terminal itself is untouched until Flush.
func (s *Screen) Clear() {
	clear(s.cells)
}

// WriteChar places glyph with the given color at (row, col), replacing
// whatever was written there earlier in the frame.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) WriteChar(glyph rune, color Color, row, col int) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.cells[row*s.cols+col] = Cell{Glyph: glyph, Color: color, Set: true}
}

// Cell returns the cell at (row, col), or a blank cell when out of bounds.
func (s *Screen) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}
	}
	return s.cells[row*s.cols+col]
}

// Cells returns a copy of the row-major cell buffer.
func (s *Screen) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Flush renders the whole grid into one block (cursor home, then per row a
// carriage return, the cells and a cursor-down) and writes it to the stream
// with a single Write before flushing the stream.
func (s *Screen) Flush() error {
	s.frame.Reset()
	s.frame.WriteString(SeqHome)
	for row := 0; row < s.rows; row++ {
		s.frame.WriteByte('\r')
		for _, c := range s.cells[row*s.cols : (row+1)*s.cols] {
			c.appendTo(&s.frame)
		}
		s.frame.WriteString(SeqDown)
	}

	if _, err := s.out.Write(s.frame.Bytes()); err != nil {
		return fmt.Errorf("core: cannot write frame: %w", err)
	}
	if f, ok := s.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("core: cannot flush frame: %w", err)
		}
	}
	return nil
}

// String returns the glyphs of the grid without color, one line per row.
// Used for debugging and tests.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows)

	for row := 0; row < s.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range s.cells[row*s.cols : (row+1)*s.cols] {
			if c.Set {
				sb.WriteRune(c.Glyph)
			} else {
				sb.WriteRune(' ')
			}
		}
	}
	return sb.String()
}
