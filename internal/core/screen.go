package core

import (
	"errors"
	"fmt"
	"strings"
)

// Glyphs used to paint board cells.
const (
	GlyphSnake = '◼'
	GlyphFood  = 'x'
	GlyphEmpty = '.'
)

// ErrOutOfBounds is returned when a write targets a cell outside the grid.
var ErrOutOfBounds = errors.New("beyond boundary")

// Screen is a persistent rows x cols glyph grid. It records what is currently
// painted on the display so a renderer can tell which writes change anything.
type Screen struct {
	rows  int
	cols  int
	cells [][]rune
}

// NewScreen creates a screen with every cell set to fill.
func NewScreen(rows, cols int, fill rune) *Screen {
	s := &Screen{
		rows: max(rows, 0),
		cols: max(cols, 0),
	}
	s.cells = make([][]rune, s.rows)
	for r := range s.cells {
		s.cells[r] = make([]rune, s.cols)
	}
	s.Fill(fill)
	return s
}

// Rows returns the screen height in cells.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the screen width in cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Fill sets every cell to r.
func (s *Screen) Fill(r rune) {
	for row := range s.cells {
		for col := range s.cells[row] {
			s.cells[row][col] = r
		}
	}
}

// InBounds reports whether (row, col) addresses a cell of the screen.
func (s *Screen) InBounds(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// Set places r at (row, col) and reports whether the cell changed.
func (s *Screen) Set(row, col int, r rune) (bool, error) {
	if !s.InBounds(row, col) {
		return false, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, row, col, s.rows, s.cols)
	}
	if s.cells[row][col] == r {
		return false, nil
	}
	s.cells[row][col] = r
	return true, nil
}

// Get returns the rune at (row, col), or 0 for out-of-bounds coordinates.
func (s *Screen) Get(row, col int) rune {
	if !s.InBounds(row, col) {
		return 0
	}
	return s.cells[row][col]
}

// Count returns the number of cells holding r.
func (s *Screen) Count(r rune) int {
	n := 0
	for row := range s.cells {
		for _, c := range s.cells[row] {
			if c == r {
				n++
			}
		}
	}
	return n
}

// Row returns a copy of the given row as a string.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	return string(s.cells[row])
}

// String joins all rows with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.cols + 1) * s.rows * 3)

	for row := 0; row < s.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range s.cells[row] {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
