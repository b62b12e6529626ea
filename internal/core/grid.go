// Package core provides fundamental types shared by the snake game and its
// terminal front end. It has no terminal or I/O dependencies, which keeps game
// logic pure and testable.
package core

// Cell is a board coordinate. Row 0 is the top row, Col 0 the leftmost column.
type Cell struct {
	Row, Col int
}

// Add returns the neighbouring cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dr, dc := d.Step()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is one of the four headings the snake can take.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Step returns the unit vector (row delta, col delta) for the direction.
func (d Direction) Step() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Board is a fixed rows x cols grid. It is immutable once built and may be
// shared freely.
type Board struct {
	rows  int
	cols  int
	cells []Cell // row-major
}

// NewBoard creates a board and enumerates its cells in row-major order.
// Non-positive dimensions produce an empty board.
func NewBoard(rows, cols int) Board {
	b := Board{rows: max(rows, 0), cols: max(cols, 0)}
	b.cells = make([]Cell, 0, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			b.cells = append(b.cells, Cell{Row: r, Col: c})
		}
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	return b.cols
}

// Area returns rows*cols.
func (b Board) Area() int {
	return b.rows * b.cols
}

// Contains reports whether c lies on the board.
func (b Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Cells returns every coordinate of the board in row-major order.
// The slice is shared and must not be modified.
func (b Board) Cells() []Cell {
	return b.cells
}
