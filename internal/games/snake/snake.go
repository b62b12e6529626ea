package snake

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tiny-snake/internal/core"
)

var (
	// ErrCollision reports a move into the snake's own body or off the board.
	ErrCollision = errors.New("snake: collision")

	// ErrInvalidSnake reports a start layout that does not fit on the board.
	ErrInvalidSnake = errors.New("snake: start layout leaves the board")
)

// Snake is the ordered body (head first) and the current heading.
type Snake struct {
	body  []core.Cell // Head at index 0
	dir   core.Direction
	board core.Board
}

// NewSnake lays out length cells starting at head and extending backwards,
// opposite to dir. If any cell would leave the board the snake is returned
// with an empty body together with ErrInvalidSnake.
func NewSnake(board core.Board, head core.Cell, dir core.Direction, length int) (*Snake, error) {
	s := &Snake{dir: dir, board: board}
	if length < 1 {
		return s, fmt.Errorf("%w: length %d", ErrInvalidSnake, length)
	}

	body := make([]core.Cell, 0, length)
	back := dir.Opposite()
	cell := head
	for range length {
		if !board.Contains(cell) {
			return s, fmt.Errorf("%w: cell (%d, %d) on a %dx%d board",
				ErrInvalidSnake, cell.Row, cell.Col, board.Rows(), board.Cols())
		}
		body = append(body, cell)
		cell = cell.Add(back)
	}

	s.body = body
	return s, nil
}

// Head returns the first body cell.
func (s *Snake) Head() core.Cell {
	if len(s.body) == 0 {
		return core.Cell{Row: -1, Col: -1}
	}
	return s.body[0]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	return slices.Clone(s.body)
}

// Included reports whether c is part of the body.
func (s *Snake) Included(c core.Cell) bool {
	return slices.Contains(s.body, c)
}

// Move sets the heading to dir and advances one cell. The tail leaves first,
// so stepping into the cell it vacates is legal. On success the popped tail
// is returned; the caller either drops it or hands it back to AddTail.
//
// A move off the board or into the remaining body returns ErrCollision and
// leaves the body untouched.
func (s *Snake) Move(dir core.Direction) (core.Cell, error) {
	s.dir = dir
	if len(s.body) == 0 {
		return core.Cell{}, ErrInvalidSnake
	}

	last := len(s.body) - 1
	tail := s.body[last]
	next := s.body[0].Add(dir)

	if !s.board.Contains(next) {
		return tail, fmt.Errorf("%w: (%d, %d) is off the board", ErrCollision, next.Row, next.Col)
	}
	if slices.Contains(s.body[:last], next) {
		return tail, fmt.Errorf("%w: (%d, %d) is part of the body", ErrCollision, next.Row, next.Col)
	}

	copy(s.body[1:], s.body[:last])
	s.body[0] = next
	return tail, nil
}

// AddTail appends c at the tail end. Used once per food eaten.
func (s *Snake) AddTail(c core.Cell) {
	s.body = append(s.body, c)
}
