package snake

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tiny-snake/internal/core"
)

func TestNewSnakeLayout(t *testing.T) {
	board := core.NewBoard(5, 5)

	tests := []struct {
		name   string
		head   core.Cell
		dir    core.Direction
		length int
		want   []core.Cell // nil means construction fails
	}{
		{
			name: "facing right extends left",
			head: core.Cell{Row: 2, Col: 2}, dir: core.DirRight, length: 2,
			want: []core.Cell{{Row: 2, Col: 2}, {Row: 2, Col: 1}},
		},
		{
			name: "facing up extends down",
			head: core.Cell{Row: 0, Col: 3}, dir: core.DirUp, length: 3,
			want: []core.Cell{{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}},
		},
		{
			name: "facing left extends right",
			head: core.Cell{Row: 4, Col: 0}, dir: core.DirLeft, length: 5,
			want: []core.Cell{{Row: 4, Col: 0}, {Row: 4, Col: 1}, {Row: 4, Col: 2}, {Row: 4, Col: 3}, {Row: 4, Col: 4}},
		},
		{
			name: "single cell",
			head: core.Cell{Row: 0, Col: 0}, dir: core.DirDown, length: 1,
			want: []core.Cell{{Row: 0, Col: 0}},
		},
		{
			name: "negative coordinate",
			head: core.Cell{Row: 1, Col: 1}, dir: core.DirRight, length: 3,
		},
		{
			name: "past the board edge",
			head: core.Cell{Row: 4, Col: 4}, dir: core.DirLeft, length: 2,
		},
		{
			name: "zero length",
			head: core.Cell{Row: 2, Col: 2}, dir: core.DirRight, length: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSnake(board, tc.head, tc.dir, tc.length)

			if tc.want == nil {
				if !errors.Is(err, ErrInvalidSnake) {
					t.Errorf("error = %v, expected ErrInvalidSnake", err)
				}
				if s.Len() != 0 {
					t.Errorf("failed construction should leave an empty body, got %v", s.Body())
				}
				return
			}

			if err != nil {
				t.Fatalf("NewSnake() failed: %v", err)
			}
			if s.Len() != tc.length {
				t.Errorf("Len() = %d, expected %d", s.Len(), tc.length)
			}
			if !slices.Equal(s.Body(), tc.want) {
				t.Errorf("Body() = %v, expected %v", s.Body(), tc.want)
			}

			seen := make(map[core.Cell]bool)
			for _, c := range s.Body() {
				if seen[c] {
					t.Errorf("duplicate body cell %v", c)
				}
				seen[c] = true
			}
		})
	}
}

func TestMoveStraightPath(t *testing.T) {
	board := core.NewBoard(5, 10)
	s, err := NewSnake(board, core.Cell{Row: 2, Col: 2}, core.DirRight, 2)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}

	tail, err := s.Move(core.DirRight)
	if err != nil {
		t.Fatalf("first move failed: %v", err)
	}
	if tail != (core.Cell{Row: 2, Col: 1}) {
		t.Errorf("first move returned tail %v, expected (2, 1)", tail)
	}

	for i := 0; i < 6; i++ {
		if _, err := s.Move(core.DirRight); err != nil {
			t.Fatalf("move %d failed: %v", i+2, err)
		}
		if s.Len() != 2 {
			t.Fatalf("length changed to %d without eating", s.Len())
		}
	}

	want := []core.Cell{{Row: 2, Col: 9}, {Row: 2, Col: 8}}
	if !slices.Equal(s.Body(), want) {
		t.Errorf("Body() = %v, expected %v", s.Body(), want)
	}
}

func TestMoveOffBoard(t *testing.T) {
	board := core.NewBoard(4, 4)

	tests := []struct {
		name string
		head core.Cell
		dir  core.Direction
	}{
		{"top edge", core.Cell{Row: 0, Col: 2}, core.DirUp},
		{"bottom edge", core.Cell{Row: 3, Col: 2}, core.DirDown},
		{"left edge", core.Cell{Row: 2, Col: 0}, core.DirLeft},
		{"right edge", core.Cell{Row: 2, Col: 3}, core.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSnake(board, tc.head, tc.dir, 1)
			if err != nil {
				t.Fatalf("NewSnake() failed: %v", err)
			}

			_, err = s.Move(tc.dir)
			if !errors.Is(err, ErrCollision) {
				t.Errorf("Move(%v) error = %v, expected ErrCollision", tc.dir, err)
			}
			if s.Head() != tc.head || s.Len() != 1 {
				t.Errorf("collision should leave the body untouched, got %v", s.Body())
			}
		})
	}
}

func TestMoveIntoBody(t *testing.T) {
	board := core.NewBoard(5, 5)

	// Head at (2,2) curling around so that (2,3) is mid-body
	s := &Snake{
		board: board,
		dir:   core.DirUp,
		body: []core.Cell{
			{Row: 2, Col: 2},
			{Row: 3, Col: 2},
			{Row: 3, Col: 3},
			{Row: 2, Col: 3},
			{Row: 1, Col: 3},
		},
	}
	before := s.Body()

	if _, err := s.Move(core.DirRight); !errors.Is(err, ErrCollision) {
		t.Fatalf("Move into body error = %v, expected ErrCollision", err)
	}
	if !slices.Equal(s.Body(), before) {
		t.Errorf("collision changed the body: %v", s.Body())
	}
	if s.Direction() != core.DirRight {
		t.Errorf("heading should be updated even on collision, got %v", s.Direction())
	}
}

func TestMoveIntoVacatingTail(t *testing.T) {
	board := core.NewBoard(5, 5)

	// Same curl but (2,3) is the tail and leaves this step
	s := &Snake{
		board: board,
		dir:   core.DirUp,
		body: []core.Cell{
			{Row: 2, Col: 2},
			{Row: 3, Col: 2},
			{Row: 3, Col: 3},
			{Row: 2, Col: 3},
		},
	}

	tail, err := s.Move(core.DirRight)
	if err != nil {
		t.Fatalf("moving into the vacating tail should be legal: %v", err)
	}
	if tail != (core.Cell{Row: 2, Col: 3}) {
		t.Errorf("tail = %v, expected (2, 3)", tail)
	}
	if s.Head() != (core.Cell{Row: 2, Col: 3}) {
		t.Errorf("Head() = %v, expected (2, 3)", s.Head())
	}
}

func TestReversal(t *testing.T) {
	board := core.NewBoard(5, 5)

	t.Run("length two reverses onto its tail", func(t *testing.T) {
		s, err := NewSnake(board, core.Cell{Row: 2, Col: 2}, core.DirRight, 2)
		if err != nil {
			t.Fatalf("NewSnake() failed: %v", err)
		}

		if _, err := s.Move(core.DirLeft); err != nil {
			t.Fatalf("reversal onto the vacating tail failed: %v", err)
		}
		want := []core.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}}
		if !slices.Equal(s.Body(), want) {
			t.Errorf("Body() = %v, expected %v", s.Body(), want)
		}
	})

	t.Run("length three reverses into its neck", func(t *testing.T) {
		s, err := NewSnake(board, core.Cell{Row: 2, Col: 2}, core.DirRight, 3)
		if err != nil {
			t.Fatalf("NewSnake() failed: %v", err)
		}

		if _, err := s.Move(core.DirLeft); !errors.Is(err, ErrCollision) {
			t.Errorf("reversal error = %v, expected ErrCollision", err)
		}
	})
}

func TestAddTailGrowth(t *testing.T) {
	board := core.NewBoard(5, 5)
	s, err := NewSnake(board, core.Cell{Row: 2, Col: 3}, core.DirRight, 3)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}
	before := s.Body()

	tail, err := s.Move(core.DirRight)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	s.AddTail(tail)

	if s.Len() != len(before)+1 {
		t.Fatalf("Len() = %d, expected %d", s.Len(), len(before)+1)
	}
	if s.Head() != (core.Cell{Row: 2, Col: 4}) {
		t.Errorf("Head() = %v, expected (2, 4)", s.Head())
	}
	if !slices.Equal(s.Body()[1:], before) {
		t.Errorf("body behind the head = %v, expected the previous body %v", s.Body()[1:], before)
	}
}

func TestIncluded(t *testing.T) {
	board := core.NewBoard(5, 5)
	s, err := NewSnake(board, core.Cell{Row: 1, Col: 1}, core.DirRight, 2)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}

	if !s.Included(core.Cell{Row: 1, Col: 0}) {
		t.Error("tail cell should be included")
	}
	if s.Included(core.Cell{Row: 1, Col: 2}) {
		t.Error("cell ahead of the head should not be included")
	}
}
