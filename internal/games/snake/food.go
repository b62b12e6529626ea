package snake

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tiny-snake/internal/core"
)

// ErrNoFreeCell is returned when food is requested on a full board.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// IntSource yields uniform integers in [0, n). *math/rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}

// FoodPicker chooses food cells uniformly among the cells the snake does not
// occupy. It draws a single index into the free cells and walks the board to
// it, so the cost is one pass over the board however full it is.
type FoodPicker struct {
	board core.Board
	rng   IntSource
}

// NewFoodPicker creates a picker for the given board.
func NewFoodPicker(board core.Board, rng IntSource) *FoodPicker {
	return &FoodPicker{board: board, rng: rng}
}

// RandomPoint returns a free cell drawn uniformly at random.
func (p *FoodPicker) RandomPoint(s *Snake) (core.Cell, error) {
	free := p.board.Area() - s.Len()
	if free <= 0 {
		return core.Cell{}, ErrNoFreeCell
	}

	occupied := mapset.New[core.Cell]()
	for _, c := range s.body {
		occupied.Put(c)
	}

	idx := p.rng.Intn(free)
	for _, c := range p.board.Cells() {
		if occupied.Has(c) {
			continue
		}
		if idx == 0 {
			return c, nil
		}
		idx--
	}

	// Only reachable if the body holds duplicate or off-board cells.
	return core.Cell{}, ErrNoFreeCell
}
