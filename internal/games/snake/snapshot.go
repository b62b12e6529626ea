package snake

import "github.com/vovakirdan/tiny-snake/internal/core"

// Snapshot captures the game state for determinism tests and the end-of-game
// summary.
type Snapshot struct {
	Tick    uint64
	Moves   int
	Eaten   int
	Length  int
	Head    core.Cell
	Dir     core.Direction
	Food    core.Cell
	HasFood bool
	Level   int // Iterations per move
	Status  core.Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.ticks,
		Moves:   g.moves,
		Eaten:   g.eaten,
		Length:  g.snake.Len(),
		Head:    g.snake.Head(),
		Dir:     g.snake.Direction(),
		Food:    g.food,
		HasFood: g.hasFood,
		Level:   g.speed.Level(),
		Status:  g.status,
	}
}
