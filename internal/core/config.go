package core

// RuntimeConfig contains configuration passed to the game at construction.
type RuntimeConfig struct {
	Rows int   // Board height in cells
	Cols int   // Board width in cells
	Seed int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the usual 20x20 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows: 20,
		Cols: 20,
		Seed: 0, // 0 means use current time at the CLI layer
	}
}

// Status is the game loop state.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusDead
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusDead:
		return "dead"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over reports whether the loop must stop.
func (s Status) Over() bool {
	return s != StatusRunning
}

// GameState is the externally visible state after a tick.
type GameState struct {
	Length int    // Current snake length
	Eaten  int    // Food eaten so far
	Status Status // Loop state
}

// StepResult is returned by Game.Step after each loop iteration.
type StepResult struct {
	State GameState
	Moved bool // Whether the snake advanced this iteration
}
