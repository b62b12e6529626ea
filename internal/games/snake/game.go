// Package snake implements the single-player snake game: body movement and
// growth, uniform food placement, the speed ratchet and the per-tick state
// machine. Output goes through a Renderer; the package does no I/O itself.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-snake/internal/core"
)

// Start layout of every new game.
var (
	StartHead   = core.Cell{Row: 1, Col: 1}
	StartDir    = core.DirRight
	StartLength = 2
)

// Renderer is the display the game draws to. Write paints a single cell;
// Show paints the occupied glyph on every body cell and leaves stale cells to
// the caller.
type Renderer interface {
	Write(row, col int, glyph rune) error
	Show(body []core.Cell) error
}

// Game owns one snake, one food cell and one speed ratchet on a shared board.
type Game struct {
	board  core.Board
	snake  *Snake
	foods  *FoodPicker
	speed  *Speed
	screen Renderer
	logger *log.Logger
	seed   int64

	food    core.Cell
	hasFood bool
	dir     core.Direction // Last requested heading
	count   int            // Iterations since the last move
	ticks   uint64
	moves   int
	eaten   int
	status  core.Status
}

// New builds a game for cfg. It fails when the start layout does not fit the
// board; nothing is drawn until Start.
func New(cfg core.RuntimeConfig, screen Renderer, logger *log.Logger) (*Game, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("snake: invalid board %dx%d", cfg.Rows, cfg.Cols)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := core.NewBoard(cfg.Rows, cfg.Cols)
	s, err := NewSnake(board, StartHead, StartDir, StartLength)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:  board,
		snake:  s,
		foods:  NewFoodPicker(board, rand.New(rand.NewSource(cfg.Seed))),
		speed:  NewSpeed(s.Len()),
		screen: screen,
		logger: logger,
		seed:   cfg.Seed,
		dir:    s.Direction(),
		status: core.StatusRunning,
	}, nil
}

// Start places the first food and paints the snake.
func (g *Game) Start() error {
	g.logger.Info("game started",
		"rows", g.board.Rows(), "cols", g.board.Cols(), "seed", g.seed)

	if g.snake.Len() == g.board.Area() {
		g.status = core.StatusWon
		return nil
	}
	if err := g.placeFood(); err != nil {
		return err
	}
	return g.screen.Show(g.snake.body)
}

// Step runs one loop iteration: apply input, and once enough iterations have
// accumulated for the current speed level, advance the snake.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.status.Over() {
		return g.result(false), nil
	}

	g.ticks++
	g.count++

	if in.Has(core.ActionQuit) {
		g.finish(core.StatusQuit)
		return g.result(false), nil
	}
	if d, ok := in.Direction(); ok {
		g.dir = d
	}

	if g.count < g.speed.Level() {
		return g.result(false), nil
	}
	g.count = 0

	if err := g.advance(); err != nil {
		return g.result(true), err
	}
	return g.result(true), nil
}

// advance performs one move and everything that follows from it.
func (g *Game) advance() error {
	tail, err := g.snake.Move(g.dir)
	if err != nil {
		if errors.Is(err, ErrCollision) {
			g.logger.Debug("collision", "err", err)
			g.finish(core.StatusDead)
			return nil
		}
		return err
	}
	g.moves++

	if g.hasFood && g.snake.Head() == g.food {
		g.snake.AddTail(tail)
		g.eaten++
		g.hasFood = false

		if g.snake.Len() == g.board.Area() {
			g.finish(core.StatusWon)
			return nil
		}
		if err := g.placeFood(); err != nil {
			return err
		}
	} else if err := g.screen.Write(tail.Row, tail.Col, core.GlyphEmpty); err != nil {
		return err
	}

	if err := g.screen.Show(g.snake.body); err != nil {
		return err
	}

	if g.speed.Adjust(g.snake.Len()) {
		g.logger.Info("speed up", "level", g.speed.Level(), "length", g.snake.Len())
	}
	return nil
}

// placeFood picks a free cell and paints it.
func (g *Game) placeFood() error {
	cell, err := g.foods.RandomPoint(g.snake)
	if err != nil {
		return err
	}
	g.food = cell
	g.hasFood = true
	g.logger.Debug("food placed", "row", cell.Row, "col", cell.Col)
	return g.screen.Write(cell.Row, cell.Col, core.GlyphFood)
}

func (g *Game) finish(status core.Status) {
	g.status = status
	g.logger.Info("game over",
		"status", status, "length", g.snake.Len(), "moves", g.moves, "ticks", g.ticks)
}

func (g *Game) result(moved bool) core.StepResult {
	return core.StepResult{State: g.State(), Moved: moved}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Length: g.snake.Len(),
		Eaten:  g.eaten,
		Status: g.status,
	}
}
