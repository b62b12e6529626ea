package terminal

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-snake/internal/core"
)

// DefaultTick is the sleep between loop iterations.
const DefaultTick = 50 * time.Millisecond

// Messages printed below the grid when a game ends.
const (
	MsgWon  = "You win!"
	MsgDead = "Dead!"
)

// Stepper advances the game by one loop iteration.
type Stepper interface {
	Step(in core.InputFrame) (core.StepResult, error)
}

// Loop paces a game in real time: sleep, poll input, step, until the game
// ends or the context is cancelled.
type Loop struct {
	Tick   time.Duration
	Sleep  func(time.Duration) // time.Sleep when nil
	Logger *log.Logger
}

// Run drives game until it is over and returns the final status. The display
// cursor is restored on every return path. A cancelled context is a quit.
func (l *Loop) Run(ctx context.Context, game Stepper, input InputSource, display Display) (status core.Status, err error) {
	defer func() {
		if qerr := display.Quit(); qerr != nil && err == nil {
			err = qerr
		}
	}()

	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	tick := l.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			return core.StatusQuit, nil
		}

		sleep(tick)

		res, err := game.Step(Decode(input.Poll()))
		if err != nil {
			return res.State.Status, err
		}
		if !res.State.Status.Over() {
			continue
		}

		switch res.State.Status {
		case core.StatusWon:
			err = display.Status(MsgWon)
		case core.StatusDead:
			err = display.Status(MsgDead)
		}
		logger.Info("loop finished", "status", res.State.Status, "length", res.State.Length)
		return res.State.Status, err
	}
}
