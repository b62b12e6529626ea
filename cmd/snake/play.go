package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-snake/internal/config"
	"github.com/vovakirdan/tiny-snake/internal/core"
	"github.com/vovakirdan/tiny-snake/internal/games/snake"
	"github.com/vovakirdan/tiny-snake/internal/platform/terminal"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the configured board.

Flags override the config file, which overrides the built-in defaults.

Examples:
  snake play
  snake play -r 8 -c 16 --tick 30
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	res, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg := res.Config

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", res.Source)
	for _, sk := range res.Skipped {
		logger.Warn("config file skipped", "path", sk.Path, "err", sk.Err)
	}
	if res.Source == config.SourceBuiltin {
		logger.Warn("embedded config unreadable, using built-in defaults")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rows, cols := cfg.Board.Rows, cfg.Board.Cols
	if termRows, termCols, sizeErr := terminal.Size(os.Stdout); sizeErr == nil && !terminal.Fits(rows, cols, termRows, termCols) {
		logger.Warn("terminal smaller than board",
			"rows", rows, "cols", cols, "term_rows", termRows, "term_cols", termCols)
	}

	display := terminal.NewTerminal(os.Stdout, rows, cols)
	game, err := snake.New(core.RuntimeConfig{Rows: rows, Cols: cols, Seed: seed}, display, logger)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	logger.Info("starting", "rows", rows, "cols", cols, "seed", seed, "tick", cfg.Tick())

	if err := play(cmd.Context(), game, display, cfg, logger); err != nil {
		return err
	}

	// Raw mode is off again, plain newlines are fine
	fmt.Fprintln(cmd.OutOrStdout(), terminal.Summary(game.Snapshot()))
	return nil
}

// play owns the raw terminal for the length of one game.
func play(ctx context.Context, game *snake.Game, display *terminal.Terminal, cfg config.Config, logger *log.Logger) (err error) {
	session, err := terminal.Open(os.Stdin)
	if err != nil {
		return err
	}
	defer logger.Debug("terminal restored")
	defer keepFirst(&err, session.Close)
	defer keepFirst(&err, display.Quit)

	if err := display.Init(); err != nil {
		return err
	}
	if err := game.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &terminal.Loop{Tick: cfg.Tick(), Logger: logger}
	status, err := loop.Run(ctx, game, terminal.NewReader(os.Stdin), display)
	logger.Info("game finished", "status", status)
	return err
}

// keepFirst runs fn and records its error in *err unless *err is already set.
func keepFirst(err *error, fn func() error) {
	if ferr := fn(); ferr != nil && *err == nil {
		*err = ferr
	}
}

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command) (config.Result, error) {
	res, err := config.Load(flagConfig)
	if err != nil {
		return res, err
	}

	cfg := &res.Config
	flags := cmd.Flags()
	if flags.Changed("row") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("col") {
		cfg.Board.Cols = flagCols
	}
	if flags.Changed("tick") {
		cfg.Timing.TickMS = flagTick
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return res, err
	}
	return res, nil
}
