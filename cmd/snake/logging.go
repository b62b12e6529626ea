package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiny-snake/internal/config"
)

// newLogger builds the process logger. Stdout belongs to the game, so logs
// go to the configured file or nowhere.
func newLogger(lc config.LogConfig) (*log.Logger, func(), error) {
	closeFn := func() {}

	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, closeFn, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	var w io.Writer = io.Discard
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
