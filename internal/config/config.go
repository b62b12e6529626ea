// Package config provides YAML-based configuration loading and validation for
// the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig marks a startup configuration that cannot be played.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all startup settings.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Log    LogConfig    `yaml:"log"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines loop pacing.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // Sleep per loop iteration in milliseconds
}

// LogConfig defines where diagnostics go.
type LogConfig struct {
	File  string `yaml:"file"`  // Empty discards logs
	Level string `yaml:"level"` // debug, info, warn, error
}

// Tick returns the loop sleep as a duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the settings and wraps ErrInvalidConfig with the first problem found.
func (c Config) Validate() error {
	if c.Board.Rows <= 0 {
		return fmt.Errorf("%w: board rows must be positive, got %d", ErrInvalidConfig, c.Board.Rows)
	}
	if c.Board.Cols <= 0 {
		return fmt.Errorf("%w: board cols must be positive, got %d", ErrInvalidConfig, c.Board.Cols)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickMS)
	}

	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
}
