package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows: 20,
			Cols: 20,
		},
		Timing: TimingConfig{
			TickMS: 50,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
