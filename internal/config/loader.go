package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Skipped is a config file that exists but could not be used.
type Skipped struct {
	Path string
	Err  error
}

// Result is a loaded configuration with where it came from.
type Result struct {
	Config  Config
	Source  Source
	Skipped []Skipped // Unreadable or malformed files passed over on the way
}

// Load reads the configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error. The
// other locations are passed over when missing; when present but unusable
// they are recorded in Result.Skipped.
func Load(customPath string) (Result, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Result{Config: cfg, Source: SourceCustom}, err
		}
		return Result{Config: cfg, Source: SourceCustom}, nil
	}

	var res Result

	// Try user config directory, then local configs directory
	candidates := []struct {
		path string
		src  Source
	}{
		{userConfigPath("config.yaml"), SourceUser},
		{filepath.Join("configs", "snake.yaml"), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		cfg, err := loadFile(c.path)
		if err == nil {
			res.Config, res.Source = cfg, c.src
			return res, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			res.Skipped = append(res.Skipped, Skipped{Path: c.path, Err: err})
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		res.Config, res.Source = DefaultConfig(), SourceBuiltin // Fallback to hardcoded if embed fails
		return res, nil
	}
	res.Config, res.Source = cfg, SourceEmbedded
	return res, nil
}

// loadFile parses path over the built-in defaults, so a partial file only
// overrides the keys it sets.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
