// Package config loads the settings of the mincut command-line tool from
// layered sources: built-in defaults, an optional YAML file and MINCUT_*
// environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Engine names accepted by solver.engine.
const (
	EngineTree = "tree"
	EngineGrid = "grid"
)

// Log formats accepted by log.format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the root of the configuration tree.
type Config struct {
	Solver  SolverConfig  `koanf:"solver"`
	Grid    GridConfig    `koanf:"grid"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SolverConfig selects the engine and its common knobs.
type SolverConfig struct {
	Engine  string        `koanf:"engine"` // tree, grid
	Seed    int64         `koanf:"seed"`
	Epsilon float64       `koanf:"epsilon"`
	Timeout time.Duration `koanf:"timeout"` // 0 disables
}

// GridConfig holds the grid engine settings.
type GridConfig struct {
	Width         int `koanf:"width"`
	Height        int `koanf:"height"`
	Workers       int `koanf:"workers"`
	CheckInterval int `koanf:"check_interval"`
	MaxIterations int `koanf:"max_iterations"` // ≤ 0 means uncapped
}

// LogConfig configures the zerolog logger of the CLI. File output rotates
// through lumberjack.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"` // console, json
	File       string `koanf:"file"`   // empty means stderr
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig configures the Prometheus text-file dump.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	File      string `koanf:"file"`
	Namespace string `koanf:"namespace"`
}

// ZerologLevel parses Level.
func (l LogConfig) ZerologLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []string

	switch c.Solver.Engine {
	case EngineTree, EngineGrid:
	default:
		errs = append(errs, fmt.Sprintf("solver.engine must be one of: tree, grid, got %q", c.Solver.Engine))
	}
	if c.Solver.Epsilon < 0 {
		errs = append(errs, fmt.Sprintf("solver.epsilon must be non-negative, got %g", c.Solver.Epsilon))
	}
	if c.Solver.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("solver.timeout must be non-negative, got %s", c.Solver.Timeout))
	}

	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		errs = append(errs, fmt.Sprintf("grid size must be non-negative, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.Workers < 1 {
		errs = append(errs, fmt.Sprintf("grid.workers must be positive, got %d", c.Grid.Workers))
	}
	if c.Grid.CheckInterval < 1 {
		errs = append(errs, fmt.Sprintf("grid.check_interval must be positive, got %d", c.Grid.CheckInterval))
	}

	if c.Log.Level == "" {
		c.Log.Level = zerolog.LevelInfoValue
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is not a zerolog level", c.Log.Level))
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("log.format must be one of: console, json, got %q", c.Log.Format))
	}

	if c.Metrics.Enabled && c.Metrics.File == "" {
		errs = append(errs, "metrics.file is required when metrics are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
