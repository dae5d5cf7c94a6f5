package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix selects the environment variables read by default.
	EnvPrefix = "MINCUT_"
	// DefaultFile is searched in the working directory when no path is given.
	DefaultFile = "mincut.yaml"
)

// Loader merges defaults, a YAML file and the environment.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	explicit    string
	envPrefix   string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths replaces the optional search paths. The first existing
// file wins; none existing is not an error.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithFile names a file that must exist.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.explicit = path
	}
}

// WithEnvPrefix changes the environment prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader returns a Loader searching DefaultFile and reading MINCUT_*.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:           koanf.New("."),
		configPaths: []string{DefaultFile},
		envPrefix:   EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Defaults returns the built-in configuration values keyed by koanf path.
func Defaults() map[string]any {
	return map[string]any{
		"solver.engine":  EngineTree,
		"solver.seed":    int64(1),
		"solver.epsilon": 0.0,
		"solver.timeout": "0s",

		"grid.width":          0,
		"grid.height":         0,
		"grid.workers":        runtime.GOMAXPROCS(0),
		"grid.check_interval": 8,
		"grid.max_iterations": 0,

		"log.level":       "info",
		"log.format":      FormatConsole,
		"log.file":        "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		"metrics.enabled":   false,
		"metrics.file":      "",
		"metrics.namespace": "mincut",
	}
}

// Load merges every layer, unmarshals and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Koanf exposes the merged key space, e.g. for printing the effective
// configuration.
func (l *Loader) Koanf() *koanf.Koanf { return l.k }

func (l *Loader) loadFile() error {
	if l.explicit != "" {
		if err := l.k.Load(file.Provider(l.explicit), yaml.Parser()); err != nil {
			return fmt.Errorf("config: load %s: %w", l.explicit, err)
		}
		return nil
	}
	for _, path := range l.configPaths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// loadEnv maps MINCUT_SECTION_SOME_KEY to section.some_key: sections are
// single words, so only the first underscore separates levels.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		section, rest, ok := strings.Cut(key, "_")
		if !ok {
			return "", nil
		}
		return section + "." + rest, value
	}), nil)
}
