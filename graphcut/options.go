package graphcut

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mincut/numeric"
)

// DefaultSeed drives the initial root shuffle unless WithSeed is given.
const DefaultSeed int64 = 1

// Option customizes a Graph at construction time.
type Option func(*config)

type config struct {
	seed     int64
	eps      float64
	log      zerolog.Logger
	observer Observer
}

func defaultConfig() config {
	return config{
		seed: DefaultSeed,
		eps:  numeric.DefaultEpsilon,
		log:  zerolog.Nop(),
	}
}

// WithSeed fixes the seed of the root shuffle performed by Initialize.
// Different seeds may yield different (equally minimal) cuts, never a
// different flow value.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithEpsilon sets the tolerance under which residual capacities count as
// exhausted. Integer capacity types ignore it. Panics on a negative value.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("graphcut: WithEpsilon(eps<0)")
	}
	return func(c *config) {
		c.eps = eps
	}
}

// WithLogger attaches a logger. Solve summaries are logged at debug level,
// individual augmentations at trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l.With().Str("engine", "graphcut").Logger()
	}
}

// WithObserver registers an Observer notified after every Solve. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("graphcut: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}
