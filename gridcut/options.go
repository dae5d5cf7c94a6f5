package gridcut

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mincut/numeric"
)

// DefaultCheckInterval is the number of iterations between global relabels.
const DefaultCheckInterval = 8

// Option customizes a Grid at construction time.
type Option func(*config)

type config struct {
	workers  int
	interval int
	eps      float64
	log      zerolog.Logger
	observer Observer
}

func defaultConfig() config {
	return config{
		workers:  runtime.GOMAXPROCS(0),
		interval: DefaultCheckInterval,
		eps:      numeric.DefaultEpsilon,
		log:      zerolog.Nop(),
	}
}

// WithWorkers bounds the goroutines used by each pass. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("gridcut: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithCheckInterval sets how many iterations run between global relabels and
// convergence checks. Panics if n < 1.
func WithCheckInterval(n int) Option {
	if n < 1 {
		panic("gridcut: WithCheckInterval(n<1)")
	}
	return func(c *config) {
		c.interval = n
	}
}

// WithEpsilon sets the tolerance below which excess and residuals count as
// zero. Integer capacity types ignore it. Panics on a negative value.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("gridcut: WithEpsilon(eps<0)")
	}
	return func(c *config) {
		c.eps = eps
	}
}

// WithLogger attaches a logger for per-check and summary records.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l.With().Str("engine", "gridcut").Logger()
	}
}

// WithObserver registers an Observer notified after every Solve. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("gridcut: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}
