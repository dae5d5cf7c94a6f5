// Package metrics exports solver statistics to Prometheus.
//
// A Collector implements both graphcut.Observer and gridcut.Observer, so one
// instance can be attached to every engine of a process with
// graphcut.WithObserver and gridcut.WithObserver. Every series carries an
// "engine" label: "graphcut" or "gridcut".
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mincut/graphcut"
	"github.com/katalvlaran/mincut/gridcut"
)

// Engine label values.
const (
	EngineTree = "graphcut"
	EngineGrid = "gridcut"
)

// Status label values of solves_total.
const (
	StatusSolved    = "solved"
	StatusCanceled  = "canceled"
	StatusConverged = "converged"
	StatusCapped    = "capped"
)

// DefaultNamespace prefixes every metric name when Options.Namespace is empty.
const DefaultNamespace = "mincut"

// Options configure NewCollector.
type Options struct {
	Namespace string
	Subsystem string
	// Buckets for solve_duration_seconds; prometheus.DefBuckets when nil.
	Buckets []float64
}

// Collector records one observation per finished solve.
type Collector struct {
	solves     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	flow       *prometheus.GaugeVec
	iterations *prometheus.CounterVec
	augments   prometheus.Counter
	orphans    prometheus.Counter
	adoptions  prometheus.Counter
	frees      prometheus.Counter
}

var (
	_ graphcut.Observer = (*Collector)(nil)
	_ gridcut.Observer  = (*Collector)(nil)
)

// NewCollector registers the solver metrics on reg and returns the collector.
// It panics if a metric with the same name is already registered on reg, as
// promauto does.
func NewCollector(reg prometheus.Registerer, opts Options) *Collector {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.Buckets == nil {
		opts.Buckets = prometheus.DefBuckets
	}
	f := promauto.With(reg)
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      name,
			Help:      help,
		})
	}
	return &Collector{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "solves_total",
			Help:      "Finished solves by engine and outcome",
		}, []string{"engine", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a solve",
			Buckets:   opts.Buckets,
		}, []string{"engine"}),
		flow: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "last_flow_value",
			Help:      "Flow value reported by the most recent solve",
		}, []string{"engine"}),
		iterations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "iterations_total",
			Help:      "Growth steps (graphcut) or checkerboard sweeps (gridcut)",
		}, []string{"engine"}),
		augments:  counter("augmentations_total", "Augmenting paths found by the tree engine"),
		orphans:   counter("orphans_total", "Nodes orphaned by saturation in the tree engine"),
		adoptions: counter("adoptions_total", "Orphans re-attached to a search tree"),
		frees:     counter("frees_total", "Orphans released to the free set"),
	}
}

// ObserveSolve implements graphcut.Observer.
func (c *Collector) ObserveSolve(stats graphcut.Stats, flow float64, elapsed time.Duration) {
	status := StatusSolved
	if stats.Canceled {
		status = StatusCanceled
	}
	c.solves.WithLabelValues(EngineTree, status).Inc()
	c.duration.WithLabelValues(EngineTree).Observe(elapsed.Seconds())
	c.flow.WithLabelValues(EngineTree).Set(flow)
	c.iterations.WithLabelValues(EngineTree).Add(float64(stats.Iterations))
	c.augments.Add(float64(stats.Augmentations))
	c.orphans.Add(float64(stats.Orphans))
	c.adoptions.Add(float64(stats.Adoptions))
	c.frees.Add(float64(stats.Frees))
}

// ObserveGridSolve implements gridcut.Observer.
func (c *Collector) ObserveGridSolve(iterations int, converged bool, flow float64, elapsed time.Duration) {
	status := StatusConverged
	if !converged {
		status = StatusCapped
	}
	c.solves.WithLabelValues(EngineGrid, status).Inc()
	c.duration.WithLabelValues(EngineGrid).Observe(elapsed.Seconds())
	c.flow.WithLabelValues(EngineGrid).Set(flow)
	c.iterations.WithLabelValues(EngineGrid).Add(float64(iterations))
}
