package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mincut/config"
	"github.com/katalvlaran/mincut/dimacs"
	"github.com/katalvlaran/mincut/graphcut"
	"github.com/katalvlaran/mincut/gridcut"
	"github.com/katalvlaran/mincut/metrics"
)

type cmdSolve struct {
	Input         string        `long:"input" short:"i" required:"true" description:"DIMACS problem file, - for stdin"`
	Output        string        `long:"output" short:"o" description:"Result file (default: stdout)"`
	Engine        string        `long:"engine" choice:"tree" choice:"grid" description:"Solver engine"`
	Width         int           `long:"width" description:"Grid width (grid engine)"`
	Height        int           `long:"height" description:"Grid height (grid engine)"`
	Workers       int           `long:"workers" description:"Goroutines per grid pass"`
	MaxIterations int           `long:"max-iterations" description:"Grid iteration cap, 0 for none"`
	Seed          int64         `long:"seed" description:"Root shuffle seed of the tree engine"`
	Timeout       time.Duration `long:"timeout" description:"Abort the tree engine after this long"`
	MetricsFile   string        `long:"metrics-file" description:"Write Prometheus metrics to this file"`
}

// apply overrides cfg with every flag that was set.
func (cmd *cmdSolve) apply(cfg *config.Config) {
	if cmd.Engine != "" {
		cfg.Solver.Engine = cmd.Engine
	}
	if cmd.Seed != 0 {
		cfg.Solver.Seed = cmd.Seed
	}
	if cmd.Timeout != 0 {
		cfg.Solver.Timeout = cmd.Timeout
	}
	if cmd.Width != 0 {
		cfg.Grid.Width = cmd.Width
	}
	if cmd.Height != 0 {
		cfg.Grid.Height = cmd.Height
	}
	if cmd.Workers != 0 {
		cfg.Grid.Workers = cmd.Workers
	}
	if cmd.MaxIterations != 0 {
		cfg.Grid.MaxIterations = cmd.MaxIterations
	}
	if cmd.MetricsFile != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.File = cmd.MetricsFile
	}
}

func (cmd *cmdSolve) Execute([]string) error {
	cfg, err := loadConfig(cmd.apply)
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in, err := openInput(cmd.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	out := io.Writer(os.Stdout)
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err = runSolve(ctx, cfg, log, in, out); err != nil {
		log.Error().Err(err).Str("input", cmd.Input).Msg("solve failed")
	}
	return err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// runSolve reads one problem from in, solves it with the configured engine
// and writes the result to out.
func runSolve(ctx context.Context, cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer) error {
	p, err := dimacs.Read(in)
	if err != nil {
		return err
	}
	log.Info().
		Int("nodes", p.Nodes).
		Int("arcs", len(p.Arcs)).
		Str("engine", cfg.Solver.Engine).
		Msg("problem loaded")

	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		collector = metrics.NewCollector(reg, metrics.Options{Namespace: cfg.Metrics.Namespace})
	}

	w := bufio.NewWriter(out)
	switch cfg.Solver.Engine {
	case config.EngineGrid:
		err = solveGrid(cfg, log, collector, p, w)
	default:
		err = solveTree(ctx, cfg, log, collector, p, w)
	}
	if err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}

	if reg != nil {
		if err = prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Debug().Str("file", cfg.Metrics.File).Msg("metrics written")
	}
	return nil
}

func solveTree(ctx context.Context, cfg *config.Config, log zerolog.Logger, c *metrics.Collector, p *dimacs.Problem, w io.Writer) error {
	opts := []graphcut.Option{graphcut.WithSeed(cfg.Solver.Seed), graphcut.WithLogger(log)}
	if cfg.Solver.Epsilon > 0 {
		opts = append(opts, graphcut.WithEpsilon(cfg.Solver.Epsilon))
	}
	if c != nil {
		opts = append(opts, graphcut.WithObserver(c))
	}
	g, err := p.Graph(opts...)
	if err != nil {
		return err
	}

	if cfg.Solver.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solver.Timeout)
		defer cancel()
	}
	flow, err := g.Solve(ctx, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			log.Warn().Float64("flow", flow).Msg("solve interrupted, partial flow")
		}
		return err
	}

	st := g.Stats()
	log.Info().
		Float64("flow", flow).
		Uint64("augmentations", st.Augmentations).
		Uint64("orphans", st.Orphans).
		Msg("solved")

	fmt.Fprintf(w, "c engine tree iterations %d augmentations %d\n", st.Iterations, st.Augmentations)
	fmt.Fprintf(w, "s %g\n", flow)
	for idx := 0; idx < g.NodeCount(); idx++ {
		src, err := g.InSourceSide(idx)
		if err != nil {
			return err
		}
		writeSide(w, p.NodeID(idx), src)
	}
	return nil
}

func solveGrid(cfg *config.Config, log zerolog.Logger, c *metrics.Collector, p *dimacs.Problem, w io.Writer) error {
	opts := []gridcut.Option{
		gridcut.WithWorkers(cfg.Grid.Workers),
		gridcut.WithCheckInterval(cfg.Grid.CheckInterval),
		gridcut.WithLogger(log),
	}
	if cfg.Solver.Epsilon > 0 {
		opts = append(opts, gridcut.WithEpsilon(cfg.Solver.Epsilon))
	}
	if c != nil {
		opts = append(opts, gridcut.WithObserver(c))
	}
	g, err := p.Grid(cfg.Grid.Width, cfg.Grid.Height, opts...)
	if err != nil {
		return err
	}
	res, err := g.Solve(cfg.Grid.MaxIterations)
	if err != nil {
		return err
	}
	ev := log.Info()
	if !res.Converged {
		ev = log.Warn()
	}
	ev.Float64("flow", res.Flow).
		Int("iterations", res.Iterations).
		Bool("converged", res.Converged).
		Msg("solved")

	fmt.Fprintf(w, "c engine grid iterations %d converged %t\n", res.Iterations, res.Converged)
	fmt.Fprintf(w, "s %g\n", res.Flow)
	for idx, l := range g.Labels() {
		writeSide(w, p.NodeID(idx), l == gridcut.SourceSide)
	}
	return nil
}

func writeSide(w io.Writer, id int, source bool) {
	side := "t"
	if source {
		side = "s"
	}
	fmt.Fprintf(w, "n %d %s\n", id, side)
}

// loadConfig layers the global flags and the command's own overrides on top
// of the file and environment configuration, then validates again.
func loadConfig(apply func(*config.Config)) (*config.Config, error) {
	var opts []config.LoaderOption
	if global.Config != "" {
		opts = append(opts, config.WithFile(global.Config))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return nil, err
	}
	if global.Log.Level != "" {
		cfg.Log.Level = global.Log.Level
	}
	if global.Log.Format != "" {
		cfg.Log.Format = global.Log.Format
	}
	if global.Log.File != "" {
		cfg.Log.File = global.Log.File
	}
	if apply != nil {
		apply(cfg)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
