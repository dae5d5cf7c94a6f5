package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/dimacs"
)

type cmdGenerate struct {
	Kind    string  `long:"kind" choice:"segmentation" choice:"sparse" choice:"chain" default:"segmentation" description:"Instance family"`
	Output  string  `long:"output" short:"o" description:"Output file (default: stdout)"`
	Width   int     `long:"width" default:"16" description:"Lattice width (segmentation)"`
	Height  int     `long:"height" default:"16" description:"Lattice height (segmentation)"`
	Nodes   int     `long:"nodes" default:"32" description:"Inner node count (sparse, chain)"`
	Prob    float64 `long:"prob" default:"0.1" description:"Arc probability (sparse)"`
	Seed    int64   `long:"seed" default:"1" description:"Random seed"`
	Integer bool    `long:"integer" description:"Draw integral capacities"`
	MaxCap  int     `long:"max-capacity" default:"20" description:"Upper bound of integral capacities"`
}

func (cmd *cmdGenerate) Execute([]string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	p, err := cmd.build()
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err = dimacs.Write(out, p); err != nil {
		return err
	}
	log.Info().
		Str("kind", cmd.Kind).
		Int("nodes", p.Nodes).
		Int("arcs", len(p.Arcs)).
		Msg("problem generated")
	return nil
}

func (cmd *cmdGenerate) build() (*dimacs.Problem, error) {
	opts := []builder.BuilderOption{builder.WithSeed(cmd.Seed)}
	if cmd.Integer {
		if cmd.MaxCap < 0 {
			return nil, fmt.Errorf("--max-capacity must be non-negative, got %d", cmd.MaxCap)
		}
		opts = append(opts, builder.WithIntegerWeights(0, cmd.MaxCap))
	}

	var con builder.Constructor
	switch cmd.Kind {
	case "segmentation":
		con = builder.Segmentation(cmd.Width, cmd.Height)
	case "sparse":
		con = builder.RandomSparse(cmd.Nodes, cmd.Prob)
	case "chain":
		con = builder.Chain(cmd.Nodes)
	default:
		return nil, fmt.Errorf("unknown kind %q", cmd.Kind)
	}
	return builder.Build(opts, con)
}
