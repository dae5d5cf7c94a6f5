package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/config"
	"github.com/katalvlaran/mincut/dimacs"
)

const sample = `c two paths, flow 5
p max 4 5
n 1 s
n 4 t
a 1 2 3
a 1 3 2
a 2 4 2
a 3 4 3
a 2 3 1
`

func testConfig(engine string) *config.Config {
	return &config.Config{
		Solver: config.SolverConfig{Engine: engine, Seed: 1},
		Grid:   config.GridConfig{Workers: 2, CheckInterval: 4},
		Log:    config.LogConfig{Level: "info", Format: config.FormatJSON},
	}
}

func TestRunSolve_Tree(t *testing.T) {
	var out bytes.Buffer
	err := runSolve(context.Background(), testConfig(config.EngineTree), zerolog.Nop(), strings.NewReader(sample), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "c engine tree"))
	require.Equal(t, "s 5", lines[1])
	require.Contains(t, []string{"n 2 s", "n 2 t"}, lines[2])
	require.Contains(t, []string{"n 3 s", "n 3 t"}, lines[3])
}

func TestRunSolve_GridMatchesTree(t *testing.T) {
	gen := &cmdGenerate{Kind: "segmentation", Width: 5, Height: 4, Seed: 3, Integer: true, MaxCap: 9}
	p, err := gen.build()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, p))

	var tree, grid bytes.Buffer
	require.NoError(t, runSolve(context.Background(), testConfig(config.EngineTree), zerolog.Nop(), bytes.NewReader(buf.Bytes()), &tree))

	cfg := testConfig(config.EngineGrid)
	cfg.Grid.Width, cfg.Grid.Height = 5, 4
	require.NoError(t, runSolve(context.Background(), cfg, zerolog.Nop(), bytes.NewReader(buf.Bytes()), &grid))

	flowLine := func(s string) string { return strings.Split(s, "\n")[1] }
	require.Equal(t, flowLine(tree.String()), flowLine(grid.String()))
}

func TestRunSolve_GridShapeMismatch(t *testing.T) {
	cfg := testConfig(config.EngineGrid)
	cfg.Grid.Width, cfg.Grid.Height = 3, 1
	err := runSolve(context.Background(), cfg, zerolog.Nop(), strings.NewReader(sample), &bytes.Buffer{})
	require.ErrorIs(t, err, dimacs.ErrNotGrid)
}

func TestRunSolve_Metrics(t *testing.T) {
	cfg := testConfig(config.EngineTree)
	cfg.Metrics = config.MetricsConfig{Enabled: true, File: filepath.Join(t.TempDir(), "mincut.prom"), Namespace: "mincut"}

	require.NoError(t, runSolve(context.Background(), cfg, zerolog.Nop(), strings.NewReader(sample), &bytes.Buffer{}))
	data, err := os.ReadFile(cfg.Metrics.File)
	require.NoError(t, err)
	require.Contains(t, string(data), `mincut_solves_total{engine="graphcut",status="solved"} 1`)
	require.Contains(t, string(data), `mincut_last_flow_value{engine="graphcut"} 5`)
}

func TestRunSolve_SyntaxError(t *testing.T) {
	err := runSolve(context.Background(), testConfig(config.EngineTree), zerolog.Nop(), strings.NewReader("p max x\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, dimacs.ErrSyntax)
}

func TestGenerate_Kinds(t *testing.T) {
	tests := []struct {
		cmd   cmdGenerate
		nodes int
	}{
		{cmdGenerate{Kind: "segmentation", Width: 3, Height: 2, Seed: 1}, 8},
		{cmdGenerate{Kind: "sparse", Nodes: 10, Prob: 0.2, Seed: 1}, 12},
		{cmdGenerate{Kind: "chain", Nodes: 4, Seed: 1}, 6},
	}
	for _, tc := range tests {
		t.Run(tc.cmd.Kind, func(t *testing.T) {
			p, err := tc.cmd.build()
			require.NoError(t, err)
			require.Equal(t, tc.nodes, p.Nodes)
		})
	}

	_, err := (&cmdGenerate{Kind: "torus"}).build()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mincut.log")
	log, closer, err := newLogger(config.LogConfig{Level: "debug", Format: config.FormatJSON, File: path, MaxSize: 1})
	require.NoError(t, err)
	log.Debug().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"hello"`)

	_, _, err = newLogger(config.LogConfig{Level: "loud"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParser_Commands(t *testing.T) {
	p := newParser()
	require.NotNil(t, p.Find("solve"))
	require.NotNil(t, p.Find("generate"))
}
