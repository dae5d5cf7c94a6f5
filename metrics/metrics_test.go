package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/graphcut"
	"github.com/katalvlaran/mincut/gridcut"
)

func TestCollector_TreeEngine(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, Options{})

	g, err := graphcut.New[int64](2, graphcut.WithObserver(c))
	require.NoError(t, err)
	require.NoError(t, g.SetCapacity(0, 5))
	require.NoError(t, g.SetCapacity(1, -5))
	_, err = g.AddEdge(0, 1, 3, 3)
	require.NoError(t, err)

	flow, err := g.Solve(context.Background(), nil)
	require.NoError(t, err)
	require.EqualValues(t, 3, flow)

	st := g.Stats()
	require.Equal(t, 1.0, testutil.ToFloat64(c.solves.WithLabelValues(EngineTree, StatusSolved)))
	require.Equal(t, 3.0, testutil.ToFloat64(c.flow.WithLabelValues(EngineTree)))
	require.Equal(t, float64(st.Iterations), testutil.ToFloat64(c.iterations.WithLabelValues(EngineTree)))
	require.Equal(t, float64(st.Augmentations), testutil.ToFloat64(c.augments))
	require.Equal(t, float64(st.Orphans), testutil.ToFloat64(c.orphans))
	require.Equal(t, 1, testutil.CollectAndCount(c.duration))
}

func TestCollector_GridEngine(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, Options{Namespace: "test"})

	g, err := gridcut.New[int64](3, 1, gridcut.WithWorkers(1), gridcut.WithObserver(c))
	require.NoError(t, err)
	require.NoError(t, g.SetSourceCapacity(0, 0, 9))
	require.NoError(t, g.SetSinkCapacity(2, 0, 9))
	require.NoError(t, g.SetEdgeCapacity(0, 0, gridcut.Right, 5, 5))
	require.NoError(t, g.SetEdgeCapacity(1, 0, gridcut.Right, 2, 2))

	res, err := g.Solve(0)
	require.NoError(t, err)
	require.True(t, res.Converged)

	require.Equal(t, 1.0, testutil.ToFloat64(c.solves.WithLabelValues(EngineGrid, StatusConverged)))
	require.Equal(t, 2.0, testutil.ToFloat64(c.flow.WithLabelValues(EngineGrid)))
	require.Equal(t, float64(res.Iterations), testutil.ToFloat64(c.iterations.WithLabelValues(EngineGrid)))
}

func TestCollector_Statuses(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, Options{Namespace: "test", Buckets: []float64{1}})

	c.ObserveSolve(graphcut.Stats{Iterations: 4, Canceled: true}, 1.5, time.Millisecond)
	c.ObserveGridSolve(7, false, 2.5, 2*time.Second)

	expected := `
# HELP test_solves_total Finished solves by engine and outcome
# TYPE test_solves_total counter
test_solves_total{engine="graphcut",status="canceled"} 1
test_solves_total{engine="gridcut",status="capped"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_solves_total"))

	expected = `
# HELP test_solve_duration_seconds Wall time of a solve
# TYPE test_solve_duration_seconds histogram
test_solve_duration_seconds_bucket{engine="graphcut",le="1"} 1
test_solve_duration_seconds_bucket{engine="graphcut",le="+Inf"} 1
test_solve_duration_seconds_sum{engine="graphcut"} 0.001
test_solve_duration_seconds_count{engine="graphcut"} 1
test_solve_duration_seconds_bucket{engine="gridcut",le="1"} 0
test_solve_duration_seconds_bucket{engine="gridcut",le="+Inf"} 1
test_solve_duration_seconds_sum{engine="gridcut"} 2
test_solve_duration_seconds_count{engine="gridcut"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_solve_duration_seconds"))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewCollector(reg, Options{})
	require.Panics(t, func() { NewCollector(reg, Options{}) })
	require.NotPanics(t, func() { NewCollector(reg, Options{Subsystem: "other"}) })
}
