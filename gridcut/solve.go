package gridcut

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mincut/numeric"
)

// Solve runs push-relabel until convergence or until maxIterations full
// iterations have run (maxIterations ≤ 0 removes the cap).
//
// Steps:
//  1. Reseed residuals from the configured capacities; every cell starts with
//     excess source − sink, the shared part min(source, sink) is counted as flow.
//  2. Compute exact distances to deficit cells (global relabel).
//  3. Iterate: for each of the four checkerboard colors, relabel the active
//     cells of that color, then push in four directional sub-phases.
//  4. Every check interval, relabel globally and reassign labels. Stop when no
//     active cell can reach a deficit and no label changed since the last check.
//
// When the cap is reached first, Result.Converged is false and the labels
// describe the cut of the current preflow.
func (g *Grid[T]) Solve(maxIterations int) (Result[T], error) {
	start := time.Now()
	g.reset()

	var res Result[T]
	reachable := g.globalRelabel()
	g.assignLabels()
	res.Converged = !reachable

	for !res.Converged && (maxIterations <= 0 || res.Iterations < maxIterations) {
		if err := g.iterate(); err != nil {
			return res, fmt.Errorf("Solve: iteration %d: %w", res.Iterations, err)
		}
		res.Iterations++
		if res.Iterations%g.interval != 0 {
			continue
		}
		reachable = g.globalRelabel()
		changed := g.assignLabels()
		g.log.Trace().
			Int("iteration", res.Iterations).
			Bool("reachable", reachable).
			Int("changed", changed).
			Float64("flow", float64(g.currentFlow())).
			Msg("check")
		res.Converged = !reachable && changed == 0
	}
	if !res.Converged {
		g.globalRelabel()
		g.assignLabels()
	}

	g.flow = g.currentFlow()
	g.solved = true
	res.Flow = g.flow

	elapsed := time.Since(start)
	g.log.Debug().
		Int("width", g.width).
		Int("height", g.height).
		Int("iterations", res.Iterations).
		Bool("converged", res.Converged).
		Float64("flow", float64(g.flow)).
		Dur("elapsed", elapsed).
		Msg("solve finished")
	if g.observer != nil {
		g.observer.ObserveGridSolve(res.Iterations, res.Converged, float64(g.flow), elapsed)
	}
	return res, nil
}

// reset reseeds residuals and excess from the configured capacities.
func (g *Grid[T]) reset() {
	for d := range g.residual {
		copy(g.residual[d], g.capacity[d])
	}
	g.base, g.deficit = 0, 0
	for i := range g.excess {
		g.base += min(g.source[i], g.sink[i])
		e := numeric.Snap(g.source[i]-g.sink[i], g.eps)
		g.excess[i] = e
		if e < 0 {
			g.deficit -= e
		}
	}
	g.flow = 0
	g.solved = false
}

// currentFlow is the shared terminal weight plus the sink capacity consumed so far.
func (g *Grid[T]) currentFlow() T {
	var remaining T
	for _, e := range g.excess {
		if e < 0 {
			remaining -= e
		}
	}
	return g.base + g.deficit - remaining
}
