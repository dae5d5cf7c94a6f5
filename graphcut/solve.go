package graphcut

import (
	"context"
	"fmt"
	"time"
)

// Solve computes a maximum flow and the corresponding minimum cut.
//
// Steps:
//  1. Initialize: reseed residuals and plant the tree roots.
//  2. Repeat Step until no active node remains, checking ctx between steps
//     and reporting progress after each one.
//  3. Record statistics, log a summary and notify the Observer.
//
// If progress returns false the solve stops early: the flow found so far is
// valid but may not be maximal, and the error is nil. If ctx is canceled the
// partial flow is returned together with ctx.Err().
//
// Complexity: O(V·E²·|C|) worst case for a minimum cut of capacity |C|; on
// vision-style grids it is close to linear in practice.
func (g *Graph[T]) Solve(ctx context.Context, progress ProgressFunc) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	if err := g.Initialize(); err != nil {
		return 0, fmt.Errorf("Solve: %w", err)
	}

	total := len(g.nodes)
	for {
		if err := ctx.Err(); err != nil {
			g.stats.Canceled = true
			g.finish(start)
			return g.flow, err
		}
		more, err := g.Step()
		if err != nil {
			return g.flow, fmt.Errorf("Solve: %w", err)
		}
		if !more {
			break
		}
		if progress != nil {
			msg := fmt.Sprintf("growing trees: %d of %d nodes labeled", g.labeled, total)
			if !progress(msg, float64(g.labeled)/float64(total)) {
				g.stats.Canceled = true
				break
			}
		}
	}
	g.finish(start)
	return g.flow, nil
}

func (g *Graph[T]) finish(start time.Time) {
	elapsed := time.Since(start)
	g.log.Debug().
		Int("nodes", len(g.nodes)).
		Int("edges", len(g.edges)).
		Float64("flow", float64(g.flow)).
		Uint64("iterations", g.stats.Iterations).
		Uint64("augmentations", g.stats.Augmentations).
		Uint64("orphans", g.stats.Orphans).
		Uint64("adoptions", g.stats.Adoptions).
		Uint64("frees", g.stats.Frees).
		Bool("canceled", g.stats.Canceled).
		Dur("elapsed", elapsed).
		Msg("solve finished")
	if g.observer != nil {
		g.observer.ObserveSolve(g.stats, float64(g.flow), elapsed)
	}
}
