package gridcut

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mincut/numeric"
)

// Cells are split into four colors by (row parity, column parity). Cells of
// one color never share an edge, so a color can be relabeled in parallel.
// Pushes are further split by direction: within one sub-phase every cell of
// the color writes to a distinct neighbor of another color.
const numColors = 4

// iterate runs one full iteration: relabel then push for each color.
func (g *Grid[T]) iterate() error {
	for color := 0; color < numColors; color++ {
		if err := g.parallel(func(y0, y1 int) { g.relabelBand(color, y0, y1) }); err != nil {
			return err
		}
		for d := Left; d < numDirections; d++ {
			if err := g.parallel(func(y0, y1 int) { g.pushBand(color, d, y0, y1) }); err != nil {
				return err
			}
		}
	}
	return nil
}

// parallel splits the rows into one band per worker and waits for all bands.
func (g *Grid[T]) parallel(fn func(y0, y1 int)) error {
	workers := min(g.workers, g.height)
	if workers <= 1 {
		fn(0, g.height)
		return nil
	}
	band := (g.height + workers - 1) / workers

	var eg errgroup.Group
	eg.SetLimit(workers)
	for y0 := 0; y0 < g.height; y0 += band {
		y0 := y0
		y1 := min(y0+band, g.height)
		eg.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	return eg.Wait()
}

// relabelBand raises the distance of every active cell of color in rows
// [y0, y1) to one more than its closest residual neighbor. Distances never
// decrease.
func (g *Grid[T]) relabelBand(color, y0, y1 int) {
	cy, cx := color>>1, color&1
	inf := int32(len(g.dist))
	for y := y0; y < y1; y++ {
		if y&1 != cy {
			continue
		}
		for x := cx; x < g.width; x += 2 {
			i := g.index(x, y)
			if g.excess[i] <= g.eps {
				continue
			}
			best := inf
			for d := Left; d < numDirections; d++ {
				if g.residual[d][i] <= g.eps {
					continue
				}
				j := g.index(x+offsets[d][0], y+offsets[d][1])
				if dd := g.dist[j] + 1; dd < best {
					best = dd
				}
			}
			if best > g.dist[i] {
				g.dist[i] = best
			}
		}
	}
}

// pushBand moves excess from active cells of color in rows [y0, y1) to their
// neighbor in direction d when that neighbor is exactly one step closer to a
// deficit.
func (g *Grid[T]) pushBand(color int, d Direction, y0, y1 int) {
	cy, cx := color>>1, color&1
	back := reverse[d]
	dx, dy := offsets[d][0], offsets[d][1]
	for y := y0; y < y1; y++ {
		if y&1 != cy {
			continue
		}
		for x := cx; x < g.width; x += 2 {
			i := g.index(x, y)
			ex := g.excess[i]
			if ex <= g.eps {
				continue
			}
			r := g.residual[d][i]
			if r <= g.eps {
				continue
			}
			j := g.index(x+dx, y+dy)
			if g.dist[j] != g.dist[i]-1 {
				continue
			}
			amount := min(ex, r)
			g.excess[i] = numeric.Snap(ex-amount, g.eps)
			g.excess[j] = numeric.Snap(g.excess[j]+amount, g.eps)
			g.residual[d][i] = numeric.Snap(r-amount, g.eps)
			g.residual[back][j] += amount
		}
	}
}
