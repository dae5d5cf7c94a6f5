// Package gridcut solves the s/t minimum cut of a regular 4-connected 2-D
// lattice with a data-parallel push-relabel engine.
//
// Each cell holds four directional residual capacities, a signed excess
// (positive: surplus received from the source, negative: sink capacity not
// yet used) and a distance label estimating how far the nearest deficit is.
// One iteration visits the four checkerboard colors in turn; for each color
// it relabels the active cells and then pushes excess to neighbors exactly one
// step closer to a deficit, one direction at a time. Cells of one color share
// no edge and, within a direction, no push target, so every pass runs over
// row bands in parallel without locks.
//
// Every WithCheckInterval iterations a global BFS recomputes exact distances
// and each cell is labeled SinkSide if it can still reach a deficit and
// SourceSide otherwise. Solve stops when no active cell can reach a deficit
// and no label changed since the previous check, or at the iteration cap.
//
//	g, _ := gridcut.New[float64](w, h, gridcut.WithWorkers(4))
//	_ = g.SetTerminalCapacity(x, y, fg, bg)
//	_ = g.SetEdgeCapacity(x, y, gridcut.Right, c, c)
//	res, _ := g.Solve(1000)
//	l, _ := g.Label(x, y)
package gridcut
