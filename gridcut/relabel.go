package gridcut

// globalRelabel recomputes exact residual distances to the nearest deficit
// cell by a backward BFS. Cells that cannot reach a deficit get the infinite
// distance len(dist). It reports whether any active cell can still reach one.
func (g *Grid[T]) globalRelabel() bool {
	inf := int32(len(g.dist))
	q := g.queue[:0]
	for i, e := range g.excess {
		if e < 0 {
			g.dist[i] = 0
			q = append(q, int32(i))
		} else {
			g.dist[i] = inf
		}
	}

	for head := 0; head < len(q); head++ {
		j := int(q[head])
		x, y := g.Coordinate(j)
		for d := Left; d < numDirections; d++ {
			nx, ny := x+offsets[d][0], y+offsets[d][1]
			if !g.InBounds(nx, ny) {
				continue
			}
			i := g.index(nx, ny)
			// i reaches j through the opposite direction
			if g.dist[i] != inf || g.residual[reverse[d]][i] <= g.eps {
				continue
			}
			g.dist[i] = g.dist[j] + 1
			q = append(q, int32(i))
		}
	}
	g.queue = q

	for i, e := range g.excess {
		if e > g.eps && g.dist[i] < inf {
			return true
		}
	}
	return false
}

// assignLabels puts every cell that can reach a deficit on the sink side and
// all others on the source side. It returns the number of cells whose label
// changed.
func (g *Grid[T]) assignLabels() int {
	inf := int32(len(g.dist))
	changed := 0
	for i := range g.label {
		l := SourceSide
		if g.dist[i] < inf {
			l = SinkSide
		}
		if g.label[i] != l {
			g.label[i] = l
			changed++
		}
	}
	return changed
}
