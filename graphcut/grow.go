package graphcut

import "github.com/katalvlaran/mincut/numeric"

// Step performs one growth attempt. It picks the next active node with a live
// parent, extends its tree across every non-saturated incident edge and, if
// the two trees touch, augments along the joining path and repairs the trees.
//
// Step returns false when no active node remains, i.e. the flow is maximal.
func (g *Graph[T]) Step() (bool, error) {
	if !g.initialized {
		return false, ErrNotInitialized
	}
	pivot := g.nextPivot()
	if pivot < 0 {
		g.solved = true
		return false, nil
	}
	g.stats.Iterations++

	join, found, err := g.grow(pivot)
	if err != nil {
		return false, err
	}
	if !found {
		g.current = -1
		return true, nil
	}

	g.time++
	if err = g.augment(join); err != nil {
		return false, err
	}
	if err = g.adopt(); err != nil {
		return false, err
	}

	// The pivot may still touch the other tree through another edge.
	if g.nodes[pivot].parent.kind != parentNone {
		g.current = pivot
	} else {
		g.current = -1
	}
	return true, nil
}

// nextPivot returns the node to grow from, or -1 when the active list is empty.
func (g *Graph[T]) nextPivot() int {
	if g.current >= 0 {
		if g.nodes[g.current].parent.kind != parentNone {
			return g.current
		}
		g.current = -1
	}
	for {
		id, ok := g.active.pop()
		if !ok {
			return -1
		}
		nd := &g.nodes[id]
		nd.active = false
		if nd.parent.kind == parentNone {
			// freed after it was queued
			continue
		}
		return id
	}
}

// grow scans the edges of pivot. Unknown neighbors join the pivot's tree,
// same-tree neighbors with a longer path are re-parented through the pivot,
// and the first neighbor from the opposite tree ends the scan.
func (g *Graph[T]) grow(pivot int) (EdgeID, bool, error) {
	n := &g.nodes[pivot]
	for _, e := range n.edges {
		other, err := g.opposite(e, pivot)
		if err != nil {
			return -1, false, err
		}
		if other == pivot {
			continue
		}
		if numeric.Exhausted(g.linkCapacity(n.tag, e, pivot, other), g.eps) {
			continue
		}

		m := &g.nodes[other]
		switch {
		case m.tag == Unknown:
			m.tag = n.tag
			m.parent = parentRef{kind: parentEdge, edge: e}
			m.ts = n.ts
			m.dist = n.dist + 1
			g.labeled++
			g.activate(other)
		case m.tag != n.tag:
			return e, true, nil
		case m.ts <= n.ts && m.dist > n.dist:
			m.parent = parentRef{kind: parentEdge, edge: e}
			m.ts = n.ts
			m.dist = n.dist + 1
		}
	}
	return -1, false, nil
}
