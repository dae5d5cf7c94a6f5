package graphcut

import "github.com/katalvlaran/mincut/numeric"

// augment pushes the bottleneck capacity along the path
// source root → … → a —join→ b → … → sink root
// and orphans every node whose link toward its root saturated.
func (g *Graph[T]) augment(join EdgeID) error {
	ed := &g.edges[join]
	a, b := ed.from, ed.to
	if g.nodes[a].tag != Source {
		a, b = b, a
	}

	// 1) Bottleneck.
	bottleneck := g.residualFrom(join, a)
	for v := a; ; {
		nd := &g.nodes[v]
		if nd.parent.kind == parentRoot {
			if nd.hard == Unknown {
				bottleneck = min(bottleneck, nd.residual)
			}
			break
		}
		p, err := g.parentOf(v)
		if err != nil {
			return err
		}
		bottleneck = min(bottleneck, g.residualFrom(nd.parent.edge, p))
		v = p
	}
	for v := b; ; {
		nd := &g.nodes[v]
		if nd.parent.kind == parentRoot {
			if nd.hard == Unknown {
				bottleneck = min(bottleneck, -nd.residual)
			}
			break
		}
		p, err := g.parentOf(v)
		if err != nil {
			return err
		}
		bottleneck = min(bottleneck, g.residualFrom(nd.parent.edge, v))
		v = p
	}

	// 2) Push, source side toward a.
	g.push(join, a, bottleneck)
	for v := a; ; {
		nd := &g.nodes[v]
		if nd.parent.kind == parentRoot {
			if nd.hard == Unknown {
				nd.residual = numeric.Snap(nd.residual-bottleneck, g.eps)
				if nd.residual <= 0 {
					g.orphan(v)
				}
			}
			break
		}
		e := nd.parent.edge
		p, err := g.opposite(e, v)
		if err != nil {
			return err
		}
		g.push(e, p, bottleneck)
		if numeric.Exhausted(g.residualFrom(e, p), g.eps) {
			g.orphan(v)
		}
		v = p
	}

	// 3) Push, sink side away from b.
	for v := b; ; {
		nd := &g.nodes[v]
		if nd.parent.kind == parentRoot {
			if nd.hard == Unknown {
				nd.residual = numeric.Snap(nd.residual+bottleneck, g.eps)
				if nd.residual >= 0 {
					g.orphan(v)
				}
			}
			break
		}
		e := nd.parent.edge
		p, err := g.opposite(e, v)
		if err != nil {
			return err
		}
		g.push(e, v, bottleneck)
		if numeric.Exhausted(g.residualFrom(e, v), g.eps) {
			g.orphan(v)
		}
		v = p
	}

	g.flow += bottleneck
	g.stats.Augmentations++
	g.log.Trace().
		Int("from", a).
		Int("to", b).
		Float64("bottleneck", float64(bottleneck)).
		Float64("flow", float64(g.flow)).
		Msg("augment")
	return nil
}

// parentOf returns the tree parent of a node attached through an edge.
func (g *Graph[T]) parentOf(v int) (int, error) {
	ref := g.nodes[v].parent
	if ref.kind != parentEdge {
		return -1, &TopologyError{Edge: ref.edge, Node: v}
	}
	return g.opposite(ref.edge, v)
}
