package graphcut

import (
	"math"

	"github.com/katalvlaran/mincut/numeric"
)

// adopt drains the orphan queue. Each orphan either finds a new parent in its
// own tree or becomes free, which may orphan its children in turn.
func (g *Graph[T]) adopt() error {
	for {
		id, ok := g.orphans.pop()
		if !ok {
			return nil
		}
		if err := g.adoptOne(id); err != nil {
			return err
		}
	}
}

func (g *Graph[T]) adoptOne(i int) error {
	nd := &g.nodes[i]
	tag := nd.tag

	best, bestDist := EdgeID(-1), math.MaxInt
	for _, e := range nd.edges {
		j, err := g.opposite(e, i)
		if err != nil {
			return err
		}
		if j == i || g.nodes[j].tag != tag {
			continue
		}
		if numeric.Exhausted(g.linkCapacity(tag, e, j, i), g.eps) {
			continue
		}
		d, ok, err := g.rootDistance(j)
		if err != nil {
			return err
		}
		if ok && d < bestDist {
			best, bestDist = e, d
		}
	}

	if best >= 0 {
		nd.parent = parentRef{kind: parentEdge, edge: best}
		nd.ts = g.time
		nd.dist = bestDist + 1
		g.stats.Adoptions++
		return nil
	}

	// No valid parent: free the node.
	nd.tag = Unknown
	nd.parent = parentRef{}
	g.labeled--
	g.stats.Frees++
	for _, e := range nd.edges {
		j, err := g.opposite(e, i)
		if err != nil {
			return err
		}
		m := &g.nodes[j]
		if j == i || m.tag != tag {
			continue
		}
		if !numeric.Exhausted(g.linkCapacity(tag, e, j, i), g.eps) {
			g.activate(j)
		}
		if m.parent.kind == parentEdge && m.parent.edge == e {
			g.orphan(j)
		}
	}
	return nil
}

// rootDistance walks from j toward its root. It reports the distance of j
// when the walk ends at a root or at a node already stamped in the current
// iteration, and rejects j when the walk meets an orphan. Nodes on an
// accepted walk are stamped with their distance so later walks stop early.
func (g *Graph[T]) rootDistance(j int) (int, bool, error) {
	d := 0
	for v := j; ; {
		nd := &g.nodes[v]
		if nd.ts == g.time {
			d += nd.dist
			break
		}
		switch nd.parent.kind {
		case parentRoot:
			nd.ts, nd.dist = g.time, 1
			d++
		case parentEdge:
			d++
			p, err := g.opposite(nd.parent.edge, v)
			if err != nil {
				return 0, false, err
			}
			v = p
			continue
		default:
			return 0, false, nil
		}
		break
	}

	for v, k := j, d; g.nodes[v].ts != g.time; k-- {
		nd := &g.nodes[v]
		nd.ts, nd.dist = g.time, k
		p, err := g.opposite(nd.parent.edge, v)
		if err != nil {
			return 0, false, err
		}
		v = p
	}
	return d, true, nil
}
