package graphcut

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mincut/numeric"
)

// Initialize reseeds every residual from the configured capacities and plants
// the roots of both search trees. Nodes with a non-zero terminal residual (or
// a hard constraint) become active roots, visited in a shuffled order so that
// ties between equal cuts are broken by the seed rather than by node ids.
//
// Initialize is called by Solve; it is exported for callers that drive Step
// themselves.
func (g *Graph[T]) Initialize() error {
	g.invalidate()
	g.flow = g.direct
	g.time = 0
	g.rng = rand.New(rand.NewSource(g.seed))

	for e := range g.edges {
		ed := &g.edges[e]
		ed.fwd, ed.rev = ed.capFwd, ed.capRev
	}

	order := make([]int, len(g.nodes))
	for i := range order {
		order[i] = i
	}
	g.rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })

	var hasSource, hasSink bool
	for _, id := range order {
		nd := &g.nodes[id]
		nd.tag, nd.parent, nd.ts, nd.dist, nd.active = Unknown, parentRef{}, 0, 0, false
		nd.residual = 0

		switch nd.hard {
		case Source:
			g.flow += nd.sink
			nd.tag = Source
		case Sink:
			g.flow += nd.source
			nd.tag = Sink
		default:
			g.flow += min(nd.source, nd.sink)
			nd.residual = numeric.Snap(nd.source-nd.sink, g.eps)
			switch {
			case nd.residual > 0:
				nd.tag = Source
			case nd.residual < 0:
				nd.tag = Sink
			default:
				continue
			}
		}

		nd.parent = parentRef{kind: parentRoot}
		nd.dist = 1
		g.labeled++
		g.activate(id)
		if nd.tag == Source {
			hasSource = true
		} else {
			hasSink = true
		}
	}

	if !hasSource {
		g.clearTrees()
		return fmt.Errorf("Initialize: %w", ErrNoSource)
	}
	if !hasSink {
		g.clearTrees()
		return fmt.Errorf("Initialize: %w", ErrNoSink)
	}
	g.initialized = true
	return nil
}

// clearTrees drops the roots planted by a failed Initialize so that no query
// reports a labeling that was never solved.
func (g *Graph[T]) clearTrees() {
	for id := range g.nodes {
		nd := &g.nodes[id]
		nd.tag, nd.parent, nd.ts, nd.dist, nd.active = Unknown, parentRef{}, 0, 0, false
	}
	g.invalidate()
}
