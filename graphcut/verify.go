package graphcut

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/mincut/numeric"
)

// Verify checks that a solved graph carries a maximum flow:
//   - every edge residual is non-negative and both residuals of an edge sum
//     to its capacities (flow never exceeds capacity);
//   - terminal residuals keep their sign and never exceed the configured weights;
//   - flow is conserved at every node that is not hard-constrained;
//   - the residual network has no path from the source to the sink;
//   - the cut value equals the total flow.
//
// Comparisons use a tolerance of 1000·ε so accumulated floating-point error
// is not reported. The first violation is returned as a *VerifyError.
func Verify[T numeric.Capacity](g *Graph[T]) error {
	if !g.solved {
		return fmt.Errorf("Verify: %w", ErrNotSolved)
	}
	tol := float64(g.eps) * 1e3

	for e := range g.edges {
		ed := &g.edges[e]
		if float64(ed.fwd) < -tol || float64(ed.rev) < -tol {
			return &VerifyError{Property: "non-negativity",
				Detail: fmt.Sprintf("edge %d residual (%v, %v)", e, ed.fwd, ed.rev)}
		}
		if numeric.Abs(float64(ed.fwd+ed.rev-ed.capFwd-ed.capRev)) > tol {
			return &VerifyError{Property: "capacity",
				Detail: fmt.Sprintf("edge %d residuals (%v, %v) vs capacities (%v, %v)", e, ed.fwd, ed.rev, ed.capFwd, ed.capRev)}
		}
	}

	outflow := make([]float64, len(g.nodes))
	for e := range g.edges {
		ed := &g.edges[e]
		if ed.from == ed.to {
			continue
		}
		f := float64(ed.capFwd - ed.fwd)
		outflow[ed.from] += f
		outflow[ed.to] -= f
	}
	for id := range g.nodes {
		nd := &g.nodes[id]
		if nd.hard != Unknown {
			continue
		}
		r0 := float64(nd.source - nd.sink)
		r := float64(nd.residual)
		if r0*r < -tol || numeric.Abs(r) > numeric.Abs(r0)+tol {
			return &VerifyError{Property: "terminal",
				Detail: fmt.Sprintf("node %d residual %v from initial %v", id, r, r0)}
		}
		if numeric.Abs((r0-r)-outflow[id]) > tol*math.Max(1, numeric.Abs(r0)) {
			return &VerifyError{Property: "conservation",
				Detail: fmt.Sprintf("node %d receives %v from terminals but sends %v", id, r0-r, outflow[id])}
		}
	}

	if path := residualPath(g, tol); path {
		return &VerifyError{Property: "maximality", Detail: "augmenting path remains in residual network"}
	}

	cut, flow := float64(g.CutValue()), float64(g.flow)
	if numeric.Abs(cut-flow) > tol*math.Max(1, numeric.Abs(flow)) {
		return &VerifyError{Property: "cut", Detail: fmt.Sprintf("cut %v differs from flow %v", cut, flow)}
	}
	return nil
}

// residualPath reports whether the sink is reachable from the source through
// arcs whose residual exceeds tol.
func residualPath[T numeric.Capacity](g *Graph[T], tol float64) bool {
	n := int64(len(g.nodes))
	src, snk := simple.Node(n), simple.Node(n+1)

	rg := simple.NewDirectedGraph()
	rg.AddNode(src)
	rg.AddNode(snk)
	for id := range g.nodes {
		rg.AddNode(simple.Node(id))
	}
	link := func(u, v graph.Node) {
		if !rg.HasEdgeFromTo(u.ID(), v.ID()) {
			rg.SetEdge(rg.NewEdge(u, v))
		}
	}

	for id := range g.nodes {
		nd := &g.nodes[id]
		v := simple.Node(id)
		if nd.hard == Source || (nd.hard == Unknown && float64(nd.residual) > tol) {
			link(src, v)
		}
		if nd.hard == Sink || (nd.hard == Unknown && float64(nd.residual) < -tol) {
			link(v, snk)
		}
	}
	for e := range g.edges {
		ed := &g.edges[e]
		if ed.from == ed.to {
			continue
		}
		if float64(ed.fwd) > tol {
			link(simple.Node(ed.from), simple.Node(ed.to))
		}
		if float64(ed.rev) > tol {
			link(simple.Node(ed.to), simple.Node(ed.from))
		}
	}

	var bfs traverse.BreadthFirst
	found := bfs.Walk(rg, src, func(n graph.Node, _ int) bool {
		return n.ID() == snk.ID()
	})
	return found != nil
}
