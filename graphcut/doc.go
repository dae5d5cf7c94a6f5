// Package graphcut computes a minimum s/t cut (equivalently a maximum flow) of
// a capacitated graph whose nodes are tied to two virtual terminals, the
// source and the sink. It is the solver behind binary labeling energies such
// as foreground/background segmentation: after Solve every node is labeled
// Source or Sink (or left Unknown when it is not reachable from either tree).
//
// # Algorithm
//
// The engine grows two search trees, one rooted at the source and one at the
// sink, and never restarts them between augmentations:
//
//   - Growth: an active node claims free neighbors reachable through
//     non-saturated edges. When it meets a node of the opposite tree the two
//     trees are joined by an augmenting path.
//
//   - Augmentation: the bottleneck capacity of the path is pushed. Saturated
//     tree links split the trees and the detached nodes become orphans.
//
//   - Adoption: each orphan looks for a new parent in its own tree whose
//     ancestry still reaches the root. Orphans without one become free and
//     their children are orphaned in turn.
//
// Distances and timestamps cached on each node keep the trees shallow and
// make the ancestry check cheap.
//
//	Time:   O(V·E²·|C|) worst case, near linear on grid-like graphs.
//	Memory: O(V + E).
//
// # Graph model
//
// Nodes are dense integer ids. Each node carries a source weight and a sink
// weight; SetCapacity sets a signed bias and AddTerminal accumulates both.
// SetSource / SetSink tie a node to a terminal with infinite capacity. Edges
// are stored in an arena and addressed by EdgeID; each edge has independent
// forward and reverse capacities.
//
// Capacities are generic over numeric.Capacity. Integer types are exact;
// floating types treat residuals at or below ε (WithEpsilon, default 1e-9)
// as saturated and clamp them to zero.
//
// # Incremental use
//
// Capacities may be changed with SetCapacity, AddTerminal or SetEdgeCapacity
// between calls to Solve. Every Solve reseeds the residual network from the
// configured capacities, so the result is always the minimum cut of the
// current graph. Adding or removing nodes requires Resize.
//
// # Concurrency
//
// A Graph is single-threaded. Solve honors context cancellation between
// steps and returns the partial (valid but not maximal) flow.
//
// # Example
//
//	g, _ := graphcut.New[int64](2)
//	_ = g.SetCapacity(0, 5)
//	_ = g.SetCapacity(1, -5)
//	_, _ = g.AddEdge(0, 1, 3, 3)
//	flow, _ := g.Solve(context.Background(), nil)
//	// flow == 3
package graphcut
