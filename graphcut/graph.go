package graphcut

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mincut/numeric"
)

// Graph is a capacitated graph with two virtual terminals. Nodes are
// addressed by dense ids 0..NodeCount()-1 and edges by the EdgeID returned
// from AddEdge.
//
// A Graph is not safe for concurrent use.
type Graph[T numeric.Capacity] struct {
	nodes []node[T]
	edges []edge[T]

	active  nodeQueue
	orphans nodeQueue

	direct  T // capacity of explicit source→sink links
	flow    T
	time    uint64
	labeled int
	current int // pivot kept across steps, -1 when none

	initialized bool
	solved      bool
	stats       Stats

	eps      T
	seed     int64
	rng      *rand.Rand
	log      zerolog.Logger
	observer Observer
}

// New creates a graph with n nodes, all with zero terminal capacity.
func New[T numeric.Capacity](n int, opts ...Option) (*Graph[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph[T]{
		eps:      numeric.Epsilon[T](cfg.eps),
		seed:     cfg.seed,
		log:      cfg.log,
		observer: cfg.observer,
		current:  -1,
	}
	if err := g.Resize(n); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return g, nil
}

// Resize discards all nodes, edges and solve state and allocates n fresh nodes.
func (g *Graph[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Resize(%d): %w", n, ErrNegativeSize)
	}
	g.nodes = make([]node[T], n)
	g.edges = g.edges[:0]
	g.direct = 0
	g.invalidate()
	return nil
}

// invalidate drops solve state after a mutation; the next Solve reseeds.
func (g *Graph[T]) invalidate() {
	g.active.reset()
	g.orphans.reset()
	g.flow = 0
	g.labeled = 0
	g.current = -1
	g.initialized = false
	g.solved = false
	g.stats = Stats{}
}

func (g *Graph[T]) checkNode(op string, id int) error {
	if id < 0 || id >= len(g.nodes) {
		return &RangeError{Op: op, Kind: "node", ID: id, Len: len(g.nodes)}
	}
	return nil
}

func (g *Graph[T]) checkEdge(op string, e EdgeID) error {
	if e < 0 || int(e) >= len(g.edges) {
		return &RangeError{Op: op, Kind: "edge", ID: int(e), Len: len(g.edges)}
	}
	return nil
}

// SetCapacity replaces the terminal weights of id with a signed bias:
// positive values tie the node to the source, negative values to the sink.
// Any hard constraint on the node is cleared.
func (g *Graph[T]) SetCapacity(id int, v T) error {
	if err := g.checkNode("SetCapacity", id); err != nil {
		return err
	}
	nd := &g.nodes[id]
	nd.source, nd.sink = max(v, 0), max(-v, 0)
	nd.hard = Unknown
	g.invalidate()
	return nil
}

// AddTerminal adds source and sink weights to id. When both are positive,
// min(source, sink) is flow that every cut pays.
func (g *Graph[T]) AddTerminal(id int, source, sink T) error {
	if err := g.checkNode("AddTerminal", id); err != nil {
		return err
	}
	if source < 0 || sink < 0 {
		return fmt.Errorf("AddTerminal(%d): %w", id, ErrNegativeCapacity)
	}
	nd := &g.nodes[id]
	nd.source += source
	nd.sink += sink
	g.invalidate()
	return nil
}

// AddDirect adds capacity c to a link joining the two terminals directly.
// It never interacts with the nodes and is always part of the flow and cut.
func (g *Graph[T]) AddDirect(c T) error {
	if c < 0 {
		return fmt.Errorf("AddDirect: %w", ErrNegativeCapacity)
	}
	g.direct += c
	g.invalidate()
	return nil
}

// SetSource ties id to the source with infinite capacity.
func (g *Graph[T]) SetSource(id int) error {
	if err := g.checkNode("SetSource", id); err != nil {
		return err
	}
	g.nodes[id].hard = Source
	g.invalidate()
	return nil
}

// SetSink ties id to the sink with infinite capacity.
func (g *Graph[T]) SetSink(id int) error {
	if err := g.checkNode("SetSink", id); err != nil {
		return err
	}
	g.nodes[id].hard = Sink
	g.invalidate()
	return nil
}

// AddEdge joins i and j with capacity fwd in direction i→j and rev in
// direction j→i, and returns the handle of the new edge.
func (g *Graph[T]) AddEdge(i, j int, fwd, rev T) (EdgeID, error) {
	if err := g.checkNode("AddEdge", i); err != nil {
		return -1, err
	}
	if err := g.checkNode("AddEdge", j); err != nil {
		return -1, err
	}
	if fwd < 0 || rev < 0 {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", i, j, ErrNegativeCapacity)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge[T]{from: i, to: j, capFwd: fwd, capRev: rev, fwd: fwd, rev: rev})
	g.nodes[i].edges = append(g.nodes[i].edges, id)
	if i != j {
		g.nodes[j].edges = append(g.nodes[j].edges, id)
	}
	g.invalidate()
	return id, nil
}

// SetEdgeCapacity replaces both capacities of e. The next Solve restarts from
// the updated capacities.
func (g *Graph[T]) SetEdgeCapacity(e EdgeID, fwd, rev T) error {
	if err := g.checkEdge("SetEdgeCapacity", e); err != nil {
		return err
	}
	if fwd < 0 || rev < 0 {
		return fmt.Errorf("SetEdgeCapacity(%d): %w", e, ErrNegativeCapacity)
	}
	ed := &g.edges[e]
	ed.capFwd, ed.capRev = fwd, rev
	ed.fwd, ed.rev = fwd, rev
	g.invalidate()
	return nil
}

// NodeCount returns the number of nodes.
func (g *Graph[T]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[T]) EdgeCount() int { return len(g.edges) }

// Tag returns the tree membership of id.
func (g *Graph[T]) Tag(id int) (Tag, error) {
	if err := g.checkNode("Tag", id); err != nil {
		return Unknown, err
	}
	return g.nodes[id].tag, nil
}

// InSourceSide reports whether id ended in the source tree. Unknown nodes
// belong to the sink side of the cut.
func (g *Graph[T]) InSourceSide(id int) (bool, error) {
	t, err := g.Tag(id)
	if err != nil {
		return false, err
	}
	return t == Source, nil
}

// Flow returns the total flow pushed so far.
func (g *Graph[T]) Flow() T { return g.flow }

// EdgeFlow returns the net flow on e in its from→to direction. A negative
// value means flow runs to→from.
func (g *Graph[T]) EdgeFlow(e EdgeID) (T, error) {
	if err := g.checkEdge("EdgeFlow", e); err != nil {
		return 0, err
	}
	ed := &g.edges[e]
	return ed.capFwd - ed.fwd, nil
}

// Residual returns the residual capacities of e in both directions.
func (g *Graph[T]) Residual(e EdgeID) (fwd, rev T, err error) {
	if err = g.checkEdge("Residual", e); err != nil {
		return 0, 0, err
	}
	ed := &g.edges[e]
	return ed.fwd, ed.rev, nil
}

// Endpoints returns the nodes joined by e in from, to order.
func (g *Graph[T]) Endpoints(e EdgeID) (from, to int, err error) {
	if err = g.checkEdge("Endpoints", e); err != nil {
		return -1, -1, err
	}
	return g.edges[e].from, g.edges[e].to, nil
}

// Partition returns the ids of Source- and Sink-tagged nodes in ascending order.
func (g *Graph[T]) Partition() Partition {
	var p Partition
	for id := range g.nodes {
		switch g.nodes[id].tag {
		case Source:
			p.Source = append(p.Source, id)
		case Sink:
			p.Sink = append(p.Sink, id)
		}
	}
	return p
}

// CutValue returns the configured capacity of the cut separating the
// Source-tagged nodes from all others, terminal links included. After a
// complete Solve it equals Flow.
func (g *Graph[T]) CutValue() T {
	cut := g.direct
	for id := range g.nodes {
		nd := &g.nodes[id]
		if nd.tag == Source {
			cut += nd.sink
		} else {
			cut += nd.source
		}
	}
	for e := range g.edges {
		ed := &g.edges[e]
		inFrom := g.nodes[ed.from].tag == Source
		inTo := g.nodes[ed.to].tag == Source
		switch {
		case inFrom && !inTo:
			cut += ed.capFwd
		case inTo && !inFrom:
			cut += ed.capRev
		}
	}
	return cut
}

// Stats returns the counters of the last Solve.
func (g *Graph[T]) Stats() Stats { return g.stats }

// opposite returns the endpoint of e that is not u.
func (g *Graph[T]) opposite(e EdgeID, u int) (int, error) {
	ed := &g.edges[e]
	switch u {
	case ed.from:
		return ed.to, nil
	case ed.to:
		return ed.from, nil
	}
	return -1, &TopologyError{Edge: e, Node: u}
}

// residualFrom is the residual capacity of e leaving u.
func (g *Graph[T]) residualFrom(e EdgeID, u int) T {
	ed := &g.edges[e]
	if ed.from == u {
		return ed.fwd
	}
	return ed.rev
}

// linkCapacity is the residual of the tree link parent→child in the tree
// tagged tag: source trees carry flow toward children, sink trees toward parents.
func (g *Graph[T]) linkCapacity(tag Tag, e EdgeID, parent, child int) T {
	if tag == Source {
		return g.residualFrom(e, parent)
	}
	return g.residualFrom(e, child)
}

// push moves amount units of flow along e out of u.
func (g *Graph[T]) push(e EdgeID, u int, amount T) {
	ed := &g.edges[e]
	if ed.from == u {
		ed.fwd -= amount
		ed.rev += amount
	} else {
		ed.rev -= amount
		ed.fwd += amount
	}
	ed.fwd = numeric.Snap(ed.fwd, g.eps)
	ed.rev = numeric.Snap(ed.rev, g.eps)
}

func (g *Graph[T]) activate(id int) {
	nd := &g.nodes[id]
	if !nd.active {
		nd.active = true
		g.active.push(id)
	}
}

func (g *Graph[T]) orphan(id int) {
	g.nodes[id].parent = parentRef{kind: parentOrphan}
	g.orphans.push(id)
	g.stats.Orphans++
}
