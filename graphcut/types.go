package graphcut

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mincut/numeric"
)

// Sentinel errors for graph construction and solving.
var (
	// ErrConfiguration indicates the graph cannot be solved as configured.
	ErrConfiguration = errors.New("graphcut: invalid solve configuration")

	// ErrNoSource is returned by Initialize/Solve when no node is tied to the source.
	ErrNoSource = fmt.Errorf("%w: no source-tagged node", ErrConfiguration)

	// ErrNoSink is returned by Initialize/Solve when no node is tied to the sink.
	ErrNoSink = fmt.Errorf("%w: no sink-tagged node", ErrConfiguration)

	// ErrOutOfRange indicates a node or edge reference outside the graph.
	ErrOutOfRange = errors.New("graphcut: reference out of range")

	// ErrNegativeSize indicates Resize/New was given a negative node count.
	ErrNegativeSize = errors.New("graphcut: node count must be non-negative")

	// ErrNegativeCapacity indicates a negative edge or terminal capacity.
	ErrNegativeCapacity = errors.New("graphcut: capacity must be non-negative")

	// ErrNotInitialized indicates Step was called before Initialize.
	ErrNotInitialized = errors.New("graphcut: Initialize must precede Step")

	// ErrNotSolved indicates a post-solve check on a graph without a finished solve.
	ErrNotSolved = errors.New("graphcut: graph has not been solved")

	// ErrTopology indicates an edge was dereferenced from a node it does not touch.
	// It never occurs while the tree invariants hold.
	ErrTopology = errors.New("graphcut: edge does not reference node")

	// ErrVerify is wrapped by every VerifyError.
	ErrVerify = errors.New("graphcut: verification failed")
)

// RangeError reports an out-of-range node or edge reference. No mutation is
// performed by the failing call.
type RangeError struct {
	Op   string // method that rejected the reference
	Kind string // "node" or "edge"
	ID   int
	Len  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("graphcut: %s: %s %d out of range [0,%d)", e.Op, e.Kind, e.ID, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// TopologyError is an internal consistency failure: an edge handle was
// followed from a node that is not one of its endpoints.
type TopologyError struct {
	Edge EdgeID
	Node int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("graphcut: edge %d does not reference node %d", e.Edge, e.Node)
}

func (e *TopologyError) Unwrap() error { return ErrTopology }

// VerifyError describes the first property violated by a solved graph.
type VerifyError struct {
	Property string
	Detail   string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("graphcut: verify %s: %s", e.Property, e.Detail)
}

func (e *VerifyError) Unwrap() error { return ErrVerify }

// Tag is the tree membership of a node.
type Tag uint8

const (
	// Unknown nodes belong to neither search tree.
	Unknown Tag = iota
	// Source nodes belong to the tree rooted at the virtual source.
	Source
	// Sink nodes belong to the tree rooted at the virtual sink.
	Sink
)

func (t Tag) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case Source:
		return "Source"
	case Sink:
		return "Sink"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// EdgeID is an opaque handle returned by AddEdge.
type EdgeID int

type parentKind uint8

const (
	parentNone   parentKind = iota // free node
	parentRoot                     // tied directly to its terminal
	parentOrphan                   // awaiting adoption
	parentEdge                     // attached through edge
)

// parentRef is the tree-parent of a node; edge is meaningful only for parentEdge.
type parentRef struct {
	kind parentKind
	edge EdgeID
}

type node[T numeric.Capacity] struct {
	source, sink T   // configured terminal weights
	hard         Tag // forced terminal, Unknown when unconstrained
	residual     T   // terminal residual: >0 toward source, <0 toward sink

	tag    Tag
	parent parentRef
	ts     uint64
	dist   int
	active bool

	edges []EdgeID
}

type edge[T numeric.Capacity] struct {
	from, to       int
	capFwd, capRev T // configured capacities
	fwd, rev       T // residuals from→to and to→from
}

// Stats counts the work done by the last Solve.
type Stats struct {
	Iterations    uint64 // growth attempts
	Augmentations uint64
	Orphans       uint64
	Adoptions     uint64
	Frees         uint64
	Canceled      bool
}

// Partition lists the node ids on each side of the cut. Unknown nodes are in
// neither list.
type Partition struct {
	Source []int
	Sink   []int
}

// ProgressFunc receives a status message and the fraction of labeled nodes
// after every step. Returning false stops the solve early.
type ProgressFunc func(message string, fraction float64) bool

// Observer is notified once per finished Solve.
type Observer interface {
	ObserveSolve(stats Stats, flow float64, elapsed time.Duration)
}
