// Package dimacs reads and writes maximum-flow instances in the DIMACS
// format and converts them into graphcut and gridcut problems.
//
// The accepted grammar is line based:
//
//	c <comment>
//	p max <nodes> <arcs>
//	n <id> s
//	n <id> t
//	a <from> <to> <capacity>
//
// Node ids are 1-based. Capacities may be integers or decimals.
package dimacs

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is wrapped by every SyntaxError.
	ErrSyntax = errors.New("dimacs: syntax error")
	// ErrNotGrid indicates the problem is not a 4-connected lattice of the requested size.
	ErrNotGrid = errors.New("dimacs: problem is not a 4-connected grid")
	// ErrInvalidProblem indicates a Problem value that violates the format rules.
	ErrInvalidProblem = errors.New("dimacs: invalid problem")
)

// SyntaxError locates a malformed input line.
type SyntaxError struct {
	Line int // 1-based, 0 when the error concerns the whole file
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("dimacs: %s", e.Msg)
	}
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Arc is a directed capacitated arc between 1-based node ids.
type Arc struct {
	From, To int
	Capacity float64
}

// Problem is a single-source single-sink maximum-flow instance.
type Problem struct {
	Nodes    int
	Source   int
	Sink     int
	Arcs     []Arc
	Comments []string
}

// NewProblem returns an empty problem with nodes nodes and the given terminals.
func NewProblem(nodes, source, sink int) *Problem {
	return &Problem{Nodes: nodes, Source: source, Sink: sink}
}

// AddArc appends an arc.
func (p *Problem) AddArc(from, to int, capacity float64) {
	p.Arcs = append(p.Arcs, Arc{From: from, To: to, Capacity: capacity})
}

// Validate checks node ids, terminals and capacities.
func (p *Problem) Validate() error {
	switch {
	case p.Nodes < 2:
		return fmt.Errorf("%w: %d nodes, need at least 2", ErrInvalidProblem, p.Nodes)
	case p.Source < 1 || p.Source > p.Nodes:
		return fmt.Errorf("%w: source %d outside [1,%d]", ErrInvalidProblem, p.Source, p.Nodes)
	case p.Sink < 1 || p.Sink > p.Nodes:
		return fmt.Errorf("%w: sink %d outside [1,%d]", ErrInvalidProblem, p.Sink, p.Nodes)
	case p.Source == p.Sink:
		return fmt.Errorf("%w: source and sink are both node %d", ErrInvalidProblem, p.Source)
	}
	for k, a := range p.Arcs {
		if a.From < 1 || a.From > p.Nodes || a.To < 1 || a.To > p.Nodes {
			return fmt.Errorf("%w: arc %d (%d→%d) references a missing node", ErrInvalidProblem, k, a.From, a.To)
		}
		if a.Capacity < 0 {
			return fmt.Errorf("%w: arc %d has negative capacity %g", ErrInvalidProblem, k, a.Capacity)
		}
	}
	return nil
}

// InnerCount is the number of nodes other than the two terminals.
func (p *Problem) InnerCount() int { return p.Nodes - 2 }

// InnerIndex maps a 1-based non-terminal node id to its dense 0-based index
// in the engines. Terminals map to -1.
func (p *Problem) InnerIndex(id int) int {
	if id == p.Source || id == p.Sink {
		return -1
	}
	idx := id - 1
	if p.Source < id {
		idx--
	}
	if p.Sink < id {
		idx--
	}
	return idx
}

// NodeID is the inverse of InnerIndex.
func (p *Problem) NodeID(idx int) int {
	id := idx + 1
	lo, hi := min(p.Source, p.Sink), max(p.Source, p.Sink)
	if id >= lo {
		id++
	}
	if id >= hi {
		id++
	}
	return id
}
