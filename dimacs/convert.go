package dimacs

import (
	"fmt"

	"github.com/katalvlaran/mincut/graphcut"
	"github.com/katalvlaran/mincut/gridcut"
)

// Graph builds a tree-engine graph with one node per non-terminal node of p
// (see InnerIndex). Arcs leaving the source become source weights, arcs
// entering the sink become sink weights, source→sink arcs become direct
// links, and arcs into the source, out of the sink or onto themselves are
// dropped since no flow can use them.
func (p *Problem) Graph(opts ...graphcut.Option) (*graphcut.Graph[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	g, err := graphcut.New[float64](p.InnerCount(), opts...)
	if err != nil {
		return nil, fmt.Errorf("Graph: %w", err)
	}
	for _, a := range p.Arcs {
		switch p.classify(a) {
		case arcDirect:
			err = g.AddDirect(a.Capacity)
		case arcSource:
			err = g.AddTerminal(p.InnerIndex(a.To), a.Capacity, 0)
		case arcSink:
			err = g.AddTerminal(p.InnerIndex(a.From), 0, a.Capacity)
		case arcInner:
			_, err = g.AddEdge(p.InnerIndex(a.From), p.InnerIndex(a.To), a.Capacity, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("Graph: arc %d→%d: %w", a.From, a.To, err)
		}
	}
	return g, nil
}

// Grid builds a grid-engine problem. The inner nodes, in InnerIndex order,
// must form a width×height row-major lattice and every inner arc must join
// two 4-neighbors; otherwise ErrNotGrid is returned. Source→sink arcs are
// added to both terminal weights of the first cell, which raises the flow
// and every cut by exactly their capacity.
func (p *Problem) Grid(width, height int, opts ...gridcut.Option) (*gridcut.Grid[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	if width < 1 || height < 1 || width*height != p.InnerCount() {
		return nil, fmt.Errorf("Grid(%d,%d): %w: %d inner nodes", width, height, ErrNotGrid, p.InnerCount())
	}
	g, err := gridcut.New[float64](width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	cell := func(id int) (int, int) {
		idx := p.InnerIndex(id)
		return idx % width, idx / width
	}
	for _, a := range p.Arcs {
		switch p.classify(a) {
		case arcDirect:
			err = g.SetTerminalCapacity(0, 0, a.Capacity, a.Capacity)
		case arcSource:
			x, y := cell(a.To)
			err = g.SetSourceCapacity(x, y, a.Capacity)
		case arcSink:
			x, y := cell(a.From)
			err = g.SetSinkCapacity(x, y, a.Capacity)
		case arcInner:
			fx, fy := cell(a.From)
			tx, ty := cell(a.To)
			dir, ok := direction(tx-fx, ty-fy)
			if !ok {
				return nil, fmt.Errorf("Grid: arc %d→%d joins (%d,%d) and (%d,%d): %w", a.From, a.To, fx, fy, tx, ty, ErrNotGrid)
			}
			err = g.AddEdgeCapacity(fx, fy, dir, a.Capacity, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("Grid: arc %d→%d: %w", a.From, a.To, err)
		}
	}
	return g, nil
}

type arcKind uint8

const (
	arcIgnored arcKind = iota
	arcDirect
	arcSource
	arcSink
	arcInner
)

func (p *Problem) classify(a Arc) arcKind {
	switch {
	case a.From == a.To, a.To == p.Source, a.From == p.Sink:
		return arcIgnored
	case a.From == p.Source && a.To == p.Sink:
		return arcDirect
	case a.From == p.Source:
		return arcSource
	case a.To == p.Sink:
		return arcSink
	default:
		return arcInner
	}
}

func direction(dx, dy int) (gridcut.Direction, bool) {
	switch {
	case dx == -1 && dy == 0:
		return gridcut.Left, true
	case dx == 1 && dy == 0:
		return gridcut.Right, true
	case dx == 0 && dy == -1:
		return gridcut.Up, true
	case dx == 0 && dy == 1:
		return gridcut.Down, true
	}
	return 0, false
}
