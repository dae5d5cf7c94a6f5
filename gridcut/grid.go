package gridcut

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mincut/numeric"
)

// Grid is a 4-connected lattice of cells, each tied to both terminals.
// Cells are stored row-major: cell (x, y) has index y*Width + x.
type Grid[T numeric.Capacity] struct {
	width, height int

	source, sink []T
	capacity     [numDirections][]T // configured, cell → neighbor

	residual [numDirections][]T
	excess   []T // >0 surplus from the source, <0 remaining sink capacity
	dist     []int32
	label    []Label
	queue    []int32

	base    T // Σ min(source, sink)
	deficit T // Σ initial sink capacity after cancelling shared weights
	flow    T
	solved  bool

	workers  int
	interval int
	eps      T
	log      zerolog.Logger
	observer Observer
}

// New allocates a width×height grid with zero capacities.
// Returns ErrEmptyGrid if either dimension is below one.
func New[T numeric.Capacity](width, height int, opts ...Option) (*Grid[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Grid[T]{
		workers:  cfg.workers,
		interval: cfg.interval,
		eps:      numeric.Epsilon[T](cfg.eps),
		log:      cfg.log,
		observer: cfg.observer,
	}
	if err := g.Resize(width, height); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return g, nil
}

// Resize reallocates the grid, discarding all capacities and solve state.
func (g *Grid[T]) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("Resize(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	n := width * height
	g.width, g.height = width, height
	g.source = make([]T, n)
	g.sink = make([]T, n)
	for d := range g.capacity {
		g.capacity[d] = make([]T, n)
		g.residual[d] = make([]T, n)
	}
	g.excess = make([]T, n)
	g.dist = make([]int32, n)
	g.label = make([]Label, n)
	g.queue = make([]int32, 0, n)
	g.flow = 0
	g.solved = false
	return nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x, y) to its row-major index.
func (g *Grid[T]) index(x, y int) int { return y*g.width + x }

// Coordinate maps a row-major index back to (x, y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) { return idx % g.width, idx / g.width }

func (g *Grid[T]) checkCell(op string, x, y int) error {
	if !g.InBounds(x, y) {
		return &RangeError{Op: op, X: x, Y: y, Width: g.width, Height: g.height}
	}
	return nil
}

// SetTerminalCapacity adds source and sink weights to cell (x, y).
func (g *Grid[T]) SetTerminalCapacity(x, y int, source, sink T) error {
	if err := g.checkCell("SetTerminalCapacity", x, y); err != nil {
		return err
	}
	if source < 0 || sink < 0 {
		return fmt.Errorf("SetTerminalCapacity(%d,%d): %w", x, y, ErrNegativeCapacity)
	}
	i := g.index(x, y)
	g.source[i] += source
	g.sink[i] += sink
	g.solved = false
	return nil
}

// SetSourceCapacity adds w to the source weight of cell (x, y).
func (g *Grid[T]) SetSourceCapacity(x, y int, w T) error {
	return g.SetTerminalCapacity(x, y, w, 0)
}

// SetSinkCapacity adds w to the sink weight of cell (x, y).
func (g *Grid[T]) SetSinkCapacity(x, y int, w T) error {
	return g.SetTerminalCapacity(x, y, 0, w)
}

// SetEdgeCapacity sets the capacity from (x, y) to its neighbor in direction
// dir to fwd, and from the neighbor back to (x, y) to rev.
func (g *Grid[T]) SetEdgeCapacity(x, y int, dir Direction, fwd, rev T) error {
	i, j, err := g.edgeCells("SetEdgeCapacity", x, y, dir, fwd, rev)
	if err != nil {
		return err
	}
	g.capacity[dir][i] = fwd
	g.capacity[reverse[dir]][j] = rev
	g.solved = false
	return nil
}

// AddEdgeCapacity adds to both capacities of the edge between (x, y) and its
// neighbor in direction dir.
func (g *Grid[T]) AddEdgeCapacity(x, y int, dir Direction, fwd, rev T) error {
	i, j, err := g.edgeCells("AddEdgeCapacity", x, y, dir, fwd, rev)
	if err != nil {
		return err
	}
	g.capacity[dir][i] += fwd
	g.capacity[reverse[dir]][j] += rev
	g.solved = false
	return nil
}

func (g *Grid[T]) edgeCells(op string, x, y int, dir Direction, fwd, rev T) (int, int, error) {
	if dir >= numDirections {
		return 0, 0, fmt.Errorf("%s(%d,%d): %w", op, x, y, ErrBadDirection)
	}
	if err := g.checkCell(op, x, y); err != nil {
		return 0, 0, err
	}
	nx, ny := x+offsets[dir][0], y+offsets[dir][1]
	if err := g.checkCell(op, nx, ny); err != nil {
		return 0, 0, err
	}
	if fwd < 0 || rev < 0 {
		return 0, 0, fmt.Errorf("%s(%d,%d): %w", op, x, y, ErrNegativeCapacity)
	}
	return g.index(x, y), g.index(nx, ny), nil
}

// Label returns the side of the cut for cell (x, y).
func (g *Grid[T]) Label(x, y int) (Label, error) {
	if err := g.checkCell("Label", x, y); err != nil {
		return SourceSide, err
	}
	if !g.solved {
		return SourceSide, fmt.Errorf("Label(%d,%d): %w", x, y, ErrNotSolved)
	}
	return g.label[g.index(x, y)], nil
}

// Labels returns a row-major copy of all labels, or nil before Solve.
func (g *Grid[T]) Labels() []Label {
	if !g.solved {
		return nil
	}
	out := make([]Label, len(g.label))
	copy(out, g.label)
	return out
}

// Flow returns the flow found by the last Solve.
func (g *Grid[T]) Flow() T { return g.flow }

// CutValue returns the configured capacity of the cut described by the
// current labels, terminal links included.
func (g *Grid[T]) CutValue() T {
	var cut T
	for i := range g.label {
		if g.label[i] == SinkSide {
			cut += g.source[i]
		} else {
			cut += g.sink[i]
		}
	}
	for i := range g.label {
		if g.label[i] != SourceSide {
			continue
		}
		x, y := g.Coordinate(i)
		for d := Left; d < numDirections; d++ {
			nx, ny := x+offsets[d][0], y+offsets[d][1]
			if g.InBounds(nx, ny) && g.label[g.index(nx, ny)] == SinkSide {
				cut += g.capacity[d][i]
			}
		}
	}
	return cut
}
