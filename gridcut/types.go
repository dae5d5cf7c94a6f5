package gridcut

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for gridcut operations.
var (
	// ErrEmptyGrid indicates a width or height below one.
	ErrEmptyGrid = errors.New("gridcut: grid must have at least one row and one column")
	// ErrOutOfRange indicates a cell or edge outside the grid.
	ErrOutOfRange = errors.New("gridcut: cell out of range")
	// ErrBadDirection indicates a Direction other than Left, Right, Up or Down.
	ErrBadDirection = errors.New("gridcut: invalid direction")
	// ErrNegativeCapacity indicates a negative edge or terminal weight.
	ErrNegativeCapacity = errors.New("gridcut: capacity must be non-negative")
	// ErrNotSolved indicates a label query before Solve.
	ErrNotSolved = errors.New("gridcut: grid has not been solved")
)

// RangeError reports a cell (or the neighbor an edge leads to) outside the grid.
type RangeError struct {
	Op            string
	X, Y          int
	Width, Height int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gridcut: %s: cell (%d,%d) outside %dx%d grid", e.Op, e.X, e.Y, e.Width, e.Height)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Direction names one of the four lattice neighbors of a cell.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
	numDirections
)

// offsets[d] is the (dx, dy) step toward direction d. Up decreases y.
var offsets = [numDirections][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// reverse[d] is the direction pointing back from the neighbor.
var reverse = [numDirections]Direction{Right, Left, Down, Up}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Label is the side of the cut a cell ends on.
type Label uint8

const (
	// SourceSide cells cannot reach the sink in the final residual network.
	SourceSide Label = 0
	// SinkSide cells can still send flow to the sink.
	SinkSide Label = 1
)

func (l Label) String() string {
	if l == SinkSide {
		return "SinkSide"
	}
	return "SourceSide"
}

// Result summarizes a Solve.
type Result[T any] struct {
	Iterations int  // full four-color iterations executed
	Converged  bool // false when the iteration cap stopped the solve
	Flow       T
}

// Observer is notified once per finished Solve.
type Observer interface {
	ObserveGridSolve(iterations int, converged bool, flow float64, elapsed time.Duration)
}
