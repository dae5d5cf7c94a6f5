// Package numeric holds the capacity constraint shared by the cut engines and
// the tolerance helpers that keep residual capacities non-negative.
//
// Both engines are generic over the capacity type. Integer capacities are
// exact (tolerance 0); floating capacities use DefaultEpsilon unless the
// caller supplies another tolerance.
package numeric

import "golang.org/x/exp/constraints"

// Capacity is any signed numeric type usable as an edge or terminal capacity.
// Unsigned types are excluded because terminal residuals carry a sign.
type Capacity interface {
	constraints.Signed | constraints.Float
}

// DefaultEpsilon is the tolerance applied to floating capacities.
const DefaultEpsilon = 1e-9

// Epsilon converts tol to T. Integer types truncate it to zero, so
// comparisons against the result are exact for them.
func Epsilon[T Capacity](tol float64) T {
	if tol < 0 {
		tol = -tol
	}
	return T(tol)
}

// Abs returns |x|.
func Abs[T Capacity](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Exhausted reports whether a residual capacity is at or below the tolerance.
func Exhausted[T Capacity](x, eps T) bool {
	return x <= eps
}

// Snap returns 0 when |x| ≤ eps and x otherwise. Pushing flow through a float
// residual can leave tiny negative residues; snapping absorbs them.
func Snap[T Capacity](x, eps T) T {
	if x <= eps && x >= -eps {
		return 0
	}
	return x
}
