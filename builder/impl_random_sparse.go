// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator over n inner nodes: each ordered pair (i,j),
//     i≠j, receives an arc with probability p and capacity cfg.weightFn.
//   - Every inner node gets a source arc and a sink arc with probability p,
//     capacities from cfg.terminalFn. Inner node 0 is always fed by the source
//     and inner node 1 always drains into the sink so the instance is never
//     trivially disconnected from both terminals.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(p·n²) arcs.
//
// Determinism:
//   - Terminal trials for i asc, then arc trials for i asc, j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/dimacs"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a sparse directed max-flow
// instance over n inner nodes with arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*dimacs.Problem, error) {
		if n < minRandomSparseVertices {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		prob := dimacs.NewProblem(n+numTerminal, SourceID, SinkID)
		prob.Comments = append(prob.Comments, fmt.Sprintf("%s n=%d p=%g", methodRandomSparse, n, p))

		var i, j int
		for i = 0; i < n; i++ {
			if i == 0 || rng.Float64() < p {
				prob.AddArc(SourceID, innerID(i), cfg.terminalFn(rng))
			}
			if i == 1 || rng.Float64() < p {
				prob.AddArc(innerID(i), SinkID, cfg.terminalFn(rng))
			}
		}
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if rng.Float64() < p {
					prob.AddArc(innerID(i), innerID(j), cfg.weightFn(rng))
				}
			}
		}
		return prob, nil
	}
}
