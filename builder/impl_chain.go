// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_chain.go - implementation of Chain(n).
//
// Canonical model:
//   - source → v0 → v1 → … → v(n-1) → sink, one arc per hop.
//   - n+1 capacities drawn from cfg.weightFn in hop order.
//   - The maximum flow equals the smallest capacity on the chain, which makes
//     Chain a closed-form oracle for both engines.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - No RNG requirement: without one, stochastic weight functions yield
//     DefaultWeight.
//
// Complexity: O(n) time and arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/dimacs"
)

const (
	methodChain    = "Chain"
	minChainLength = 1
)

// Chain returns a Constructor that builds a single source-to-sink path over
// n inner nodes.
func Chain(n int) Constructor {
	return func(cfg builderConfig) (*dimacs.Problem, error) {
		if n < minChainLength {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodChain, n, minChainLength, ErrTooFewVertices)
		}

		p := dimacs.NewProblem(n+numTerminal, SourceID, SinkID)
		p.Comments = append(p.Comments, fmt.Sprintf("%s n=%d", methodChain, n))

		prev := SourceID
		for i := 0; i < n; i++ {
			p.AddArc(prev, innerID(i), cfg.weightFn(cfg.rng))
			prev = innerID(i)
		}
		p.AddArc(prev, SinkID, cfg.weightFn(cfg.rng))
		return p, nil
	}
}
