// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, con). Resolves cfg, runs con, validates the result.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical problems, arc for arc.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/dimacs"
)

// Constructor produces a max-flow instance from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Use node 1 as the source and node 2 as the sink; inner nodes follow
//     from node 3 on, so dimacs.Problem.InnerIndex(id) == id-3.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (*dimacs.Problem, error)

// Build resolves the builder configuration from bopts and runs con.
// Any constructor error is wrapped with the context "Build: %w".
//
// Complexity: O(len(bopts)) plus the cost of con.
func Build(bopts []BuilderOption, con Constructor) (*dimacs.Problem, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	p, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}
	return p, nil
}

// Terminal node ids shared by every constructor.
const (
	SourceID    = 1
	SinkID      = 2
	firstInner  = 3
	numTerminal = 2
)

// innerID maps a 0-based inner index to its DIMACS node id.
func innerID(idx int) int { return idx + firstInner }
