// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil                           (stochastic constructors refuse to run)
//   • weightFn   = UniformWeightFn(1, 20)        (pairwise / smoothness capacities)
//   • terminalFn = UniformWeightFn(0, 50)        (unary / terminal capacities)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Capacity generator for arcs between inner nodes.
	weightFn WeightFn
	// Capacity generator for arcs touching a terminal.
	terminalFn WeightFn
}

const (
	defaultWeightMin   = 1.0
	defaultWeightMax   = 20.0
	defaultTerminalMin = 0.0
	defaultTerminalMax = 50.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:   UniformWeightFn(defaultWeightMin, defaultWeightMax),
		terminalFn: UniformWeightFn(defaultTerminalMin, defaultTerminalMax),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
