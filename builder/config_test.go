// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and panics on nil.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (stochastic constructors refuse to run)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) is a programmer error
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("WithRand(nil): expected panic")
			}
		}()
		WithRand(nil)
	}()

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestWeightFnOptions verifies that weight options apply to the right
// generator and that later options override earlier ones.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	const constVal = 9.0
	const lo, hi = 2.0, 4.0
	rng := rand.New(rand.NewSource(1))

	// 1. Defaults fall back to DefaultWeight without an RNG
	cfgDefault := newBuilderConfig()
	if w := cfgDefault.weightFn(nil); w != DefaultWeight {
		t.Errorf("default weightFn(nil): expected %g, got %g", DefaultWeight, w)
	}
	if w := cfgDefault.terminalFn(rng); w < defaultTerminalMin || w >= defaultTerminalMax {
		t.Errorf("default terminalFn: expected in [%g,%g), got %g", defaultTerminalMin, defaultTerminalMax, w)
	}

	// 2. WithConstantWeight touches inner arcs only
	cfgConst := newBuilderConfig(WithConstantWeight(constVal))
	if w := cfgConst.weightFn(rng); w != constVal {
		t.Errorf("WithConstantWeight: expected %g, got %g", constVal, w)
	}
	if w := cfgConst.terminalFn(nil); w != DefaultWeight {
		t.Errorf("WithConstantWeight leaked into terminalFn: got %g", w)
	}

	// 3. Override order: last option wins
	cfgOverride := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(lo, hi))
	if w := cfgOverride.weightFn(rng); w < lo || w >= hi {
		t.Errorf("override order: expected uniform in [%g,%g), got %g", lo, hi, w)
	}

	// 4. WithIntegerWeights sets both generators
	cfgInt := newBuilderConfig(WithIntegerWeights(3, 3))
	if w := cfgInt.weightFn(rng); w != 3 {
		t.Errorf("WithIntegerWeights weightFn: expected 3, got %g", w)
	}
	if w := cfgInt.terminalFn(rng); w != 3 {
		t.Errorf("WithIntegerWeights terminalFn: expected 3, got %g", w)
	}

	// 5. WithTerminalFn overrides only the terminal generator
	cfgTerm := newBuilderConfig(WithTerminalFn(ConstantWeightFn(5)))
	if w := cfgTerm.terminalFn(nil); w != 5 {
		t.Errorf("WithTerminalFn: expected 5, got %g", w)
	}
}
