// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mincut/builder"
)

// assertPanics fails t if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_loNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntegerWeightFn_loNegative", func() builder.WeightFn { return builder.IntegerWeightFn(-2, 3) }},
		{"IntegerWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.IntegerWeightFn(3, 2) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { tc.constructor() }, tc.name)
		})
	}
	assertPanics(t, func() { builder.WithWeightFn(nil) }, "WithWeightFn(nil)")
	assertPanics(t, func() { builder.WithTerminalFn(nil) }, "WithTerminalFn(nil)")
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - ConstantWeightFn returns the fixed value.
//   - UniformWeightFn returns DefaultWeight on nil RNG, and lo when lo==hi.
//   - IntegerWeightFn returns whole numbers within [lo,hi].
//   - NormalWeightFn returns DefaultWeight on nil RNG and non-negative samples.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	const constVal = 7.0
	wfnConst := builder.ConstantWeightFn(constVal)
	if w := wfnConst(nil); w != constVal {
		t.Errorf("ConstantWeightFn(nil): expected %g, got %g", constVal, w)
	}
	if w := wfnConst(rng); w != constVal {
		t.Errorf("ConstantWeightFn(rng): expected %g, got %g", constVal, w)
	}

	wfnUni := builder.UniformWeightFn(3, 3)
	if w := wfnUni(nil); w != builder.DefaultWeight {
		t.Errorf("UniformWeightFn(nil RNG): expected default %g, got %g", builder.DefaultWeight, w)
	}
	if w := wfnUni(rng); w != 3 {
		t.Errorf("UniformWeightFn(3,3): expected 3, got %g", w)
	}

	wfnInt := builder.IntegerWeightFn(2, 5)
	for i := 0; i < 100; i++ {
		w := wfnInt(rng)
		if w < 2 || w > 5 || w != math.Trunc(w) {
			t.Fatalf("IntegerWeightFn(2,5): got %g", w)
		}
	}

	wfnNorm := builder.NormalWeightFn(-10, 2)
	if w := wfnNorm(nil); w != builder.DefaultWeight {
		t.Errorf("NormalWeightFn(nil RNG): expected default %g, got %g", builder.DefaultWeight, w)
	}
	if w := wfnNorm(rng); w < 0 {
		t.Errorf("NormalWeightFn: expected clipped at 0, got %g", w)
	}
}
