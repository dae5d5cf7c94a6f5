package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultWeight is returned by stochastic weight functions when no RNG is
// available.
const DefaultWeight float64 = 1

// WeightFn produces a non-negative capacity from an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi). Panics unless 0 ≤ lo ≤ hi.
// Without an RNG it yields DefaultWeight.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn samples integers uniformly in [lo, hi]. Integral capacities
// keep both engines exact. Panics unless 0 ≤ lo ≤ hi.
func IntegerWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// NormalWeightFn samples N(mean, stddev) clipped at zero. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// WithConstantWeight sets a fixed inner capacity.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets inner capacities ∼ U[lo,hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithIntegerWeights draws both inner and terminal capacities as integers in
// [lo, hi].
func WithIntegerWeights(lo, hi int) BuilderOption {
	fn := IntegerWeightFn(lo, hi)
	return func(c *builderConfig) {
		c.weightFn = fn
		c.terminalFn = fn
	}
}
