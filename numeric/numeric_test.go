package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/numeric"
)

func TestEpsilon_TruncatesForIntegers(t *testing.T) {
	require.Equal(t, int64(0), numeric.Epsilon[int64](numeric.DefaultEpsilon))
	require.Equal(t, int32(2), numeric.Epsilon[int32](2.7))
	require.Equal(t, 1e-9, numeric.Epsilon[float64](numeric.DefaultEpsilon))
	require.Equal(t, 0.5, numeric.Epsilon[float64](-0.5), "negative tolerance is mirrored")
}

func TestSnap(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		eps  float64
		want float64
	}{
		{"TinyNegative", -1e-12, 1e-9, 0},
		{"TinyPositive", 5e-10, 1e-9, 0},
		{"Regular", 0.25, 1e-9, 0.25},
		{"NegativeBeyondTolerance", -2, 1e-9, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, numeric.Snap(tc.in, tc.eps))
		})
	}
}

func TestExhaustedAndAbs(t *testing.T) {
	require.True(t, numeric.Exhausted(0, 0))
	require.False(t, numeric.Exhausted(1, 0))
	require.True(t, numeric.Exhausted(1e-10, 1e-9))
	require.Equal(t, 3, numeric.Abs(-3))
	require.Equal(t, 2.5, numeric.Abs(2.5))
}
