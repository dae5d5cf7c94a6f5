package gridcut_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/gridcut"
)

// TestNew_Errors verifies that New rejects empty dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridcut.New[int64](tc.w, tc.h)
			if !errors.Is(err, gridcut.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, gridcut.ErrEmptyGrid)
			}
		})
	}
}

func TestSetters_Errors(t *testing.T) {
	g, err := gridcut.New[int64](3, 2)
	require.NoError(t, err)

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"TerminalOutside", func() error { return g.SetTerminalCapacity(3, 0, 1, 1) }, gridcut.ErrOutOfRange},
		{"SourceNegativeY", func() error { return g.SetSourceCapacity(0, -1, 1) }, gridcut.ErrOutOfRange},
		{"SinkNegative", func() error { return g.SetSinkCapacity(0, 0, -1) }, gridcut.ErrNegativeCapacity},
		{"EdgeLeavesGrid", func() error { return g.SetEdgeCapacity(0, 0, gridcut.Left, 1, 1) }, gridcut.ErrOutOfRange},
		{"EdgeBelowBottom", func() error { return g.AddEdgeCapacity(1, 1, gridcut.Down, 1, 1) }, gridcut.ErrOutOfRange},
		{"BadDirection", func() error { return g.SetEdgeCapacity(1, 1, gridcut.Direction(9), 1, 1) }, gridcut.ErrBadDirection},
		{"NegativeEdge", func() error { return g.SetEdgeCapacity(1, 1, gridcut.Up, 1, -2) }, gridcut.ErrNegativeCapacity},
		{"LabelOutside", func() error { _, err := g.Label(5, 5); return err }, gridcut.ErrOutOfRange},
		{"LabelBeforeSolve", func() error { _, err := g.Label(0, 0); return err }, gridcut.ErrNotSolved},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), tc.want)
		})
	}
	require.Nil(t, g.Labels())

	var re *gridcut.RangeError
	require.True(t, errors.As(g.SetEdgeCapacity(2, 1, gridcut.Right, 1, 1), &re))
	require.Equal(t, 3, re.X, "the neighbor is reported")
	require.Equal(t, 1, re.Y)
}

func TestCoordinateRoundTrip(t *testing.T) {
	g, err := gridcut.New[float32](4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())
	x, y := g.Coordinate(9)
	require.Equal(t, 1, x)
	require.Equal(t, 2, y)
	require.True(t, g.InBounds(3, 2))
	require.False(t, g.InBounds(4, 0))
}

func TestDirectionAndLabelString(t *testing.T) {
	require.Equal(t, "Left", gridcut.Left.String())
	require.Equal(t, "Down", gridcut.Down.String())
	require.Equal(t, "Direction(7)", gridcut.Direction(7).String())
	require.Equal(t, "SinkSide", gridcut.SinkSide.String())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { gridcut.WithWorkers(0) })
	require.Panics(t, func() { gridcut.WithCheckInterval(0) })
	require.Panics(t, func() { gridcut.WithEpsilon(-1e-3) })
	require.Panics(t, func() { gridcut.WithObserver(nil) })
}
