package graphcut

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeQueue(t *testing.T) {
	var q nodeQueue
	_, ok := q.pop()
	require.False(t, ok)

	q.push(3)
	q.push(1)
	require.Equal(t, 2, q.len())
	id, ok := q.pop()
	require.True(t, ok)
	require.Equal(t, 3, id)
	q.push(4)
	id, _ = q.pop()
	require.Equal(t, 1, id)
	id, _ = q.pop()
	require.Equal(t, 4, id)
	require.Equal(t, 0, q.len())
	require.Equal(t, 0, q.head, "drained queue rewinds")
}

func TestNodeQueue_BoundedWithoutDraining(t *testing.T) {
	var q nodeQueue
	q.push(0)
	q.push(1)
	next := 0
	for i := 2; i < 1000; i++ {
		q.push(i)
		id, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, next, id, "FIFO order")
		next++
		require.Equal(t, 2, q.len())
		require.LessOrEqual(t, len(q.items), 5, "popped slots are reclaimed")
	}
}

func TestOpposite_TopologyError(t *testing.T) {
	g, err := New[int64](3)
	require.NoError(t, err)
	e, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)

	other, err := g.opposite(e, 1)
	require.NoError(t, err)
	require.Equal(t, 0, other)

	_, err = g.opposite(e, 2)
	var te *TopologyError
	require.True(t, errors.As(err, &te))
	require.Equal(t, e, te.Edge)
	require.Equal(t, 2, te.Node)
	require.ErrorIs(t, err, ErrTopology)
}

func TestParentOf_RejectsRoot(t *testing.T) {
	g, err := New[int64](2)
	require.NoError(t, err)
	require.NoError(t, g.SetCapacity(0, 1))
	require.NoError(t, g.SetCapacity(1, -1))
	require.NoError(t, g.Initialize())

	_, err = g.parentOf(0)
	require.ErrorIs(t, err, ErrTopology)
}

func TestInitialize_RootsAndBaseFlow(t *testing.T) {
	g, err := New[int64](4)
	require.NoError(t, err)
	require.NoError(t, g.AddTerminal(0, 5, 2))
	require.NoError(t, g.AddTerminal(1, 1, 4))
	require.NoError(t, g.AddTerminal(2, 3, 3))
	require.NoError(t, g.Initialize())

	require.Equal(t, int64(2+1+3), g.flow)
	require.Equal(t, Source, g.nodes[0].tag)
	require.Equal(t, int64(3), g.nodes[0].residual)
	require.Equal(t, Sink, g.nodes[1].tag)
	require.Equal(t, int64(-3), g.nodes[1].residual)
	require.Equal(t, Unknown, g.nodes[2].tag, "balanced weights leave no residual")
	require.Equal(t, Unknown, g.nodes[3].tag)
	require.Equal(t, 2, g.labeled)
	require.Equal(t, 2, g.active.len())
	for _, id := range []int{0, 1} {
		require.Equal(t, parentRoot, g.nodes[id].parent.kind)
		require.Equal(t, 1, g.nodes[id].dist)
		require.True(t, g.nodes[id].active)
	}
}

func TestVerify_DetectsCorruption(t *testing.T) {
	build := func() *Graph[int64] {
		g, err := New[int64](2)
		require.NoError(t, err)
		require.NoError(t, g.SetCapacity(0, 5))
		require.NoError(t, g.SetCapacity(1, -5))
		_, err = g.AddEdge(0, 1, 3, 3)
		require.NoError(t, err)
		_, err = g.Solve(context.Background(), nil)
		require.NoError(t, err)
		require.NoError(t, Verify(g))
		return g
	}

	cases := []struct {
		name     string
		corrupt  func(g *Graph[int64])
		property string
	}{
		{"NegativeResidual", func(g *Graph[int64]) { g.edges[0].fwd = -1 }, "non-negativity"},
		{"Capacity", func(g *Graph[int64]) { g.edges[0].rev = 1 }, "capacity"},
		{"Terminal", func(g *Graph[int64]) { g.nodes[0].residual = -1 }, "terminal"},
		{"Conservation", func(g *Graph[int64]) { g.nodes[0].residual = 1 }, "conservation"},
		{"Maximality", func(g *Graph[int64]) {
			g.edges[0].fwd, g.edges[0].rev = 1, 5
			g.edges[0].capFwd, g.edges[0].capRev = 4, 2
		}, "maximality"},
		{"Cut", func(g *Graph[int64]) { g.flow = 1 }, "cut"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build()
			tc.corrupt(g)
			err := Verify(g)
			var ve *VerifyError
			require.True(t, errors.As(err, &ve), "got %v", err)
			require.Equal(t, tc.property, ve.Property)
			require.ErrorIs(t, err, ErrVerify)
		})
	}
}
