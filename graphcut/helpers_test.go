package graphcut_test

import (
	"math/rand"

	"github.com/katalvlaran/mincut/graphcut"
	"github.com/katalvlaran/mincut/numeric"
)

// instance is a terminal-weighted graph described independently of the
// engine so the same data can feed both graphcut and the reference solver.
type instance[T numeric.Capacity] struct {
	n            int
	source, sink []T
	edges        []testEdge[T]
}

type testEdge[T numeric.Capacity] struct {
	u, v     int
	fwd, rev T
}

// randomInstance draws n nodes with terminal weights and about n·degree
// edges. Node 0 always leans to the source and node 1 to the sink.
func randomInstance(n, degree int, maxCap int64, seed int64) instance[int64] {
	r := rand.New(rand.NewSource(seed))
	in := instance[int64]{n: n, source: make([]int64, n), sink: make([]int64, n)}
	for i := 0; i < n; i++ {
		switch r.Intn(3) {
		case 0:
			in.source[i] = r.Int63n(maxCap) + 1
		case 1:
			in.sink[i] = r.Int63n(maxCap) + 1
		}
	}
	in.source[0], in.sink[0] = maxCap, 0
	in.source[1], in.sink[1] = 0, maxCap
	for k := 0; k < n*degree; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		in.edges = append(in.edges, testEdge[int64]{u: u, v: v, fwd: r.Int63n(maxCap + 1), rev: r.Int63n(maxCap + 1)})
	}
	return in
}

func (in instance[T]) build(opts ...graphcut.Option) (*graphcut.Graph[T], error) {
	g, err := graphcut.New[T](in.n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < in.n; i++ {
		if err = g.AddTerminal(i, in.source[i], in.sink[i]); err != nil {
			return nil, err
		}
	}
	for _, e := range in.edges {
		if _, err = g.AddEdge(e.u, e.v, e.fwd, e.rev); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// edmondsKarp is a dense-matrix shortest-augmenting-path reference solver.
// Vertex n is the source and n+1 the sink.
func edmondsKarp[T numeric.Capacity](in instance[T]) T {
	size := in.n + 2
	s, t := in.n, in.n+1
	res := make([][]T, size)
	for i := range res {
		res[i] = make([]T, size)
	}
	for i := 0; i < in.n; i++ {
		res[s][i] += in.source[i]
		res[i][t] += in.sink[i]
	}
	for _, e := range in.edges {
		res[e.u][e.v] += e.fwd
		res[e.v][e.u] += e.rev
	}

	var total T
	parent := make([]int, size)
	for {
		for i := range parent {
			parent[i] = -1
		}
		parent[s] = s
		queue := []int{s}
		for len(queue) > 0 && parent[t] < 0 {
			u := queue[0]
			queue = queue[1:]
			for v := 0; v < size; v++ {
				if parent[v] < 0 && res[u][v] > 0 {
					parent[v] = u
					queue = append(queue, v)
				}
			}
		}
		if parent[t] < 0 {
			return total
		}
		b := res[parent[t]][t]
		for v := t; v != s; v = parent[v] {
			b = min(b, res[parent[v]][v])
		}
		for v := t; v != s; v = parent[v] {
			res[parent[v]][v] -= b
			res[v][parent[v]] += b
		}
		total += b
	}
}
