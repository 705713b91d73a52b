package fvs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfvs/builder"
	"github.com/katalvlaran/lvfvs/core"
)

// graphOf builds a graph from an edge list; repeated pairs need multi.
func graphOf(t *testing.T, multi bool, edges ...[2]string) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// square is the 4-cycle A-B-C-D-A.
func square(t *testing.T) *core.Graph {
	return graphOf(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
}

// ring builds the cycle 0..n-1 with unit weights.
func ring(t *testing.T, n int) (*core.Graph, core.Weights) {
	t.Helper()
	g, w, err := builder.BuildInstance(nil, nil, builder.Cycle(n))
	require.NoError(t, err)

	return g, w
}

// complete builds K_n with unit weights.
func complete(t *testing.T, n int) (*core.Graph, core.Weights) {
	t.Helper()
	g, w, err := builder.BuildInstance(nil, nil, builder.Complete(n))
	require.NoError(t, err)

	return g, w
}

// randomInstances returns small G(n,p) instances with integer weights, one per seed.
func randomInstances(t *testing.T, count, n int, p float64, maxWeight int) []instance {
	t.Helper()
	out := make([]instance, 0, count)
	for seed := int64(1); seed <= int64(count); seed++ {
		g, w, err := builder.RandomInstance(n, p, maxWeight, seed)
		require.NoError(t, err)
		out = append(out, instance{name: fmt.Sprintf("seed=%d", seed), g: g, w: w})
	}

	return out
}

type instance struct {
	name string
	g    *core.Graph
	w    core.Weights
}
