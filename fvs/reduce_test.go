package fvs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfvs/builder"
	"github.com/katalvlaran/lvfvs/core"
	"github.com/katalvlaran/lvfvs/fvs"
)

func TestReduce_AcyclicIsEmpty(t *testing.T) {
	g, w, err := builder.BuildInstance(nil, nil, builder.Star(6))
	require.NoError(t, err)

	red, err := fvs.Reduce(g, w)
	require.NoError(t, err)
	assert.Zero(t, red.Graph.VertexCount())
	assert.Empty(t, red.Forced)
	assert.Equal(t, 6, g.VertexCount(), "input untouched")
}

func TestReduce_SquareCollapsesToOneForcedVertex(t *testing.T) {
	g := square(t)
	red, err := fvs.Reduce(g, core.Uniform(g, 1))
	require.NoError(t, err)

	assert.Zero(t, red.Graph.VertexCount())
	assert.Equal(t, []string{"A"}, red.Forced)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestReduce_CycleKeepsCheapestVertex(t *testing.T) {
	g, _ := ring(t, 7)
	w := core.Weights{"0": 5, "1": 4, "2": 9, "3": 2, "4": 7, "5": 3, "6": 8}

	red, err := fvs.Reduce(g, w)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, red.Forced)
}

func TestReduce_PendantTwoCycleForcesCheaperHub(t *testing.T) {
	// A=B is a doubled edge; B also closes the triangle B-C-D.
	g := graphOf(t, true,
		[2]string{"A", "B"}, [2]string{"A", "B"},
		[2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "B"})
	w := core.Weights{"A": 5, "B": 1, "C": 1, "D": 1}

	red, err := fvs.Reduce(g, w)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, red.Forced)
	assert.Zero(t, red.Graph.VertexCount())
}

func TestReduce_HeavyHubTwoCycleStays(t *testing.T) {
	g := graphOf(t, true,
		[2]string{"A", "B"}, [2]string{"A", "B"},
		[2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "B"})
	w := core.Weights{"A": 1, "B": 5, "C": 1, "D": 1}

	red, err := fvs.Reduce(g, w)
	require.NoError(t, err)
	assert.Empty(t, red.Forced)
	assert.Equal(t, []string{"A", "B", "C"}, red.Graph.Vertices())
	assert.Equal(t, 2, red.Graph.Multiplicity("A", "B"))
	assert.Equal(t, 2, red.Graph.Multiplicity("B", "C"))

	opt, err := fvs.Optimal(red.Graph, w)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, opt.Vertices)
	assert.Equal(t, 2.0, opt.Weight)
}

func TestReduce_BranchyGraphUnchanged(t *testing.T) {
	g, w := complete(t, 5)
	red, err := fvs.Reduce(g, w)
	require.NoError(t, err)
	assert.Empty(t, red.Forced)
	assert.Equal(t, g.Edges(), red.Graph.Edges())
}

// TestReduce_Soundness checks w(Forced) + opt(reduced) == opt(original).
func TestReduce_Soundness(t *testing.T) {
	for _, in := range randomInstances(t, 25, 8, 0.35, 6) {
		t.Run(in.name, func(t *testing.T) {
			red, err := fvs.Reduce(in.g, in.w)
			require.NoError(t, err)

			opt, err := fvs.Optimal(in.g, in.w)
			require.NoError(t, err)
			optRed, err := fvs.Optimal(red.Graph, in.w)
			require.NoError(t, err)

			assert.InDelta(t, opt.Weight, in.w.Sum(red.Forced)+optRed.Weight, 1e-9)
			assert.True(t, fvs.IsFeasible(in.g, append(red.Forced, optRed.Vertices...)))
		})
	}
}

func TestReduce_Errors(t *testing.T) {
	_, err := fvs.Reduce(nil, nil)
	assert.ErrorIs(t, err, fvs.ErrNilGraph)

	g := square(t)
	_, err = fvs.Reduce(g, core.Weights{"A": 1})
	assert.ErrorIs(t, err, fvs.ErrInvalidWeight)
	assert.ErrorIs(t, err, core.ErrMissingWeight)

	w := core.Uniform(g, 1)
	w["B"] = -2
	_, err = fvs.Reduce(g, w)
	assert.ErrorIs(t, err, fvs.ErrInvalidWeight)
}

func TestDeleteSinks(t *testing.T) {
	// Triangle with a two-vertex tail and an isolated vertex.
	g := graphOf(t, false,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"C", "T1"}, [2]string{"T1", "T2"})
	require.NoError(t, g.AddVertex("Z"))

	core1 := fvs.DeleteSinks(g)
	assert.Equal(t, []string{"A", "B", "C"}, core1.Vertices())
	assert.Equal(t, 3, core1.EdgeCount())

	again := fvs.DeleteSinks(core1)
	assert.Equal(t, core1.Edges(), again.Edges())
	assert.Equal(t, 6, g.VertexCount())

	assert.Zero(t, fvs.DeleteSinks(graphOf(t, false, [2]string{"X", "Y"}, [2]string{"Y", "Z"})).VertexCount())
	assert.Nil(t, fvs.DeleteSinks(nil))
}

func TestDeleteSinks_Idempotent(t *testing.T) {
	for _, in := range randomInstances(t, 10, 12, 0.2, 3) {
		once := fvs.DeleteSinks(in.g)
		twice := fvs.DeleteSinks(once)
		assert.Equal(t, once.Vertices(), twice.Vertices(), in.name)
		assert.Equal(t, once.Edges(), twice.Edges(), in.name)
		for id, deg := range once.Degrees() {
			assert.GreaterOrEqual(t, deg, 2, "%s: %s", in.name, id)
		}
	}
}
