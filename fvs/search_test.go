package fvs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfvs/builder"
	"github.com/katalvlaran/lvfvs/fvs"
)

// TestSearch_SixCycle is the end-to-end scenario: unit-weight C6.
func TestSearch_SixCycle(t *testing.T) {
	g, w := ring(t, 6)

	opt, err := fvs.Optimal(g, w)
	require.NoError(t, err)
	assert.Equal(t, 1.0, opt.Weight)
	assert.Len(t, opt.Vertices, 1)

	for seed := int64(1); seed <= 20; seed++ {
		res, err := fvs.Search(g, w, fvs.Degree, 2, 50, fvs.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Weight)
		assert.True(t, fvs.IsFeasible(g, res.Vertices))
		// Budget is ⌈2·6^1⌉ = 12 and never moves.
		assert.Equal(t, 12, res.Trials)
		assert.Len(t, res.Incumbents, 12)
	}
}

func TestSearch_MonotonicAndFeasible(t *testing.T) {
	for _, in := range randomInstances(t, 12, 9, 0.4, 4) {
		t.Run(in.name, func(t *testing.T) {
			opt, err := fvs.Optimal(in.g, in.w)
			require.NoError(t, err)
			res, err := fvs.Search(in.g, in.w, fvs.DegreeOverWeight, 1, 300, fvs.WithSeed(9))
			require.NoError(t, err)

			assert.True(t, fvs.IsFeasible(in.g, res.Vertices))
			assert.GreaterOrEqual(t, res.Weight+1e-9, opt.Weight)
			assert.LessOrEqual(t, res.Trials, 300)
			require.NotEmpty(t, res.Incumbents)
			assert.IsNonIncreasing(t, res.Incumbents)
			assert.Equal(t, res.Weight, res.Incumbents[len(res.Incumbents)-1])
		})
	}
}

func TestSearch_WorkersDoNotChangeResult(t *testing.T) {
	for _, in := range randomInstances(t, 6, 11, 0.35, 3) {
		seq, err := fvs.Search(in.g, in.w, fvs.Degree, 0.5, 200, fvs.WithSeed(77))
		require.NoError(t, err)
		for _, workers := range []int{2, 3, 8} {
			par, err := fvs.Search(in.g, in.w, fvs.Degree, 0.5, 200, fvs.WithSeed(77), fvs.WithWorkers(workers))
			require.NoError(t, err)
			assert.Equal(t, seq, par, "%s workers=%d", in.name, workers)
		}
	}
}

func TestSearch_AcyclicUsesScaleTrials(t *testing.T) {
	g, w, err := builder.BuildInstance(nil, nil, builder.Path(4))
	require.NoError(t, err)

	res, err := fvs.Search(g, w, fvs.Degree, 3, 100)
	require.NoError(t, err)
	assert.Empty(t, res.Vertices)
	assert.Zero(t, res.Weight)
	assert.Equal(t, 3, res.Trials)
}

func TestSearch_Errors(t *testing.T) {
	g, w := ring(t, 4)

	_, err := fvs.Search(nil, w, fvs.Degree, 1, 10)
	assert.ErrorIs(t, err, fvs.ErrNilGraph)

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = fvs.Search(g, w, fvs.Degree, scale, 10)
		assert.ErrorIs(t, err, fvs.ErrBadScale, "scale=%g", scale)
	}

	_, err = fvs.Search(g, w, fvs.Degree, 1, 0)
	assert.ErrorIs(t, err, fvs.ErrBadTrialBudget)

	w["2"] = 0
	_, err = fvs.Search(g, w, fvs.DegreeOverWeight, 1, 10)
	assert.ErrorIs(t, err, fvs.ErrNonPositiveWeight)
}
