package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfvs/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))
	return g
}

func TestWeights_Sum(t *testing.T) {
	w := core.Weights{"A": 1.5, "B": 2, "C": 4}
	assert.Equal(t, 3.5, w.Sum([]string{"B", "A"}))
	assert.Equal(t, 0.0, w.Sum(nil))
	assert.Equal(t, 2.0, w.Sum([]string{"B", "unknown"}))
}

func TestWeights_Uniform(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, core.Weights{"A": 1, "B": 1, "C": 1}, core.Uniform(g, 1))
}

func TestWeights_Validate(t *testing.T) {
	g := triangle(t)

	cases := []struct {
		name    string
		w       core.Weights
		want    error
		wantPos error
	}{
		{"ok", core.Weights{"A": 1, "B": 2, "C": 3}, nil, nil},
		{"zero allowed", core.Weights{"A": 0, "B": 2, "C": 3}, nil, core.ErrNonPositiveWeight},
		{"missing", core.Weights{"A": 1, "B": 2}, core.ErrMissingWeight, core.ErrMissingWeight},
		{"negative", core.Weights{"A": 1, "B": -2, "C": 3}, core.ErrNegativeWeight, core.ErrNegativeWeight},
		{"nan", core.Weights{"A": math.NaN(), "B": 2, "C": 3}, core.ErrNegativeWeight, core.ErrNegativeWeight},
		{"inf", core.Weights{"A": 1, "B": math.Inf(1), "C": 3}, core.ErrNegativeWeight, core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.w.Validate(g)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
			err = tc.w.ValidatePositive(g)
			if tc.wantPos == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantPos)
			}
		})
	}
}
