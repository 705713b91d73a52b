package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfvs/builder"
)

// TestBuildInstance_DefaultWeights gives every vertex DefaultVertexWeight.
func TestBuildInstance_DefaultWeights(t *testing.T) {
	t.Parallel()

	g, w, err := builder.BuildInstance(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	require.Len(t, w, 4)
	for _, id := range g.Vertices() {
		assert.Equal(t, builder.DefaultVertexWeight, w[id], id)
	}
	require.NoError(t, w.ValidatePositive(g))
}

// TestRandomInstance_Deterministic checks that a seed fixes graph and weights.
func TestRandomInstance_Deterministic(t *testing.T) {
	t.Parallel()

	g1, w1, err := builder.RandomInstance(12, 0.3, 10, 7)
	require.NoError(t, err)
	g2, w2, err := builder.RandomInstance(12, 0.3, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, w1, w2)
	assert.Equal(t, 12, g1.VertexCount())
	for id, x := range w1 {
		assert.GreaterOrEqual(t, x, 1.0, id)
		assert.LessOrEqual(t, x, 10.0, id)
		assert.Equal(t, float64(int(x)), x, "integer weight for %s", id)
	}
}

// TestRandomInstance_Errors covers parameter validation.
func TestRandomInstance_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := builder.RandomInstance(5, 0.5, 0, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidWeightRange)

	_, _, err = builder.RandomInstance(5, 2, 3, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

// TestWeightFnConstructors verifies that WeightFn constructors panic on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 5) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.IntUniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestWeightFnBehavior covers the runtime values of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultVertexWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))
	assert.Equal(t, builder.DefaultVertexWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, 3.0, builder.IntUniformWeightFn(3, 9)(nil))

	uni := builder.UniformWeightFn(2, 3)
	ints := builder.IntUniformWeightFn(1, 3)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		x := uni(rng)
		assert.True(t, x >= 2 && x < 3, "uniform sample %g", x)
		seen[ints(rng)] = true
	}
	assert.Equal(t, map[float64]bool{1: true, 2: true, 3: true}, seen)
}

// TestIDSchemes checks the built-in ID functions and their use by constructors.
func TestIDSchemes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "C", builder.SymbolIDFn(2))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}
