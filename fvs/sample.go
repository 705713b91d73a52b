package fvs

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvfvs/core"
)

const methodSample = "Sample"

// Sample runs one randomized elimination trial on a private copy of g:
// reduce, stop once no edge is left, otherwise draw a vertex from dist with
// one uniform variate and remove it, for at most maxSteps rounds. When the
// budget runs out the accumulated set is checked against g, and an
// *InvariantViolationError is returned if it is not feasible. maxSteps ≥ |V|
// always suffices.
//
// Errors: ErrNilGraph, ErrBadStepBudget, ErrInvalidWeight,
// ErrNonPositiveWeight, ErrDegenerateDistribution, *InvariantViolationError.
func Sample(g *core.Graph, w core.Weights, maxSteps int, dist Distribution, opts ...Option) (Solution, error) {
	if g == nil {
		return Solution{}, fmt.Errorf("%s: %w", methodSample, ErrNilGraph)
	}
	if maxSteps < 1 {
		return Solution{}, fmt.Errorf("%s: maxSteps=%d: %w", methodSample, maxSteps, ErrBadStepBudget)
	}
	if err := validateWeights(methodSample, g, w, dist); err != nil {
		return Solution{}, err
	}
	cfg := newConfig(opts...)

	return runTrial(g, w, maxSteps, dist, cfg, cfg.rng)
}

// runTrial is Sample without argument validation.
func runTrial(g *core.Graph, w core.Weights, maxSteps int, dist Distribution, cfg config, rng *rand.Rand) (Solution, error) {
	trialsTotal.WithLabelValues(distributionName(dist)).Inc()

	work := g.Clone(core.WithMultiEdges())
	var picked []string
	for step := 0; step < maxSteps; step++ {
		picked = append(picked, reduceInPlace(work, w)...)
		if work.EdgeCount() == 0 {
			return newSolution(picked, w), nil
		}

		ids := work.Vertices()
		probs, err := dist.Probabilities(work, w)
		if err != nil {
			return Solution{}, fmt.Errorf("%s: step %d: %w", methodSample, step, err)
		}
		if len(probs) != len(ids) {
			return Solution{}, fmt.Errorf("%s: %d probabilities for %d vertices: %w",
				methodSample, len(probs), len(ids), ErrDegenerateDistribution)
		}
		idx := draw(probs, rng.Float64())
		if idx < 0 {
			return Solution{}, fmt.Errorf("%s: step %d: %w", methodSample, step, ErrDegenerateDistribution)
		}
		picked = append(picked, ids[idx])
		_ = work.RemoveVertex(ids[idx])
	}

	if IsFeasible(g, picked) {
		return newSolution(picked, w), nil
	}

	invariantViolationsTotal.Inc()
	err := &InvariantViolationError{
		MaxSteps:  maxSteps,
		Remaining: work.VertexCount(),
		Partial:   newSolution(picked, w).Vertices,
	}
	cfg.logger.Warn("elimination budget exhausted",
		"max_steps", maxSteps, "remaining", err.Remaining, "picked", len(picked))

	return Solution{}, err
}
