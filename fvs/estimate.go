// SPDX-License-Identifier: MIT
// Package: lvfvs/fvs
//
// estimate.go — iteration complexity of the elimination trial.
//
// TrialsToTarget measures one geometric sample: how many independent trials
// until one reaches a target weight (usually the exact optimum). EstimateTrials
// averages such samples; sample i draws from stream i, so the mean does not
// depend on the worker count.

package fvs

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfvs/core"
)

const (
	methodTrialsToTarget = "TrialsToTarget"
	methodEstimateTrials = "EstimateTrials"

	// targetTolerance absorbs float rounding when comparing set weights with a
	// target computed from a different summation.
	targetTolerance = 1e-9
)

// TrialsToTarget runs independent elimination trials until one yields weight
// ≤ target and returns the 1-based count of that trial.
//
// Errors: ErrNilGraph, ErrBadTrialBudget, weight errors, trial errors, and
// ErrTargetNotReached after maxTrials misses.
func TrialsToTarget(g *core.Graph, w core.Weights, target float64, dist Distribution, maxTrials int, opts ...Option) (int, error) {
	if err := validateEstimate(methodTrialsToTarget, g, w, dist, maxTrials); err != nil {
		return 0, err
	}
	cfg := newConfig(opts...)

	n, err := trialsToTarget(context.Background(), g, w, target, dist, maxTrials, cfg, cfg.rng)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodTrialsToTarget, err)
	}

	return n, nil
}

// EstimateTrials returns the mean of samples independent TrialsToTarget runs.
// Cancelling ctx stops outstanding samples and returns ctx.Err().
//
// Errors: as TrialsToTarget, plus ErrBadSampleCount.
func EstimateTrials(ctx context.Context, g *core.Graph, w core.Weights, target float64, dist Distribution, samples, maxTrials int, opts ...Option) (float64, error) {
	if err := validateEstimate(methodEstimateTrials, g, w, dist, maxTrials); err != nil {
		return 0, err
	}
	if samples < 1 {
		return 0, fmt.Errorf("%s: samples=%d: %w", methodEstimateTrials, samples, ErrBadSampleCount)
	}
	cfg := newConfig(opts...)
	streams := newStreamFamily(cfg.rng)

	counts := make([]int, samples)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := range counts {
		eg.Go(func() error {
			n, err := trialsToTarget(ctx, g, w, target, dist, maxTrials, cfg, streams.stream(i))
			if err != nil {
				return fmt.Errorf("%s: sample %d: %w", methodEstimateTrials, i, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var total int
	for _, n := range counts {
		total += n
	}
	mean := float64(total) / float64(samples)
	cfg.logger.Debug("trials estimated",
		"distribution", distributionName(dist), "samples", samples, "mean", mean)

	return mean, nil
}

func validateEstimate(method string, g *core.Graph, w core.Weights, dist Distribution, maxTrials int) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if maxTrials < 1 {
		return fmt.Errorf("%s: maxTrials=%d: %w", method, maxTrials, ErrBadTrialBudget)
	}

	return validateWeights(method, g, w, dist)
}

func trialsToTarget(ctx context.Context, g *core.Graph, w core.Weights, target float64, dist Distribution, maxTrials int, cfg config, rng *rand.Rand) (int, error) {
	maxSteps := g.VertexCount() + 1
	slack := targetTolerance * math.Max(1, math.Abs(target))
	for t := 1; t <= maxTrials; t++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		sol, err := runTrial(g, w, maxSteps, dist, cfg, rng)
		if err != nil {
			return 0, err
		}
		if sol.Weight <= target+slack {
			return t, nil
		}
	}

	return 0, fmt.Errorf("target %g after %d trials: %w", target, maxTrials, ErrTargetNotReached)
}
