// SPDX-License-Identifier: MIT
// Package: lvfvs/fvs
//
// search.go — Weighted Randomized Approximation (WRA).
//
// Flow:
//   1) Trial 0 seeds the incumbent; the trial count starts at 1.
//   2) While count < m, run the next trial; m = min(maxTrials, ⌈scale·6^w(incumbent)⌉).
//   3) A trial with weight ≤ incumbent replaces it (the most recent wins ties)
//      and m is recomputed from the new weight.
//
// Parallelism:
//   - Trial i always draws from stream i of one family, so a trial's outcome
//     does not depend on who runs it. Workers run batches ahead; the merge walks
//     the batch in index order and discards trials past the current budget,
//     which reproduces the sequential run exactly.

package fvs

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfvs/core"
)

const (
	methodSearch = "Search"

	// budgetBase is the per-unit-weight growth of the WRA trial bound.
	budgetBase = 6.0
)

// trialOutcome carries one trial's result to the merge step.
type trialOutcome struct {
	sol Solution
	err error
}

// Search runs the WRA loop and returns the final incumbent. Every trial gets
// |V|+1 elimination steps, which always suffices.
//
// Errors: ErrNilGraph, ErrBadScale, ErrBadTrialBudget, weight errors, and the
// first trial error in trial order (never retried).
func Search(g *core.Graph, w core.Weights, dist Distribution, scaleFactor float64, maxTrials int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("%s: %w", methodSearch, ErrNilGraph)
	}
	if !(scaleFactor > 0) || math.IsInf(scaleFactor, 0) {
		return Result{}, fmt.Errorf("%s: scale=%g: %w", methodSearch, scaleFactor, ErrBadScale)
	}
	if maxTrials < 1 {
		return Result{}, fmt.Errorf("%s: maxTrials=%d: %w", methodSearch, maxTrials, ErrBadTrialBudget)
	}
	if err := validateWeights(methodSearch, g, w, dist); err != nil {
		return Result{}, err
	}

	cfg := newConfig(opts...)
	streams := newStreamFamily(cfg.rng)
	maxSteps := g.VertexCount() + 1
	run := func(i int) trialOutcome {
		sol, err := runTrial(g, w, maxSteps, dist, cfg, streams.stream(i))
		if err != nil {
			err = fmt.Errorf("%s: trial %d: %w", methodSearch, i, err)
		}

		return trialOutcome{sol: sol, err: err}
	}

	seed := run(0)
	if seed.err != nil {
		return Result{}, seed.err
	}
	best := seed.sol
	trials := 1
	budget := trialBudget(best.Weight, scaleFactor, maxTrials)
	trace := []float64{best.Weight}

	for trials < budget {
		batch := runBatch(trials, min(cfg.workers, budget-trials), cfg.workers, run)
		for _, out := range batch {
			if trials >= budget {
				break
			}
			if out.err != nil {
				return Result{}, out.err
			}
			trials++
			if out.sol.Weight <= best.Weight {
				best = out.sol
				budget = trialBudget(best.Weight, scaleFactor, maxTrials)
				trace = append(trace, best.Weight)
				incumbentReplacementsTotal.Inc()
				cfg.logger.Debug("incumbent replaced",
					"trial", trials, "weight", best.Weight, "budget", budget)
			}
		}
	}

	return Result{Solution: best, Trials: trials, Incumbents: trace}, nil
}

// trialBudget returns min(maxTrials, ⌈scale·6^weight⌉), at least 1.
func trialBudget(weight, scale float64, maxTrials int) int {
	b := math.Ceil(scale * math.Pow(budgetBase, weight))
	if math.IsNaN(b) || b >= float64(maxTrials) {
		return maxTrials
	}
	if b < 1 {
		return 1
	}

	return int(b)
}

// runBatch evaluates trials first..first+n-1 and returns them in index order.
// A single worker runs inline.
func runBatch(first, n, workers int, run func(int) trialOutcome) []trialOutcome {
	out := make([]trialOutcome, n)
	if workers <= 1 || n == 1 {
		for i := range out {
			out[i] = run(first + i)
		}
		return out
	}

	var eg errgroup.Group
	for i := range out {
		eg.Go(func() error {
			out[i] = run(first + i)
			return nil
		})
	}
	// Trial errors travel in out so the merge can report them in index order.
	_ = eg.Wait()

	return out
}
