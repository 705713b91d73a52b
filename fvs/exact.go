// SPDX-License-Identifier: MIT
// Package: lvfvs/fvs
//
// exact.go — brute-force ground truth.
//
// Order:
//   - Sizes 1..|V|-1 ascending; within a size, combinations of Vertices() in
//     lexicographic order. A subset replaces the best only when strictly lighter,
//     so the first minimum found wins. Subsets already as heavy as the best are
//     skipped unverified; they could not win anyway.
//   - With workers, each size is solved independently and the per-size winners
//     reduce in size order under the same strict comparison, which gives the
//     sequential answer.

package fvs

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfvs/core"
	"github.com/katalvlaran/lvfvs/dfs"
)

const (
	methodOptimal             = "Optimal"
	methodMinimumFeasibleSize = "MinimumFeasibleSize"
)

// sizeResult is the best feasible subset of one size.
type sizeResult struct {
	ids    []string
	weight float64
	found  bool
}

// Optimal returns a minimum-weight feedback vertex set of g by exhaustive
// search. Acyclic graphs return the empty set with weight 0.
//
// Errors: ErrNilGraph, ErrInvalidWeight.
//
// Complexity: O(2^V · (V + E)).
func Optimal(g *core.Graph, w core.Weights, opts ...Option) (Solution, error) {
	if g == nil {
		return Solution{}, fmt.Errorf("%s: %w", methodOptimal, ErrNilGraph)
	}
	if err := w.Validate(g); err != nil {
		return Solution{}, fmt.Errorf("%s: %w: %w", methodOptimal, ErrInvalidWeight, err)
	}
	if !dfs.HasCycle(g) {
		return newSolution(nil, w), nil
	}

	cfg := newConfig(opts...)
	ids := g.Vertices()
	n := len(ids)

	var best sizeResult
	if cfg.workers <= 1 {
		best.weight = math.Inf(1)
		for k := 1; k < n; k++ {
			if r := bestOfSize(g, w, ids, k, best.weight); r.found {
				best = r
			}
			cfg.logger.Debug("exact size scanned", "size", k, "best", best.weight)
		}
	} else {
		results := make([]sizeResult, n)
		eg := new(errgroup.Group)
		eg.SetLimit(cfg.workers)
		for k := 1; k < n; k++ {
			eg.Go(func() error {
				results[k] = bestOfSize(g, w, ids, k, math.Inf(1))
				return nil
			})
		}
		_ = eg.Wait()
		best.weight = math.Inf(1)
		for k := 1; k < n; k++ {
			if r := results[k]; r.found && r.weight < best.weight {
				best = r
			}
		}
		cfg.logger.Debug("exact sizes scanned", "sizes", n-1, "workers", cfg.workers, "best", best.weight)
	}

	return newSolution(best.ids, w), nil
}

// bestOfSize scans the k-subsets lighter than bound and returns the first
// lightest feasible one.
func bestOfSize(g *core.Graph, w core.Weights, ids []string, k int, bound float64) sizeResult {
	res := sizeResult{weight: bound}
	buf := make([]string, 0, k)
	forEachCombination(len(ids), k, func(idx []int) bool {
		buf = pick(ids, idx, buf)
		weight := w.Sum(buf)
		if weight >= res.weight {
			return true
		}
		exactSubsetsVerifiedTotal.Inc()
		if IsFeasible(g, buf) {
			res = sizeResult{ids: append([]string(nil), buf...), weight: weight, found: true}
		}
		return true
	})

	return res
}

// MinimumFeasibleSize returns the cardinality of a smallest feedback vertex
// set of g, ignoring weights; 0 when g is acyclic.
//
// Errors: ErrNilGraph.
func MinimumFeasibleSize(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodMinimumFeasibleSize, ErrNilGraph)
	}
	if !dfs.HasCycle(g) {
		return 0, nil
	}

	cfg := newConfig(opts...)
	ids := g.Vertices()
	n := len(ids)

	if cfg.workers <= 1 {
		for k := 1; k < n; k++ {
			if feasibleOfSize(g, ids, k) {
				return k, nil
			}
		}
		// Unreachable for a cyclic graph: any |V|-1 subset leaves one vertex.
		return n, nil
	}

	feasible := make([]bool, n)
	eg := new(errgroup.Group)
	eg.SetLimit(cfg.workers)
	for k := 1; k < n; k++ {
		eg.Go(func() error {
			feasible[k] = feasibleOfSize(g, ids, k)
			return nil
		})
	}
	_ = eg.Wait()
	for k := 1; k < n; k++ {
		if feasible[k] {
			return k, nil
		}
	}

	return n, nil
}

// feasibleOfSize reports whether some k-subset of ids is a feedback vertex set.
func feasibleOfSize(g *core.Graph, ids []string, k int) bool {
	found := false
	buf := make([]string, 0, k)
	forEachCombination(len(ids), k, func(idx []int) bool {
		exactSubsetsVerifiedTotal.Inc()
		if IsFeasible(g, pick(ids, idx, buf)) {
			found = true
			return false
		}
		return true
	})

	return found
}
