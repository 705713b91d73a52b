// SPDX-License-Identifier: MIT
// Package: lvfvs/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - BuildInstance adds a vertex-weight vector drawn with the same resolved cfg.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfvs/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	if err := apply(g, cfg, cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildInstance is BuildGraph followed by one weight draw per vertex, in
// Vertices() order, from the configured WeightFn and RNG.
//
// Complexity: BuildGraph cost + O(V log V).
func BuildInstance(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, core.Weights, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	if err := apply(g, cfg, cons); err != nil {
		return nil, nil, fmt.Errorf("BuildInstance: %w", err)
	}

	ids := g.Vertices()
	w := make(core.Weights, len(ids))
	for _, id := range ids {
		w[id] = cfg.weightFn(cfg.rng)
	}

	return g, w, nil
}

// RandomInstance samples an Erdős–Rényi G(n,p) graph with integer vertex
// weights uniform in [1, maxWeight], the instance family of the iteration
// experiments. The same seed always yields the same instance.
func RandomInstance(n int, p float64, maxWeight int, seed int64) (*core.Graph, core.Weights, error) {
	if maxWeight < 1 {
		return nil, nil, fmt.Errorf("RandomInstance: maxWeight=%d < 1: %w", maxWeight, ErrInvalidWeightRange)
	}

	return BuildInstance(nil,
		[]BuilderOption{WithSeed(seed), WithWeightFn(IntUniformWeightFn(1, maxWeight))},
		RandomSparse(n, p),
	)
}

// apply runs cons in order against g.
func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
