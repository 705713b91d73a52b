// SPDX-License-Identifier: MIT
// File: weights.go
// Role: Vertex weight vector.
//
// Weights are deliberately kept outside Graph: algorithms take (graph, weights)
// as explicit parameters and copy only the graph.

package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrMissingWeight indicates that a vertex of the graph has no weight entry.
	ErrMissingWeight = errors.New("core: missing vertex weight")

	// ErrNegativeWeight indicates a negative, NaN or infinite vertex weight.
	ErrNegativeWeight = errors.New("core: vertex weight must be finite and non-negative")

	// ErrNonPositiveWeight indicates a zero weight where strictly positive weights are required.
	ErrNonPositiveWeight = errors.New("core: vertex weight must be positive")
)

// Weights maps vertex IDs to non-negative costs.
type Weights map[string]float64

// Uniform returns Weights assigning w to every vertex of g.
func Uniform(g *Graph, w float64) Weights {
	ids := g.Vertices()
	out := make(Weights, len(ids))
	for _, id := range ids {
		out[id] = w
	}

	return out
}

// Sum returns the total weight of ids. Unknown IDs contribute 0.
// Summation runs in sorted ID order, so equal sets always yield identical floats.
func (w Weights) Sum(ids []string) float64 {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	var total float64
	for _, id := range sorted {
		total += w[id]
	}

	return total
}

// Validate checks that every vertex of g carries a finite, non-negative weight.
// The first offending vertex in Vertices() order is reported.
func (w Weights) Validate(g *Graph) error {
	for _, id := range g.Vertices() {
		x, ok := w[id]
		if !ok {
			return fmt.Errorf("vertex %q: %w", id, ErrMissingWeight)
		}
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("vertex %q weight %g: %w", id, x, ErrNegativeWeight)
		}
	}

	return nil
}

// ValidatePositive is Validate plus the requirement that every weight is > 0.
func (w Weights) ValidatePositive(g *Graph) error {
	if err := w.Validate(g); err != nil {
		return err
	}
	for _, id := range g.Vertices() {
		if w[id] == 0 {
			return fmt.Errorf("vertex %q: %w", id, ErrNonPositiveWeight)
		}
	}

	return nil
}
