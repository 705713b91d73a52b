package fvs

import (
	"fmt"

	"github.com/katalvlaran/lvfvs/core"
	"github.com/katalvlaran/lvfvs/dfs"
)

// IsFeasible reports whether removing set from g leaves no cycle.
// IDs not in g are ignored; a nil graph is trivially acyclic. g is not mutated.
//
// Complexity: O(V + E).
func IsFeasible(g *core.Graph, set []string) bool {
	if g == nil {
		return true
	}

	return !dfs.HasCycle(g.Without(set))
}

// validateWeights checks the general weight contract and, when dist declares
// one, its stricter precondition.
func validateWeights(method string, g *core.Graph, w core.Weights, dist Distribution) error {
	if dist == nil {
		return fmt.Errorf("%s: nil distribution: %w", method, ErrUnknownDistribution)
	}
	if err := w.Validate(g); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidWeight, err)
	}
	if v, ok := dist.(WeightValidator); ok {
		if err := v.ValidateWeights(g, w); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
