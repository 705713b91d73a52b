package fvs

import (
	"sort"

	"github.com/katalvlaran/lvfvs/core"
)

// Solution is a candidate feedback vertex set.
type Solution struct {
	// Vertices lists the member IDs sorted ascending. Never nil.
	Vertices []string

	// Weight is the sum of member weights.
	Weight float64
}

// Reduction is the output of Reduce.
type Reduction struct {
	// Graph is the reduced multigraph; empty when the input was acyclic.
	Graph *core.Graph

	// Forced lists vertices that must join any solution of Graph, in the
	// order the rules selected them.
	Forced []string
}

// Result is the outcome of Search.
type Result struct {
	Solution

	// Trials is the number of elimination trials consumed, seed included.
	Trials int

	// Incumbents traces the incumbent weight: the seed, then one entry per
	// replacement. The sequence is non-increasing.
	Incumbents []float64
}

// newSolution copies and sorts ids and attaches their total weight.
func newSolution(ids []string, w core.Weights) Solution {
	vs := make([]string, len(ids))
	copy(vs, ids)
	sort.Strings(vs)

	return Solution{Vertices: vs, Weight: w.Sum(vs)}
}
