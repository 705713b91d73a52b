// SPDX-License-Identifier: MIT
// Package: lvfvs/fvs
//
// distribution.go — vertex selection strategies for the elimination sampler.

package fvs

import (
	"fmt"

	"github.com/katalvlaran/lvfvs/core"
)

// Distribution maps a reduced graph and the original weights to selection
// probabilities aligned with g.Vertices(). Entries must be non-negative and,
// whenever g has an edge, sum to 1.
type Distribution interface {
	Probabilities(g *core.Graph, w core.Weights) ([]float64, error)
}

// WeightValidator is implemented by distributions with stricter weight
// requirements than core.Weights.Validate. Sample, Search and the estimators
// call it once before any trial.
type WeightValidator interface {
	ValidateWeights(g *core.Graph, w core.Weights) error
}

// Distribution names accepted by DistributionByName.
const (
	DegreeName           = "degree"
	DegreeOverWeightName = "degree-weight"
)

// DegreeProportional selects v with probability deg(v) / Σ deg.
type DegreeProportional struct{}

// DegreeWeightProportional selects v with probability
// (deg(v)/w(v)) / Σ_u deg(u)/w(u). Weights must be strictly positive.
type DegreeWeightProportional struct{}

var (
	// Degree is the degree-proportional strategy.
	Degree Distribution = DegreeProportional{}

	// DegreeOverWeight is the degree/weight-proportional strategy.
	DegreeOverWeight Distribution = DegreeWeightProportional{}
)

// Name returns DegreeName.
func (DegreeProportional) Name() string { return DegreeName }

// Probabilities returns all zeros when g has no edges.
func (DegreeProportional) Probabilities(g *core.Graph, _ core.Weights) ([]float64, error) {
	ids := g.Vertices()
	deg := g.Degrees()
	return normalize(ids, func(id string) float64 { return float64(deg[id]) }), nil
}

// Name returns DegreeOverWeightName.
func (DegreeWeightProportional) Name() string { return DegreeOverWeightName }

// ValidateWeights requires every vertex of g to carry a positive weight.
func (DegreeWeightProportional) ValidateWeights(g *core.Graph, w core.Weights) error {
	if err := w.ValidatePositive(g); err != nil {
		return fmt.Errorf("%s: %w: %w", DegreeOverWeightName, ErrNonPositiveWeight, err)
	}

	return nil
}

// Probabilities fails on a missing or non-positive weight of a current vertex.
func (d DegreeWeightProportional) Probabilities(g *core.Graph, w core.Weights) ([]float64, error) {
	if err := d.ValidateWeights(g, w); err != nil {
		return nil, err
	}
	ids := g.Vertices()
	deg := g.Degrees()

	return normalize(ids, func(id string) float64 { return float64(deg[id]) / w[id] }), nil
}

// normalize scales score over ids to sum 1; an all-zero score stays all zero.
func normalize(ids []string, score func(string) float64) []float64 {
	probs := make([]float64, len(ids))
	var total float64
	for i, id := range ids {
		probs[i] = score(id)
		total += probs[i]
	}
	if total == 0 {
		return probs
	}
	for i := range probs {
		probs[i] /= total
	}

	return probs
}

// DistributionByName resolves DegreeName and DegreeOverWeightName.
func DistributionByName(name string) (Distribution, error) {
	switch name {
	case DegreeName:
		return Degree, nil
	case DegreeOverWeightName:
		return DegreeOverWeight, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownDistribution)
	}
}

// distributionName labels metrics; strategies without a Name are "custom".
func distributionName(d Distribution) string {
	if n, ok := d.(interface{ Name() string }); ok {
		return n.Name()
	}

	return "custom"
}

// draw returns the index of the first positive entry whose cumulative sum
// reaches u, or the last positive entry when rounding leaves the sum short.
// It returns -1 when no entry is positive.
func draw(probs []float64, u float64) int {
	last := -1
	var cum float64
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = i
		cum += p
		if cum >= u {
			return i
		}
	}

	return last
}
