// SPDX-License-Identifier: MIT

package fvs

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to an operation.
	ErrNilGraph = errors.New("fvs: graph is nil")

	// ErrInvalidWeight indicates a missing, negative, NaN or infinite vertex weight.
	ErrInvalidWeight = errors.New("fvs: invalid vertex weight")

	// ErrNonPositiveWeight indicates a zero weight given to a strategy that divides by weight.
	ErrNonPositiveWeight = errors.New("fvs: strategy requires strictly positive weights")

	// ErrBadStepBudget indicates maxSteps < 1.
	ErrBadStepBudget = errors.New("fvs: step budget must be at least 1")

	// ErrBadScale indicates a scale factor that is not a finite positive number.
	ErrBadScale = errors.New("fvs: scale factor must be finite and positive")

	// ErrBadTrialBudget indicates maxTrials < 1.
	ErrBadTrialBudget = errors.New("fvs: trial budget must be at least 1")

	// ErrBadSampleCount indicates samples < 1.
	ErrBadSampleCount = errors.New("fvs: sample count must be at least 1")

	// ErrTargetNotReached is returned by TrialsToTarget when no trial within the
	// budget reached the target weight.
	ErrTargetNotReached = errors.New("fvs: target weight not reached")

	// ErrUnknownDistribution is returned by DistributionByName.
	ErrUnknownDistribution = errors.New("fvs: unknown distribution")

	// ErrDegenerateDistribution indicates a probability vector of the wrong length
	// or without any positive entry on a graph that still has edges.
	ErrDegenerateDistribution = errors.New("fvs: degenerate probability vector")

	// ErrInvariantViolation is matched by *InvariantViolationError.
	ErrInvariantViolation = errors.New("fvs: elimination did not produce a feasible set")
)

// InvariantViolationError reports an elimination trial whose step budget ran
// out before the accumulated set broke every cycle. It signals a budget that is
// too small for the graph, never an infeasible instance.
type InvariantViolationError struct {
	MaxSteps  int      // step budget of the trial
	Remaining int      // vertices left in the working graph
	Partial   []string // accumulated vertices, sorted
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %d steps left %d vertices (partial set of %d)",
		ErrInvariantViolation.Error(), e.MaxSteps, e.Remaining, len(e.Partial))
}

// Is makes errors.Is(err, ErrInvariantViolation) hold.
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}
