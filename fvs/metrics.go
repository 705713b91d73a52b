package fvs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// trialsTotal counts elimination trials by distribution name.
	trialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvfvs_trials_total",
		Help: "Total elimination trials by distribution",
	}, []string{"distribution"})

	// invariantViolationsTotal counts trials whose step budget ran out.
	invariantViolationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvfvs_invariant_violations_total",
		Help: "Total elimination trials that ended without a feasible set",
	})

	// incumbentReplacementsTotal counts Search incumbent replacements.
	incumbentReplacementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvfvs_incumbent_replacements_total",
		Help: "Total incumbent replacements across Search runs",
	})

	// exactSubsetsVerifiedTotal counts feasibility checks run by the exact solvers.
	exactSubsetsVerifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvfvs_exact_subsets_verified_total",
		Help: "Total subsets checked for feasibility by the exact solvers",
	})
)
