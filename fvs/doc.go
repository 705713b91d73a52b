// Package fvs approximates minimum-weight Feedback Vertex Sets of undirected,
// vertex-weighted graphs.
//
// What:
//
//   - Reduce: shrink a graph to a "branchy" multigraph plus a forced partial
//     solution (sink deletion, two-cycle resolution, degree-2 chain contraction).
//   - Sample: one randomized elimination trial (reduce, draw a vertex from a
//     Distribution, remove it, repeat).
//   - Search: the Weighted Randomized Approximation (WRA) loop, repeating trials
//     while the trial count is below min(maxTrials, scale·6^w(incumbent)).
//   - Optimal / MinimumFeasibleSize: exhaustive ground-truth solvers.
//   - IsFeasible: the single feasibility check used everywhere.
//   - TrialsToTarget / EstimateTrials: iteration-complexity measurement.
//
// Why:
//
//   - The randomized scheme of Becker, Bar-Yehuda and Geiger finds an optimal
//     FVS with probability at least 6^-w per trial on branchy graphs; these
//     routines let experiments compare it against brute-force optima.
//
// Determinism:
//
//   - Every randomized call draws from the RNG given by WithSeed / WithRand
//     (default seed 1). Search and EstimateTrials derive one stream per trial or
//     sample, so results do not depend on WithWorkers.
//
// Contracts:
//
//   - Caller graphs are never mutated; work happens on multigraph clones.
//   - Weights are validated at call time (ErrInvalidWeight, ErrNonPositiveWeight).
//   - Solutions list vertex IDs sorted ascending.
//
// Complexity:
//
//   - Reduce:    O(V · (V + E) log V) worst case (restart after every rewrite).
//   - Sample:    O(V) reductions.
//   - Optimal:   O(2^V · (V + E)).
package fvs
