// Package lvfvs approximates minimum-weight Feedback Vertex Sets on small,
// vertex-weighted undirected graphs and measures how many randomized trials
// the approximation needs to reach the exact optimum.
//
// What is inside:
//
//	core/     — thread-safe undirected graph with edge multiplicity + vertex Weights
//	dfs/      — cycle detection and cycle witnesses (parallel edges count as cycles)
//	builder/  — deterministic constructors (Cycle, Wheel, Grid, G(n,p), …) and weight generators
//	fvs/      — reduction, elimination sampler, WRA search, exact solver, trial estimator
//	cmd/lvfvs — experiment driver (solve / estimate)
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
// a unit-weight square: every reduction collapses it to one forced vertex,
// and the exact solver returns {A} with weight 1.
//
//	go run ./cmd/lvfvs solve --n 10 --p 0.5
package lvfvs
