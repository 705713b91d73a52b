// Package builder provides "functional-options"-style graph constructors and
// vertex-weight generators for FVS experiments and test fixtures.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and vertex-weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//   - Vertex-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant weight DefaultVertexWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     continuous ∼U[min,max).
//     – IntUniformWeightFn:  integers uniform in [min,max] inclusive.
//   - Topologies (Constructor implementations):
//     – Cycle, Path, Star, Wheel, Complete, Grid, RandomSparse (Erdős–Rényi).
//   - Instances:
//     – BuildInstance:     graph plus a Weights vector drawn from the weight function.
//     – RandomInstance:    G(n,p) with integer weights in [1,maxWeight].
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical
//     graphs and weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors; they never panic at runtime.
package builder
