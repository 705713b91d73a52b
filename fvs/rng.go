// Package fvs - RNG utilities shared by the randomized operations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Parallel trials each get their own
//     stream from trialRNG; the configured RNG is only read by the caller goroutine.
package fvs

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no seed.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer, so neighbouring stream IDs yield uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamFamily is a set of per-index RNG streams hanging off one parent seed.
// Stream i is the same no matter which goroutine asks for it, or when.
type streamFamily int64

// newStreamFamily consumes one value from base to pick the parent seed.
func newStreamFamily(base *rand.Rand) streamFamily {
	return streamFamily(base.Int63())
}

// stream returns the RNG of index i.
func (f streamFamily) stream(i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(int64(f), uint64(i))))
}
