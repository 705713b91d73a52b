// SPDX-License-Identifier: MIT

package fvs

import (
	"log/slog"
	"math/rand"
)

// Option configures randomized and exhaustive operations.
// Option constructors panic on meaningless values; operations never do.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	workers int
	logger  *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:     rngFromSeed(0),
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a fresh RNG. Seed 0 maps to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. r must not be shared with other
// goroutines while the operation runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fvs: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWorkers fans independent trials, samples or subset sizes out over n
// goroutines. Results are identical for every n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("fvs: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger routes debug records (incumbent changes, exact-solver progress,
// invariant violations) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fvs: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
