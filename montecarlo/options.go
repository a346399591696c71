// SPDX-License-Identifier: MIT
// Package: montecarlo
//
// options.go - functional options for New.
//
// Option constructors validate their input and panic on meaningless values;
// New itself never panics.

package montecarlo

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/percolation/unionfind"
)

// Option customizes a simulation run.
type Option func(*config)

// WithSeed uses a new *rand.Rand seeded with seed. Use it in tests and
// benchmarks to make runs reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("montecarlo: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithConfidenceLevel sets the two-sided confidence level used by
// ConfidenceLo/ConfidenceHi. Panics unless 0 < level < 1.
func WithConfidenceLevel(level float64) Option {
	if !(level > 0 && level < 1) {
		panic("montecarlo: WithConfidenceLevel(level not in (0,1))")
	}
	return func(c *config) {
		c.level = level
		c.z = zScore(level)
	}
}

// WithUnionFind sets the disjoint-set factory for every trial grid. Panics on nil.
func WithUnionFind(f unionfind.Factory) Option {
	if f == nil {
		panic("montecarlo: WithUnionFind(nil)")
	}
	return func(c *config) {
		c.newUnionFind = f
	}
}

// WithLogger sets the logger that receives one debug record per trial. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("montecarlo: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
