// SPDX-License-Identifier: MIT
// Package: montecarlo
//
// config.go - resolved run configuration and defaults.
//
// Defaults:
//   • rng          = time-seeded math/rand source
//   • level, z     = 0.95, 1.96
//   • newUnionFind = unionfind.DefaultFactory
//   • logger       = discards everything

package montecarlo

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/percolation/unionfind"
)

const (
	defaultLevel = 0.95
	defaultZ     = 1.96
)

type config struct {
	rng          *rand.Rand
	level        float64
	z            float64
	newUnionFind unionfind.Factory
	logger       *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		level:        defaultLevel,
		z:            defaultZ,
		newUnionFind: unionfind.DefaultFactory,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

// zScore returns the standard normal quantile bounding a two-sided interval
// of the given level, e.g. 0.95 → ≈1.959964.
func zScore(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}
