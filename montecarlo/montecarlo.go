// SPDX-License-Identifier: MIT
// Package: montecarlo
//
// montecarlo.go - trial loop and statistics.
//
// Contract:
//   • New runs every trial before returning; Stats is read-only afterwards.
//   • A trial terminates: each site opens at most once and a fully open grid
//     percolates.
//   • Errors from the grid are wrapped with the trial number and returned
//     as-is; they indicate a broken random-source integration, not bad input.

package montecarlo

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/unionfind"
)

// Stats holds the per-trial opened-site counts of a completed run.
// Its methods are safe for concurrent use.
type Stats struct {
	n      int
	counts []int
	level  float64
	z      float64
}

// New runs trials independent simulations on n×n grids.
// Returns ErrInvalidArgument if n < 1 or trials < 1.
// Complexity: O(trials · n² · α(n²)) expected time, O(n²) memory per trial.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n < 1 || trials < 1 {
		return nil, fmt.Errorf("%s: n=%d trials=%d: %w", methodNew, n, trials, ErrInvalidArgument)
	}
	cfg := newConfig(opts)

	s := &Stats{
		n:      n,
		counts: make([]int, trials),
		level:  cfg.level,
		z:      cfg.z,
	}
	for i := 0; i < trials; i++ {
		opened, err := runTrial(n, cfg.rng, cfg.newUnionFind)
		if err != nil {
			return nil, fmt.Errorf("%s: trial %d: %w", methodNew, i, err)
		}
		s.counts[i] = opened
		cfg.logger.Debug("trial complete",
			slog.Int("trial", i),
			slog.Int("n", n),
			slog.Int("opened", opened),
			slog.Float64("threshold", float64(opened)/s.sites()),
		)
	}

	return s, nil
}

// runTrial opens uniformly drawn sites on a fresh grid until it percolates
// and returns the number of sites opened.
func runTrial(n int, rng *rand.Rand, uf unionfind.Factory) (int, error) {
	p, err := percolation.New(n, percolation.WithUnionFind(uf))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodRunTrial, err)
	}
	opened := 0
	for {
		row, col := rng.Intn(n)+1, rng.Intn(n)+1
		open, err := p.IsOpen(row, col)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodRunTrial, err)
		}
		if !open {
			if err = p.Open(row, col); err != nil {
				return 0, fmt.Errorf("%s: %w", methodRunTrial, err)
			}
			opened++
		}
		if p.Percolates() {
			return opened, nil
		}
	}
}

// N returns the grid side length.
func (s *Stats) N() int { return s.n }

// Trials returns the number of completed trials.
func (s *Stats) Trials() int { return len(s.counts) }

// Level returns the confidence level of the interval bounds.
func (s *Stats) Level() float64 { return s.level }

// Z returns the normal quantile used for the interval bounds.
func (s *Stats) Z() float64 { return s.z }

// Counts returns a copy of the opened-site count of every trial, in trial order.
func (s *Stats) Counts() []int {
	out := make([]int, len(s.counts))
	copy(out, s.counts)

	return out
}

// Thresholds returns each trial's opened-site count divided by n².
func (s *Stats) Thresholds() []float64 {
	sites := s.sites()
	out := make([]float64, len(s.counts))
	for i, c := range s.counts {
		out[i] = float64(c) / sites
	}

	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	m, err := stats.Mean(s.countData())
	if err != nil {
		return math.NaN()
	}

	return m / s.sites()
}

// StdDev returns the Bessel-corrected sample standard deviation of the
// percolation threshold. It is NaN when only one trial was run.
func (s *Stats) StdDev() float64 {
	if len(s.counts) < 2 {
		return math.NaN()
	}
	sd, err := stats.StandardDeviationSample(s.countData())
	if err != nil {
		return math.NaN()
	}

	return sd / s.sites()
}

// ConfidenceLo returns the low endpoint of the confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.Mean() - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.Mean() + s.halfWidth()
}

func (s *Stats) halfWidth() float64 {
	return s.z * s.StdDev() / math.Sqrt(float64(len(s.counts)))
}

func (s *Stats) sites() float64 {
	return float64(s.n * s.n)
}

func (s *Stats) countData() stats.Float64Data {
	out := make(stats.Float64Data, len(s.counts))
	for i, c := range s.counts {
		out[i] = float64(c)
	}

	return out
}
