// SPDX-License-Identifier: MIT

// Package montecarlo estimates the percolation threshold of an n×n grid by
// repeated randomized trials.
//
// Each trial builds a fresh percolation.Percolation, draws (row, col)
// uniformly from [1, n]², opens the site if it is still blocked, and stops as
// soon as the grid percolates. The number of sites opened is recorded; the
// threshold estimate of the trial is that count divided by n².
//
// Draws that hit an already open site are discarded (rejection sampling), so
// the sequence of distinct opened sites stays uniform.
//
// Statistics are pure functions of the recorded counts:
//
//	Mean         = mean(counts) / n²
//	StdDev       = sampleStdDev(counts) / n²      (NaN when trials == 1)
//	ConfidenceLo = Mean − z·StdDev/√trials
//	ConfidenceHi = Mean + z·StdDev/√trials        (z = 1.96 by default)
//
// Options:
//
//   - WithSeed / WithRand: deterministic random source.
//   - WithConfidenceLevel: two-sided level in (0,1); z from the standard normal quantile.
//   - WithUnionFind: disjoint-set factory forwarded to every trial grid.
//   - WithLogger: per-trial debug logging.
//
// Errors:
//
//   - ErrInvalidArgument: n < 1 or trials < 1.
//
// Trials run sequentially on the calling goroutine.
package montecarlo
