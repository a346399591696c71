// SPDX-License-Identifier: MIT

package montecarlo

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes the spread of per-trial threshold estimates.
type Summary struct {
	Min    float64
	P25    float64 // nearest-rank 25th percentile
	Median float64
	P75    float64 // nearest-rank 75th percentile
	Max    float64
}

// Summary computes order statistics over Thresholds().
// Complexity: O(trials · log trials).
func (s *Stats) Summary() (Summary, error) {
	data := stats.Float64Data(s.Thresholds())

	var (
		out Summary
		err error
	)
	if out.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("%s: min: %w", methodSummary, err)
	}
	if out.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("%s: max: %w", methodSummary, err)
	}
	if out.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("%s: median: %w", methodSummary, err)
	}
	if out.P25, err = data.PercentileNearestRank(25); err != nil {
		return Summary{}, fmt.Errorf("%s: p25: %w", methodSummary, err)
	}
	if out.P75, err = data.PercentileNearestRank(75); err != nil {
		return Summary{}, fmt.Errorf("%s: p75: %w", methodSummary, err)
	}

	return out, nil
}
