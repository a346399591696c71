// SPDX-License-Identifier: MIT

package montecarlo

import "errors"

// ErrInvalidArgument indicates that n or trials is smaller than 1.
var ErrInvalidArgument = errors.New("montecarlo: n and trials must be >= 1")

const (
	methodNew      = "New"
	methodSummary  = "Summary"
	methodRunTrial = "runTrial"
)
