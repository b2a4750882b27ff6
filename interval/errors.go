// SPDX-License-Identifier: MIT
// Package: lvseries/interval
//
// errors.go — sentinel errors for the interval package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offending notation, bounds) is attached with %w at the call site.

package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds indicates a malformed interval: bad notation, start > stop,
// a NaN bound, or a closed end on an infinite bound.
// Usage: if errors.Is(err, ErrInvalidBounds) { /* reject user input */ }.
var ErrInvalidBounds = errors.New("interval: invalid bounds")

// boundsErrorf wraps ErrInvalidBounds with a formatted reason.
func boundsErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidBounds, fmt.Sprintf(format, args...))
}
