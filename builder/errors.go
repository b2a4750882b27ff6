// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w through builderErrorf.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid length for a sequence dataset
// (n < MinSequenceLen for Pulse/Chirp, days < MinOHLCDays for OHLC).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n/days */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates a resolved option combination that cannot
// produce a series, e.g. a step so small that origin+i*step stops increasing,
// or a breakpoint position that cannot be coerced to a float.
// Meaningless single values (WithStep(0), WithRand(nil)) panic in the option
// constructor instead.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
