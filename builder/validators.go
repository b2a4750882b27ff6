// Package builder provides validation helpers to enforce
// parameter contracts in the series constructors.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: builder: invalid size/length" otherwise.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodPulse.
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateGrid checks that n samples placed at origin+i*step stay finite and
// strictly increasing, i.e. that the last sample does not overflow and step
// is not swallowed by float rounding at either end.
//
// Complexity: O(1) time and space.
func validateGrid(method string, cfg builderConfig, n int) error {
	last := cfg.origin + float64(n-1)*cfg.step
	if math.IsInf(last, 0) || math.IsNaN(last) {
		return builderErrorf(method, ErrOptionViolation, "sample %d at origin %v step %v is not finite", n-1, cfg.origin, cfg.step)
	}
	if n > 1 && (cfg.origin+cfg.step == cfg.origin || last-cfg.step == last) {
		return builderErrorf(method, ErrOptionViolation, "step %v vanishes at origin %v", cfg.step, cfg.origin)
	}

	return nil
}
