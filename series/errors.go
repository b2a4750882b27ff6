// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// errors.go — sentinel errors and the typed out-of-domain error.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX).
//   • Out-of-domain failures are *NotInDomainError values; errors.As exposes
//     the offending point or sub-domain and the domain it was checked against.
//   • Nothing in this package panics on user input, except the Must* helpers.

package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvseries/domain"
)

// ErrNotInDomain indicates an evaluation, slice or discretization outside the
// domain of a series. The concrete error is *NotInDomainError.
var ErrNotInDomain = errors.New("series: not in domain")

// ErrTypeConstraint indicates an input of the wrong kind, e.g. interpolating a
// series that is not discrete, or a nil function.
var ErrTypeConstraint = errors.New("series: type constraint violated")

// ErrTypeMismatch indicates a non-discrete member passed to a discrete bundle.
var ErrTypeMismatch = errors.New("series: type mismatch")

// ErrInvalidPeriod indicates a zero or infinite period for modulo wrapping.
var ErrInvalidPeriod = errors.New("series: invalid period")

// ErrInvalidBreakpoints indicates unusable discrete data: NaN or infinite
// breakpoints, duplicates, or a domain starting before the first breakpoint.
var ErrInvalidBreakpoints = errors.New("series: invalid breakpoints")

// NotInDomainError reports a point (or a sub-domain) outside Domain.
type NotInDomainError struct {
	Point  float64       // offending point; NaN when Subset is set
	Subset domain.Domain // offending sub-domain, nil for point queries
	Domain domain.Domain // domain the request was checked against
}

// Error implements error.
func (e *NotInDomainError) Error() string {
	if e.Subset != nil {
		return fmt.Sprintf("series: %s is not within domain %s", e.Subset, e.Domain)
	}

	return fmt.Sprintf("series: point %v is not in domain %s", e.Point, e.Domain)
}

// Is makes errors.Is(err, ErrNotInDomain) succeed.
func (e *NotInDomainError) Is(target error) bool {
	return target == ErrNotInDomain
}

// errNilFunc rejects nil rules passed to constructors and combinators.
var errNilFunc = fmt.Errorf("%w: nil function", ErrTypeConstraint)

func pointError(p float64, d domain.Domain) error {
	return &NotInDomainError{Point: p, Domain: d}
}

func subsetError(sub, d domain.Domain) error {
	return &NotInDomainError{Point: math.NaN(), Subset: sub, Domain: d}
}

func breakpointsErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidBreakpoints, fmt.Sprintf(format, args...))
}
