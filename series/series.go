// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// series.go — the sealed Series contract and helpers shared by every variant.
//
// Contract:
//   • Series values are immutable after construction; composite series hold
//     read-only references to their parents.
//   • Domain() is computed once, at construction time.
//   • At checks the domain, then delegates to the unexported evaluation rule.

package series

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvseries/domain"
)

// Series is a value for every point of a domain.
//
// The interface is sealed; the variants are Function, Discrete,
// LinearInterpolation, Modulo, Bundle, DiscreteBundle and the views returned
// by Apply, Translate, Slice and Join.
type Series[V any] interface {
	// Domain returns the set of points the series is defined on.
	Domain() domain.Domain

	// At evaluates the series at p.
	// Returns *NotInDomainError (errors.Is ErrNotInDomain) when p is outside Domain.
	At(p float64) (V, error)

	// valueAt is the unchecked evaluation rule of the variant.
	valueAt(p float64) V
}

// Point is one breakpoint of a discrete series.
type Point[V any] struct {
	At    float64
	Value V
}

// Number is the set of value types the default interpolator accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// EvaluateMany evaluates s at every point, in order.
// The first out-of-domain point aborts the batch; no partial result is returned.
//
// Complexity: O(n · cost(At)).
func EvaluateMany[V any](s Series[V], points []float64) ([]V, error) {
	out := make([]V, len(points))
	for k, p := range points {
		v, err := s.At(p)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}

// evaluate is the shared body of every At method.
func evaluate[V any](s Series[V], p float64) (V, error) {
	if d := s.Domain(); !d.Contains(p) {
		var zero V

		return zero, pointError(p, d)
	}

	return s.valueAt(p), nil
}
