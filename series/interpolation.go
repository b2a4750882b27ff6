// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// interpolation.go — piecewise interpolation between discrete breakpoints.
//
// Evaluation of x:
//   • x equal to the first breakpoint, or a single breakpoint: step lookup.
//   • x past the last breakpoint: the last value, never extrapolated.
//   • otherwise interpolate within the bracketing pair t0 ≤ x ≤ t1, found by
//     binary search: O(log n).

package series

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"

	"github.com/katalvlaran/lvseries/domain"
)

// Interpolator computes the value at t between (t0, v0) and (t1, v1), t0 < t1.
type Interpolator[V any] func(t0 float64, v0 V, t1 float64, v1 V, t float64) V

// LinearInterpolation interpolates between the breakpoints of a discrete
// series, over the same domain.
type LinearInterpolation[V any] struct {
	data   *Discrete[V]
	interp Interpolator[V]
}

var _ Series[float64] = (*LinearInterpolation[float64])(nil)

// Interpolate builds a linear interpolation of a discrete numeric series
// using ScalarLinear.
//
// Returns ErrTypeConstraint when s is not discrete.
func Interpolate[V Number](s Series[V]) (*LinearInterpolation[V], error) {
	return InterpolateWith(s, ScalarLinear[V])
}

// InterpolateWith builds an interpolation of a discrete series with a custom
// rule, for value types without arithmetic (see AnyLinear).
// An existing interpolation is re-interpolated over its breakpoints.
//
// Returns ErrTypeConstraint when s is not discrete or fn is nil.
func InterpolateWith[V any](s Series[V], fn Interpolator[V]) (*LinearInterpolation[V], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil interpolator", ErrTypeConstraint)
	}

	switch x := s.(type) {
	case *Discrete[V]:
		return &LinearInterpolation[V]{data: x, interp: fn}, nil
	case *LinearInterpolation[V]:
		return &LinearInterpolation[V]{data: x.data, interp: fn}, nil
	}

	return nil, fmt.Errorf("%w: interpolation needs a discrete series, got %T", ErrTypeConstraint, s)
}

// ScalarLinear is the default interpolator: v0 + (t-t0)·(v1-v0)/(t1-t0),
// computed in float64 and converted back to V (integers truncate).
func ScalarLinear[V Number](t0 float64, v0 V, t1 float64, v1 V, t float64) V {
	if t1 == t0 {
		return v0
	}
	f0, f1 := float64(v0), float64(v1)

	return V(f0 + (t-t0)*(f1-f0)/(t1-t0))
}

// AnyLinear interpolates loosely typed values: both ends are converted with
// spf13/cast and the result is a float64. When either end is not numeric the
// left value is returned unchanged, as a step would.
func AnyLinear(t0 float64, v0 any, t1 float64, v1 any, t float64) any {
	f0, err := cast.ToFloat64E(v0)
	if err != nil {
		return v0
	}
	f1, err := cast.ToFloat64E(v1)
	if err != nil {
		return v0
	}

	return ScalarLinear(t0, f0, t1, f1, t)
}

// Domain returns the domain of the interpolated data.
func (s *LinearInterpolation[V]) Domain() domain.Domain { return s.data.Domain() }

// At returns the interpolated value at p.
func (s *LinearInterpolation[V]) At(p float64) (V, error) { return evaluate[V](s, p) }

func (s *LinearInterpolation[V]) valueAt(x float64) V {
	pts := s.data.points
	n := len(pts)
	if n <= 1 || x == pts[0].At {
		return s.data.valueAt(x)
	}
	if x >= pts[n-1].At {
		return pts[n-1].Value
	}

	k := sort.Search(n, func(i int) bool { return pts[i].At >= x })
	switch {
	case k == 0:
		return pts[0].Value
	case pts[k].At == x:
		return pts[k].Value
	}
	lo, hi := pts[k-1], pts[k]

	return s.interp(lo.At, lo.Value, hi.At, hi.Value, x)
}

// Discrete returns the underlying discrete series.
func (s *LinearInterpolation[V]) Discrete() *Discrete[V] { return s.data }

func (s *LinearInterpolation[V]) breakpoints() []float64 { return s.data.breakpoints() }
