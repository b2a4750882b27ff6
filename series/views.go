// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// views.go — lazy combinators over any series, and discretization.
//
// Contract:
//   • Views hold their parents by reference and never copy data.
//   • A view's domain is computed once when the view is built.
//   • Every query re-evaluates the parents; nothing is memoized.

package series

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvseries/domain"
	"github.com/katalvlaran/lvseries/interval"
)

// applied maps the parent's value through fn.
type applied[V, R any] struct {
	parent Series[V]
	fn     func(p float64, v V) R
}

func (s *applied[V, R]) Domain() domain.Domain { return s.parent.Domain() }
func (s *applied[V, R]) At(p float64) (R, error) { return evaluate[R](s, p) }
func (s *applied[V, R]) valueAt(p float64) R { return s.fn(p, s.parent.valueAt(p)) }

// translated looks the parent up at p - x.
type translated[V any] struct {
	parent Series[V]
	x      float64
	dom    domain.Domain
}

func (s *translated[V]) Domain() domain.Domain { return s.dom }
func (s *translated[V]) At(p float64) (V, error) { return evaluate[V](s, p) }
func (s *translated[V]) valueAt(p float64) V { return s.parent.valueAt(p - s.x) }

// sliced restricts the parent to a sub-domain.
type sliced[V any] struct {
	parent Series[V]
	dom    domain.Domain
}

func (s *sliced[V]) Domain() domain.Domain { return s.dom }
func (s *sliced[V]) At(p float64) (V, error) { return evaluate[V](s, p) }
func (s *sliced[V]) valueAt(p float64) V { return s.parent.valueAt(p) }

// joined combines two parents pointwise.
type joined[A, B, R any] struct {
	a   Series[A]
	b   Series[B]
	fn  func(p float64, x A, y B) R
	dom domain.Domain
}

func (s *joined[A, B, R]) Domain() domain.Domain { return s.dom }
func (s *joined[A, B, R]) At(p float64) (R, error) { return evaluate[R](s, p) }
func (s *joined[A, B, R]) valueAt(p float64) R {
	return s.fn(p, s.a.valueAt(p), s.b.valueAt(p))
}

// Apply returns a view evaluating fn(p, s(p)) on the domain of s.
//
// Returns ErrTypeConstraint when fn is nil.
func Apply[V, R any](s Series[V], fn func(p float64, v V) R) (Series[R], error) {
	if fn == nil {
		return nil, errNilFunc
	}

	return &applied[V, R]{parent: s, fn: fn}, nil
}

// Translate returns a view shifted right by x: the view at p equals s at p - x.
func Translate[V any](s Series[V], x float64) Series[V] {
	return &translated[V]{parent: s, x: x, dom: s.Domain().Translate(x)}
}

// Slice restricts s to sub, given as anything domain.Coerce accepts.
//
// Returns *NotInDomainError when sub is not a subset of the domain of s.
func Slice[V any](s Series[V], sub any) (Series[V], error) {
	d, err := domain.Coerce(sub)
	if err != nil {
		return nil, fmt.Errorf("series: slice: %w", err)
	}
	if !s.Domain().Covers(d) {
		return nil, subsetError(d, s.Domain())
	}

	// sub ⊆ dom, so dom ∩ sub is sub itself.
	return &sliced[V]{parent: s, dom: d}, nil
}

// Join returns a lazy view evaluating fn(p, a(p), b(p)) on a.Domain ∩ b.Domain.
// Use JoinDiscrete to materialize the join of a discrete series.
//
// Returns domain.ErrUnsupportedOperation when the domains cannot be intersected.
func Join[A, B, R any](a Series[A], b Series[B], fn func(p float64, x A, y B) R) (Series[R], error) {
	if fn == nil {
		return nil, errNilFunc
	}

	d, err := a.Domain().Intersection(b.Domain())
	if err != nil {
		return nil, err
	}

	return &joined[A, B, R]{a: a, b: b, fn: fn, dom: d}, nil
}

// Discretize samples s at points into a discrete series whose domain is the
// closed span of the points. Points may come in any order; repeated points
// are sampled once. No points yields an empty series.
//
// Returns *NotInDomainError when the span is not within the domain of s.
func Discretize[V any](s Series[V], points []float64) (*Discrete[V], error) {
	ps := sortedUnique(points)
	if len(ps) == 0 {
		return &Discrete[V]{dom: domain.NewEmpty()}, nil
	}

	iv, err := interval.Between(ps[0], ps[len(ps)-1])
	if err != nil {
		return nil, breakpointsErrorf("%v", err)
	}

	return sample(s, ps, domain.FromInterval(iv))
}

// DiscretizeWithin samples s at points into a discrete series over within,
// given as anything domain.Coerce accepts.
//
// Returns *NotInDomainError when within is not a subset of the domain of s
// or a point lies outside the domain of s, and ErrInvalidBreakpoints when
// within starts before the first point.
func DiscretizeWithin[V any](s Series[V], points []float64, within any) (*Discrete[V], error) {
	d, err := domain.Coerce(within)
	if err != nil {
		return nil, fmt.Errorf("series: discretize: %w", err)
	}

	ps := sortedUnique(points)
	if len(ps) == 0 {
		return &Discrete[V]{dom: domain.NewEmpty()}, nil
	}

	return sample(s, ps, d)
}

func sample[V any](s Series[V], points []float64, d domain.Domain) (*Discrete[V], error) {
	if !s.Domain().Covers(d) {
		return nil, subsetError(d, s.Domain())
	}

	pts := make([]Point[V], len(points))
	for k, p := range points {
		v, err := s.At(p)
		if err != nil {
			return nil, err
		}
		pts[k] = Point[V]{At: p, Value: v}
	}

	return NewDiscreteOn(pts, d)
}

// sortedUnique returns a sorted copy of xs without repeats.
func sortedUnique(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)

	n := 0
	for k, x := range out {
		if k > 0 && x == out[n-1] {
			continue
		}
		out[n] = x
		n++
	}

	return out[:n]
}
