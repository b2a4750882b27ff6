// SPDX-License-Identifier: MIT
// Package: lvseries/timeaxis
//
// series.go — time-indexed views over float series.

package timeaxis

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvseries/domain"
	"github.com/katalvlaran/lvseries/interval"
	"github.com/katalvlaran/lvseries/series"
)

// Series evaluates an inner float-indexed series at instants of an Axis.
type Series[V any] struct {
	inner series.Series[V]
	axis  Axis
}

// Over puts s on axis a.
func Over[V any](s series.Series[V], a Axis) *Series[V] {
	return &Series[V]{inner: s, axis: a}
}

// Inner returns the float-indexed series.
func (s *Series[V]) Inner() series.Series[V] { return s.inner }

// Axis returns the axis the series is indexed by.
func (s *Series[V]) Axis() Axis { return s.axis }

// Domain returns the domain of the inner series, in axis positions.
func (s *Series[V]) Domain() domain.Domain { return s.inner.Domain() }

// At evaluates the series at t.
//
// Returns *series.NotInDomainError when t falls outside the domain.
func (s *Series[V]) At(t time.Time) (V, error) {
	return s.inner.At(s.axis.ToFloat(t))
}

// AtAny evaluates the series at anything Axis.Coerce accepts.
func (s *Series[V]) AtAny(v any) (V, error) {
	p, err := s.axis.Coerce(v)
	if err != nil {
		var zero V

		return zero, err
	}

	return s.inner.At(p)
}

// Slice restricts the series to the half-open range <from;to). A zero from or
// to leaves that side unbounded.
//
// Returns ErrBadInstant when to precedes from, and *series.NotInDomainError
// when the range is not within the domain.
func (s *Series[V]) Slice(from, to time.Time) (*Series[V], error) {
	lo, hi := math.Inf(-1), math.Inf(1)
	if !from.IsZero() {
		lo = s.axis.ToFloat(from)
	}
	if !to.IsZero() {
		hi = s.axis.ToFloat(to)
	}

	iv, err := interval.New(lo, hi, !math.IsInf(lo, 0), false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInstant, err)
	}

	inner, err := series.Slice(s.inner, iv)
	if err != nil {
		return nil, err
	}

	return Over(inner, s.axis), nil
}

// Sample discretizes the series at the given instants; the result is indexed
// by axis positions and spans the first to the last instant.
//
// Returns *series.NotInDomainError when that span is not within the domain.
func (s *Series[V]) Sample(ts ...time.Time) (*series.Discrete[V], error) {
	ps := make([]float64, len(ts))
	for i, t := range ts {
		ps[i] = s.axis.ToFloat(t)
	}

	return series.Discretize(s.inner, ps)
}

// Join evaluates fn(t, a(t), b(t)) on the instants both series cover. The
// result lives on the axis of a; b is shifted onto it.
//
// Returns ErrBadUnit when the two axes use different units, and
// domain.ErrUnsupportedOperation when the domains cannot be intersected.
func Join[A, B, R any](a *Series[A], b *Series[B], fn func(t time.Time, x A, y B) R) (*Series[R], error) {
	if a.axis.unit != b.axis.unit {
		return nil, fmt.Errorf("%w: cannot join %v and %v axes", ErrBadUnit, a.axis.unit, b.axis.unit)
	}

	// b at position q sits at instant b.epoch + q*unit, i.e. at q + shift on a.
	shift := a.axis.ToFloat(b.axis.epoch)
	bb := b.inner
	if shift != 0 {
		bb = series.Translate(b.inner, shift)
	}

	var g func(p float64, x A, y B) R
	if fn != nil {
		ax := a.axis
		g = func(p float64, x A, y B) R { return fn(ax.ToTime(p), x, y) }
	}

	j, err := series.Join(a.inner, bb, g)
	if err != nil {
		return nil, err
	}

	return Over(j, a.axis), nil
}
