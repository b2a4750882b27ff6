// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// modulo.go — periodic extension of a finite series over the real line.

package series

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvseries/domain"
	"github.com/katalvlaran/lvseries/interval"
)

// Modulo repeats a series with a bounded domain over the whole real line.
// A query x is folded into [start, start+period) with floored modular
// arithmetic, where start and period are the span of the wrapped domain.
type Modulo[V any] struct {
	inner  Series[V]
	span   interval.Interval
	start  float64
	period float64
}

var _ Series[int] = (*Modulo[int])(nil)

// NewModulo wraps s; the period is the length of the span of s.Domain().
//
// Returns ErrInvalidPeriod when that length is zero (empty or single-point
// domain) or infinite (unbounded domain), and when the domain has gaps
// (a point set, or a patchwork that does not cover its span).
func NewModulo[V any](s Series[V]) (*Modulo[V], error) {
	span := s.Domain().Span()
	period := span.Length()
	if period == 0 || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: domain %s has period %v", ErrInvalidPeriod, s.Domain(), period)
	}
	if !s.Domain().Covers(domain.FromInterval(span)) {
		return nil, fmt.Errorf("%w: domain %s has gaps within %s", ErrInvalidPeriod, s.Domain(), span)
	}

	return &Modulo[V]{inner: s, span: span, start: span.Start(), period: period}, nil
}

// Period returns the wrapping period.
func (m *Modulo[V]) Period() float64 { return m.period }

// Domain is always the real line.
func (m *Modulo[V]) Domain() domain.Domain { return domain.RealLine() }

// At evaluates the wrapped series at the folded point.
//
// When both ends of the wrapped span are open, points congruent to them have
// no value and yield *NotInDomainError.
func (m *Modulo[V]) At(p float64) (V, error) {
	if !math.IsNaN(p) && !math.IsInf(p, 0) && !m.span.Contains(m.fold(p)) {
		var zero V

		return zero, pointError(p, m.inner.Domain())
	}

	return evaluate[V](m, p)
}

func (m *Modulo[V]) valueAt(p float64) V {
	return m.inner.valueAt(m.fold(p))
}

// fold maps p into [start, start+period). The right boundary, and any
// rounding that lands on it, maps to start; when start itself is open and
// the stop is closed, the boundary maps to the stop instead.
func (m *Modulo[V]) fold(p float64) float64 {
	off := math.Mod(p-m.start, m.period)
	if off < 0 {
		off += m.period
	}
	if off >= m.period {
		off = 0
	}
	if off == 0 && !m.span.LeftClosed() && m.span.RightClosed() {
		return m.span.Stop()
	}

	return m.start + off
}
