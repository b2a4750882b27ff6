// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// discrete.go — right-continuous step functions over sorted breakpoints.
//
// Contract:
//   • Breakpoints are finite and strictly increasing.
//   • The domain never starts before the first breakpoint.
//   • At(x) returns the value of the greatest breakpoint ≤ x: O(log n).

package series

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/lvseries/domain"
	"github.com/katalvlaran/lvseries/interval"
)

// Discrete is a step function: its value is constant from one breakpoint up
// to, but not including, the next.
type Discrete[V any] struct {
	points []Point[V]
	dom    domain.Domain
}

var _ Series[int] = (*Discrete[int])(nil)

// NewDiscrete builds a step function whose domain is the closed span from the
// first to the last breakpoint (Empty when points is empty).
// Points may be given in any order; they are sorted by At.
//
// Returns ErrInvalidBreakpoints for NaN, infinite or duplicate breakpoints.
//
// Complexity: O(n log n).
func NewDiscrete[V any](points []Point[V]) (*Discrete[V], error) {
	pts, err := sortedPoints(points)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return &Discrete[V]{dom: domain.NewEmpty()}, nil
	}

	iv, err := interval.Between(pts[0].At, pts[len(pts)-1].At)
	if err != nil {
		return nil, breakpointsErrorf("%v", err)
	}

	return &Discrete[V]{points: pts, dom: domain.FromInterval(iv)}, nil
}

// NewDiscreteOn builds a step function over an explicit domain; dom is
// anything domain.Coerce accepts. The domain may extend past the last
// breakpoint, which then holds until the domain ends.
//
// Returns ErrInvalidBreakpoints when the breakpoints are invalid (see
// NewDiscrete), when a non-empty domain has no breakpoint, or when the domain
// starts before the first breakpoint.
func NewDiscreteOn[V any](points []Point[V], dom any) (*Discrete[V], error) {
	d, err := domain.Coerce(dom)
	if err != nil {
		return nil, fmt.Errorf("series: discrete domain: %w", err)
	}

	pts, err := sortedPoints(points)
	if err != nil {
		return nil, err
	}

	if !d.IsEmpty() {
		if len(pts) == 0 {
			return nil, breakpointsErrorf("domain %s has no breakpoint", d)
		}
		if d.StartsAt() < pts[0].At {
			return nil, breakpointsErrorf("domain %s starts before the first breakpoint %v", d, pts[0].At)
		}
	}

	return &Discrete[V]{points: pts, dom: d}, nil
}

// MustDiscrete is like NewDiscreteOn but panics on error; a nil dom selects
// the closed span of the points as NewDiscrete does.
// Intended for fixtures and tests.
func MustDiscrete[V any](points []Point[V], dom any) *Discrete[V] {
	var (
		d   *Discrete[V]
		err error
	)
	if dom == nil {
		d, err = NewDiscrete(points)
	} else {
		d, err = NewDiscreteOn(points, dom)
	}
	if err != nil {
		panic(err)
	}

	return d
}

// Domain returns the domain of the series; Empty for the zero value.
func (d *Discrete[V]) Domain() domain.Domain {
	if d.dom == nil {
		return domain.NewEmpty()
	}

	return d.dom
}

// At returns the value of the greatest breakpoint ≤ p.
func (d *Discrete[V]) At(p float64) (V, error) { return evaluate[V](d, p) }

// valueAt is the step lookup. Points before the first breakpoint take the
// first value; construction keeps such points out of the domain.
func (d *Discrete[V]) valueAt(p float64) V {
	if len(d.points) == 0 {
		var zero V

		return zero
	}

	k := sort.Search(len(d.points), func(i int) bool { return d.points[i].At > p })
	if k == 0 {
		return d.points[0].Value
	}

	return d.points[k-1].Value
}

// Points returns a copy of the breakpoints in increasing order.
func (d *Discrete[V]) Points() []Point[V] {
	out := make([]Point[V], len(d.points))
	copy(out, d.points)

	return out
}

// Len returns the number of breakpoints.
func (d *Discrete[V]) Len() int { return len(d.points) }

// Compute collapses runs of consecutive equal values, keeping the first
// breakpoint of each run. The domain is unchanged.
//
// Complexity: O(n) value comparisons.
func (d *Discrete[V]) Compute() *Discrete[V] {
	out := make([]Point[V], 0, len(d.points))
	for _, pt := range d.points {
		if n := len(out); n > 0 && valuesEqual(out[n-1].Value, pt.Value) {
			continue
		}
		out = append(out, pt)
	}

	return &Discrete[V]{points: out, dom: d.Domain()}
}

// Translate returns an eager copy shifted right by x: the result at p equals
// d at p - x.
func (d *Discrete[V]) Translate(x float64) *Discrete[V] {
	out := make([]Point[V], len(d.points))
	for k, pt := range d.points {
		out[k] = Point[V]{At: pt.At + x, Value: pt.Value}
	}

	return &Discrete[V]{points: out, dom: d.Domain().Translate(x)}
}

// Apply returns an eager copy with every value replaced by fn(at, value).
// See ApplyDiscrete to change the value type.
func (d *Discrete[V]) Apply(fn func(p float64, v V) V) *Discrete[V] {
	return ApplyDiscrete(d, fn)
}

// ApplyDiscrete maps every breakpoint value through fn, keeping breakpoints
// and domain.
func ApplyDiscrete[V, R any](d *Discrete[V], fn func(p float64, v V) R) *Discrete[R] {
	out := make([]Point[R], len(d.points))
	for k, pt := range d.points {
		out[k] = Point[R]{At: pt.At, Value: fn(pt.At, pt.Value)}
	}

	return &Discrete[R]{points: out, dom: d.Domain()}
}

// String renders the domain followed by the breakpoints,
// e.g. "<0;2>: (0, 1) (1, 3) (2, 5)".
func (d *Discrete[V]) String() string {
	var sb strings.Builder
	sb.WriteString(d.Domain().String())
	sb.WriteByte(':')
	for _, pt := range d.points {
		fmt.Fprintf(&sb, " (%v, %v)", pt.At, pt.Value)
	}

	return sb.String()
}

// breakpoints returns the breakpoint positions.
func (d *Discrete[V]) breakpoints() []float64 {
	out := make([]float64, len(d.points))
	for k, pt := range d.points {
		out[k] = pt.At
	}

	return out
}

// sortedPoints validates and stably sorts a copy of points.
func sortedPoints[V any](points []Point[V]) ([]Point[V], error) {
	pts := make([]Point[V], len(points))
	copy(pts, points)
	for _, pt := range pts {
		if math.IsNaN(pt.At) || math.IsInf(pt.At, 0) {
			return nil, breakpointsErrorf("breakpoint %v is not finite", pt.At)
		}
	}

	sort.SliceStable(pts, func(i, j int) bool { return pts[i].At < pts[j].At })
	for k := 1; k < len(pts); k++ {
		if pts[k].At == pts[k-1].At {
			return nil, breakpointsErrorf("duplicate breakpoint %v", pts[k].At)
		}
	}

	return pts, nil
}
