// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// bundle.go — evaluating several series of one value type together.

package series

import (
	"fmt"

	"github.com/katalvlaran/lvseries/domain"
)

// Bundle evaluates its members side by side: the value at p is the slice of
// every member's value at p, in member order. Its domain is the intersection
// of the member domains.
type Bundle[V any] struct {
	members []Series[V]
	dom     domain.Domain
}

var _ Series[[]int] = (*Bundle[int])(nil)

// NewBundle bundles members.
//
// Returns ErrTypeConstraint for no member, and domain.ErrUnsupportedOperation
// when the member domains cannot be intersected.
func NewBundle[V any](members ...Series[V]) (*Bundle[V], error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: bundle needs at least one member", ErrTypeConstraint)
	}

	dom := members[0].Domain()
	for _, m := range members[1:] {
		var err error
		if dom, err = dom.Intersection(m.Domain()); err != nil {
			return nil, err
		}
	}

	ms := make([]Series[V], len(members))
	copy(ms, members)

	return &Bundle[V]{members: ms, dom: dom}, nil
}

// Len returns the number of members.
func (b *Bundle[V]) Len() int { return len(b.members) }

// Domain returns the intersection of the member domains.
func (b *Bundle[V]) Domain() domain.Domain { return b.dom }

// At returns every member's value at p.
func (b *Bundle[V]) At(p float64) ([]V, error) { return evaluate[[]V](b, p) }

func (b *Bundle[V]) valueAt(p float64) []V {
	out := make([]V, len(b.members))
	for k, m := range b.members {
		out[k] = m.valueAt(p)
	}

	return out
}

// DiscreteBundle is a Bundle of discrete series that can be materialized
// into one discrete series of tuples.
type DiscreteBundle[V any] struct {
	*Bundle[V]
	discretes []*Discrete[V]
}

// NewDiscreteBundle bundles discrete members.
//
// Returns ErrTypeMismatch when a member is not a *Discrete[V], and the
// errors of NewBundle.
func NewDiscreteBundle[V any](members ...Series[V]) (*DiscreteBundle[V], error) {
	ds := make([]*Discrete[V], len(members))
	for k, m := range members {
		d, ok := m.(*Discrete[V])
		if !ok {
			return nil, fmt.Errorf("%w: member %d is %T, want a discrete series", ErrTypeMismatch, k, m)
		}
		ds[k] = d
	}

	b, err := NewBundle(members...)
	if err != nil {
		return nil, err
	}

	return &DiscreteBundle[V]{Bundle: b, discretes: ds}, nil
}

// Compose materializes the bundle: breakpoints are the union of the member
// breakpoints within the bundle domain, values are the member tuples, and
// consecutive identical tuples are collapsed.
//
// Complexity: O(k · B) tuple evaluations for k members and B merged breakpoints.
func (b *DiscreteBundle[V]) Compose() *Discrete[[]V] {
	var candidates []float64
	for _, d := range b.discretes {
		candidates = mergeBreakpoints(candidates, d.breakpoints())
	}

	return materialize(b.dom, candidates, b.valueAt)
}
