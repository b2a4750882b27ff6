// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// domain.go — the sealed Domain interface, constructors and the cross-variant
// dispatch of intersection and union.
//
// Contract:
//   • Every Domain is immutable; operations return new values.
//   • Patchwork members are always Single or PointSet (never nested, never empty).
//   • Only Intersection can fail, with ErrUnsupportedOperation.

package domain

import (
	"sort"

	"github.com/katalvlaran/lvseries/interval"
)

// Domain is a subset of the real line on which a series is defined.
type Domain interface {
	// Contains reports whether p belongs to the domain.
	Contains(p float64) bool

	// Covers reports whether o is a subset of the domain.
	Covers(o Domain) bool

	// Intersection returns the common part of the domain and o.
	// Returns ErrUnsupportedOperation for Patchwork ∩ Single and Patchwork ∩ Patchwork.
	Intersection(o Domain) (Domain, error)

	// Union returns the domain extended by o; it is defined for every pair.
	Union(o Domain) Domain

	// Translate shifts the domain by x.
	Translate(x float64) Domain

	// Span returns the smallest interval enclosing the domain.
	Span() interval.Interval

	// StartsAt returns the lowest bound of the domain; 0 for Empty.
	StartsAt() float64

	IsEmpty() bool
	Equal(o Domain) bool
	Hash() uint64
	String() string

	sealed()
}

// NewEmpty returns the empty domain.
func NewEmpty() Empty { return Empty{} }

// FromInterval wraps i in a Single, or returns Empty when i is empty.
func FromInterval(i interval.Interval) Domain {
	if i.IsEmpty() {
		return Empty{}
	}

	return Single{iv: i}
}

// RealLine returns the whole real line (-inf;inf).
func RealLine() Domain {
	return Single{iv: interval.RealLine()}
}

// Less reports whether a starts strictly before b.
func Less(a, b Domain) bool {
	return a.StartsAt() < b.StartsAt()
}

// Compare orders a and b by StartsAt (-1, 0, +1).
func Compare(a, b Domain) int {
	sa, sb := a.StartsAt(), b.StartsAt()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// intersect implements Intersection for every variant pair.
func intersect(a, b Domain) (Domain, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty{}, nil
	}

	if ps, ok := a.(PointSet); ok {
		return ps.filter(b), nil
	}
	if ps, ok := b.(PointSet); ok {
		return ps.filter(a), nil
	}

	sa, aSingle := a.(Single)
	sb, bSingle := b.(Single)
	if aSingle && bSingle {
		return FromInterval(sa.iv.Intersection(sb.iv)), nil
	}

	return nil, unsupportedf("∩", a, b)
}

// unite implements Union for every variant pair.
func unite(a, b Domain) Domain {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}

	_, aPatch := a.(Patchwork)
	_, bPatch := b.(Patchwork)
	if aPatch || bPatch {
		return NewPatchwork(a, b)
	}

	switch x := a.(type) {
	case Single:
		if y, ok := b.(Single); ok {
			if u, ok := x.iv.Union(y.iv); ok {
				return Single{iv: u}
			}
		}
	case PointSet:
		if y, ok := b.(PointSet); ok {
			return NewPointSet(append(x.Points(), y.points...)...)
		}
	}

	return NewPatchwork(a, b)
}

// sortByStart orders members by StartsAt, keeping the input order on ties.
func sortByStart(members []Domain) {
	sort.SliceStable(members, func(i, j int) bool {
		return Less(members[i], members[j])
	})
}

// sortIntervals orders intervals by start, keeping the input order on ties.
func sortIntervals(ivs []interval.Interval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		return ivs[i].Compare(ivs[j]) < 0
	})
}
