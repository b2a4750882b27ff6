// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// single.go — a domain made of one non-empty interval.

package domain

import "github.com/katalvlaran/lvseries/interval"

// Single is a contiguous domain backed by one non-empty interval.
// Build it with FromInterval, RealLine or Parse.
type Single struct {
	iv interval.Interval
}

var _ Domain = Single{}

func (Single) sealed() {}

// Interval returns the backing interval.
func (s Single) Interval() interval.Interval { return s.iv }

// Contains reports whether p lies in the interval.
func (s Single) Contains(p float64) bool { return s.iv.Contains(p) }

// Covers reports whether o is a subset of the interval.
func (s Single) Covers(o Domain) bool {
	switch x := o.(type) {
	case Empty:
		return true
	case Single:
		return s.iv.ContainsInterval(x.iv)
	case PointSet:
		return x.within(s)
	case Patchwork:
		for _, m := range x.members {
			if !s.Covers(m) {
				return false
			}
		}

		return true
	}

	return false
}

// Intersection returns s ∩ o (see the package documentation for the rules).
func (s Single) Intersection(o Domain) (Domain, error) { return intersect(s, o) }

// Union returns s + o.
func (s Single) Union(o Domain) Domain { return unite(s, o) }

// Translate shifts the interval by x.
func (s Single) Translate(x float64) Domain { return Single{iv: s.iv.Translate(x)} }

// Span returns the backing interval.
func (s Single) Span() interval.Interval { return s.iv }

// StartsAt returns the interval start, which may be -inf.
func (s Single) StartsAt() float64 { return s.iv.Start() }

// IsEmpty reports false for every Single built by this package.
func (s Single) IsEmpty() bool { return s.iv.IsEmpty() }

// Equal reports whether o is a Single over an equal interval.
// A zero Single equals every empty domain.
func (s Single) Equal(o Domain) bool {
	if o == nil {
		return false
	}
	if s.IsEmpty() || o.IsEmpty() {
		return s.IsEmpty() && o.IsEmpty()
	}
	x, ok := o.(Single)

	return ok && s.iv.Equal(x.iv)
}

// Hash returns the interval hash.
func (s Single) Hash() uint64 { return s.iv.Hash() }

func (s Single) String() string { return s.iv.String() }
