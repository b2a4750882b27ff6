// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// pointset.go — a domain of isolated points.
//
// Contract:
//   • points are finite, strictly increasing, without duplicates.
//   • Contains is a binary search: O(log n).

package domain

import (
	"encoding/binary"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvseries/interval"
)

// PointSet is a finite set of isolated points.
type PointSet struct {
	points []float64
}

var _ Domain = PointSet{}

// NewPointSet builds a point set from arbitrary input order.
// Duplicates are collapsed; NaN and infinite points are dropped, since an
// isolated point at infinity is not representable as a closed bound.
// Returns Empty when no point remains.
//
// Complexity: O(n log n).
func NewPointSet(points ...float64) Domain {
	ps := make([]float64, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return Empty{}
	}

	sort.Float64s(ps)
	out := ps[:1]
	for _, p := range ps[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return PointSet{points: out}
}

func (PointSet) sealed() {}

// Points returns a copy of the sorted points.
func (s PointSet) Points() []float64 {
	out := make([]float64, len(s.points))
	copy(out, s.points)

	return out
}

// Len returns the number of points.
func (s PointSet) Len() int { return len(s.points) }

// Contains reports whether p is one of the points.
func (s PointSet) Contains(p float64) bool {
	k := sort.SearchFloat64s(s.points, p)

	return k < len(s.points) && s.points[k] == p
}

// Covers reports whether o is a subset of the set. Only empty domains,
// point sets and single-point intervals can be covered.
func (s PointSet) Covers(o Domain) bool {
	switch x := o.(type) {
	case Empty:
		return true
	case PointSet:
		return x.within(s)
	case Single:
		return x.iv.Start() == x.iv.Stop() && !x.IsEmpty() && s.Contains(x.iv.Start())
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

// Intersection keeps the points contained in o.
func (s PointSet) Intersection(o Domain) (Domain, error) { return intersect(s, o) }

// Union returns s + o.
func (s PointSet) Union(o Domain) Domain { return unite(s, o) }

// Translate shifts every point by x.
func (s PointSet) Translate(x float64) Domain {
	if x == 0 {
		return s
	}

	out := make([]float64, len(s.points))
	for k, p := range s.points {
		out[k] = p + x
	}

	return NewPointSet(out...)
}

// Span returns the closed interval from the first to the last point.
func (s PointSet) Span() interval.Interval {
	if len(s.points) == 0 {
		return interval.Empty()
	}
	iv, _ := interval.Between(s.points[0], s.points[len(s.points)-1])

	return iv
}

// StartsAt returns the first point.
func (s PointSet) StartsAt() float64 {
	if len(s.points) == 0 {
		return 0
	}

	return s.points[0]
}

// IsEmpty reports whether the set has no point (only the zero value).
func (s PointSet) IsEmpty() bool { return len(s.points) == 0 }

// Equal reports whether o is a point set with the same points.
func (s PointSet) Equal(o Domain) bool {
	if o == nil {
		return false
	}
	if s.IsEmpty() || o.IsEmpty() {
		return s.IsEmpty() && o.IsEmpty()
	}
	x, ok := o.(PointSet)
	if !ok || len(x.points) != len(s.points) {
		return false
	}
	for k := range s.points {
		if s.points[k] != x.points[k] {
			return false
		}
	}

	return true
}

// Hash digests the points with xxhash.
func (s PointSet) Hash() uint64 {
	if s.IsEmpty() {
		return 0
	}

	d := xxhash.New()
	var buf [8]byte
	_, _ = d.WriteString("pointset")
	for _, p := range s.points {
		if p == 0 {
			p = 0 // fold -0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// String renders the set as "{p1;p2;...}".
func (s PointSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, p := range s.points {
		if k > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	sb.WriteByte('}')

	return sb.String()
}

// filter returns the points contained in o.
func (s PointSet) filter(o Domain) Domain {
	kept := make([]float64, 0, len(s.points))
	for _, p := range s.points {
		if o.Contains(p) {
			kept = append(kept, p)
		}
	}

	return NewPointSet(kept...)
}

// within reports whether every point of s is contained in o.
func (s PointSet) within(o Domain) bool {
	for _, p := range s.points {
		if !o.Contains(p) {
			return false
		}
	}

	return true
}
