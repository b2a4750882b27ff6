// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// patchwork.go — a non-contiguous domain assembled from Single and PointSet
// members.
//
// Contract:
//   • members are flattened (no nested Patchwork) and non-empty.
//   • members are sorted by StartsAt; ties keep insertion order.
//   • overlapping members are NOT merged; Contains and Covers still treat the
//     patchwork as the set union of its members.

package domain

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvseries/interval"
)

const patchSeparator = " + "

// Patchwork is a union of Single and PointSet members.
type Patchwork struct {
	members []Domain
}

var _ Domain = Patchwork{}

// NewPatchwork assembles members into one domain.
//
// Nested patchworks are flattened and empty members dropped; the remaining
// members are stably sorted by StartsAt. No member is merged with another.
// Returns Empty for no members and the member itself when only one remains.
//
// Complexity: O(m log m) for m flattened members.
func NewPatchwork(members ...Domain) Domain {
	flat := make([]Domain, 0, len(members))
	for _, m := range members {
		switch x := m.(type) {
		case nil:
			continue
		case Patchwork:
			flat = append(flat, x.members...)
		default:
			if !m.IsEmpty() {
				flat = append(flat, m)
			}
		}
	}

	switch len(flat) {
	case 0:
		return Empty{}
	case 1:
		return flat[0]
	}
	sortByStart(flat)

	return Patchwork{members: flat}
}

func (Patchwork) sealed() {}

// Members returns a copy of the sorted member list.
func (w Patchwork) Members() []Domain {
	out := make([]Domain, len(w.members))
	copy(out, w.members)

	return out
}

// Contains reports whether any member contains p.
func (w Patchwork) Contains(p float64) bool {
	for _, m := range w.members {
		if m.Contains(p) {
			return true
		}
	}

	return false
}

// Covers reports whether o is a subset of the patchwork.
//
// Interval members (and single points) are first fused into contiguous runs,
// so an interval spanning two touching members is covered.
func (w Patchwork) Covers(o Domain) bool {
	switch x := o.(type) {
	case Empty:
		return true
	case PointSet:
		return x.within(w)
	case Single:
		for _, run := range w.runs() {
			if run.ContainsInterval(x.iv) {
				return true
			}
		}

		return false
	case Patchwork:
		for _, m := range x.members {
			if !w.Covers(m) {
				return false
			}
		}

		return true
	}

	return false
}

// Intersection is defined only against Empty and PointSet operands.
// Returns ErrUnsupportedOperation against Single and Patchwork.
func (w Patchwork) Intersection(o Domain) (Domain, error) { return intersect(w, o) }

// Union flattens both operands into one patchwork.
func (w Patchwork) Union(o Domain) Domain { return unite(w, o) }

// Translate shifts every member by x.
func (w Patchwork) Translate(x float64) Domain {
	if x == 0 {
		return w
	}

	out := make([]Domain, len(w.members))
	for k, m := range w.members {
		out[k] = m.Translate(x)
	}

	return NewPatchwork(out...)
}

// Span returns the hull of all member spans.
func (w Patchwork) Span() interval.Interval {
	span := interval.Empty()
	for _, m := range w.members {
		span = span.Hull(m.Span())
	}

	return span
}

// StartsAt returns the lowest member start.
func (w Patchwork) StartsAt() float64 {
	if len(w.members) == 0 {
		return 0
	}

	return w.members[0].StartsAt()
}

// IsEmpty reports whether there is no member (only the zero value).
func (w Patchwork) IsEmpty() bool { return len(w.members) == 0 }

// Equal reports member-wise equality in order.
func (w Patchwork) Equal(o Domain) bool {
	if o == nil {
		return false
	}
	if w.IsEmpty() || o.IsEmpty() {
		return w.IsEmpty() && o.IsEmpty()
	}
	x, ok := o.(Patchwork)
	if !ok || len(x.members) != len(w.members) {
		return false
	}
	for k := range w.members {
		if !w.members[k].Equal(x.members[k]) {
			return false
		}
	}

	return true
}

// Hash combines member hashes in order.
func (w Patchwork) Hash() uint64 {
	if w.IsEmpty() {
		return 0
	}

	d := xxhash.New()
	var buf [8]byte
	_, _ = d.WriteString("patchwork")
	for _, m := range w.members {
		h := m.Hash()
		for k := 0; k < 8; k++ {
			buf[k] = byte(h >> (8 * k))
		}
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// String joins member notations with " + ".
func (w Patchwork) String() string {
	parts := make([]string, len(w.members))
	for k, m := range w.members {
		parts[k] = m.String()
	}

	return strings.Join(parts, patchSeparator)
}

// runs fuses the members into maximal contiguous intervals.
// Points become degenerate closed intervals.
func (w Patchwork) runs() []interval.Interval {
	var pieces []interval.Interval
	for _, m := range w.members {
		switch x := m.(type) {
		case Single:
			pieces = append(pieces, x.iv)
		case PointSet:
			for _, p := range x.points {
				iv, _ := interval.Between(p, p)
				pieces = append(pieces, iv)
			}
		}
	}

	// Members are sorted by start, but points expanded from a PointSet may
	// land after later members.
	sortIntervals(pieces)

	var out []interval.Interval
	for _, iv := range pieces {
		if n := len(out); n > 0 {
			if u, ok := out[n-1].Union(iv); ok {
				out[n-1] = u
				continue
			}
		}
		out = append(out, iv)
	}

	return out
}
