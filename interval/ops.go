// SPDX-License-Identifier: MIT
// Package: lvseries/interval
//
// ops.go — membership and set operations on intervals.
//
// Contract:
//   • All operations are pure and O(1).
//   • Boundary handling is exact: no epsilon comparisons are performed.

package interval

import "math"

// Contains reports whether the point p belongs to the interval,
// honoring the closing of each end.
func (i Interval) Contains(p float64) bool {
	if i.IsEmpty() || math.IsNaN(p) {
		return false
	}
	if p == i.start {
		return i.leftClosed
	}
	if p == i.stop {
		return i.rightClosed
	}

	return i.start < p && p < i.stop
}

// ContainsInterval reports whether o is a subset of i.
//
// Where o and i share an endpoint, o may be open inside a closed end of i but
// a closed end of o is not contained by an open end of i. The empty interval
// is contained by every interval.
func (i Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}
	if o.start < i.start || o.stop > i.stop {
		return false
	}
	if o.start == i.start && o.leftClosed && !i.leftClosed {
		return false
	}
	if o.stop == i.stop && o.rightClosed && !i.rightClosed {
		return false
	}

	return true
}

// Intersection returns i ∩ o. The result is the empty interval when the two
// ranges do not overlap; ranges touching at a point overlap only if both
// touching ends are closed.
//
// Algorithm:
//  1. Order the operands so that a.start ≤ b.start.
//  2. Reject disjoint ranges (a.stop < b.start, or touching without both ends closed).
//  3. Start: equal starts conjoin closings, otherwise b's start and closing win.
//  4. Stop: equal stops conjoin closings, otherwise the smaller stop wins and
//     stays closed only if it is closed and contained by the other operand.
func (i Interval) Intersection(o Interval) Interval {
	if i.IsEmpty() || o.IsEmpty() {
		return Empty()
	}

	a, b := i, o
	if a.start > b.start {
		a, b = b, a
	}

	if a.stop < b.start {
		return Empty()
	}
	if a.stop == b.start && !(a.rightClosed && b.leftClosed) {
		return Empty()
	}

	var (
		start, stop             float64
		leftClosed, rightClosed bool
	)

	if a.start == b.start {
		start, leftClosed = a.start, a.leftClosed && b.leftClosed
	} else {
		start, leftClosed = b.start, b.leftClosed
	}

	if a.stop == b.stop {
		stop, rightClosed = a.stop, a.rightClosed && b.rightClosed
	} else {
		p, q := a, b
		if q.stop < p.stop {
			p, q = q, p
		}
		stop, rightClosed = p.stop, p.rightClosed && q.Contains(p.stop)
	}

	return mk(start, stop, leftClosed, rightClosed)
}

// Overlaps reports whether i ∩ o is non-empty.
func (i Interval) Overlaps(o Interval) bool {
	return !i.Intersection(o).IsEmpty()
}

// Union returns i ∪ o when that union is itself a contiguous interval.
//
// ok is false when the operands are separated by a gap, or merely touch at a
// point that neither of them includes; callers then fall back to a
// non-contiguous domain. When one operand ends strictly inside the other it
// is absorbed. Where both operands end at the same bound, the closed end wins.
func (i Interval) Union(o Interval) (u Interval, ok bool) {
	if i.IsEmpty() {
		return o, true
	}
	if o.IsEmpty() {
		return i, true
	}

	a, b := i, o
	if a.start > b.start {
		a, b = b, a
	}

	if a.stop < b.start {
		return Empty(), false
	}
	if a.stop == b.start && !(a.rightClosed || b.leftClosed) {
		return Empty(), false
	}

	leftClosed := a.leftClosed
	if a.start == b.start {
		leftClosed = a.leftClosed || b.leftClosed
	}

	switch {
	case b.stop < a.stop:
		return mk(a.start, a.stop, leftClosed, a.rightClosed), true
	case b.stop == a.stop:
		return mk(a.start, a.stop, leftClosed, a.rightClosed || b.rightClosed), true
	default:
		return mk(a.start, b.stop, leftClosed, b.rightClosed), true
	}
}

// ExtendToPoint returns the minimal enlargement of i that contains p.
//
// If p is already inside, i is returned unchanged. An empty interval extends
// to the single point <p;p>. Extending towards an infinite point leaves that
// side open, since infinity is never a closed bound. NaN points are ignored.
func (i Interval) ExtendToPoint(p float64) Interval {
	if math.IsNaN(p) || i.Contains(p) {
		return i
	}

	finite := !math.IsInf(p, 0)
	if i.IsEmpty() {
		return mk(p, p, finite, finite)
	}
	if p <= i.start {
		return mk(p, i.stop, finite, i.rightClosed)
	}

	// p ≥ stop: the only remaining case for a point outside a non-empty interval.
	return mk(i.start, p, i.leftClosed, finite)
}

// Translate shifts both bounds by x. Translating by 0 returns i itself.
func (i Interval) Translate(x float64) Interval {
	if x == 0 || i.IsEmpty() {
		return i
	}

	return mk(i.start+x, i.stop+x, i.leftClosed, i.rightClosed)
}

// Hull returns the smallest interval containing both i and o.
// Where both operands end at the same bound, the closed end wins.
func (i Interval) Hull(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}

	start, leftClosed := i.start, i.leftClosed
	switch {
	case o.start < start:
		start, leftClosed = o.start, o.leftClosed
	case o.start == start:
		leftClosed = leftClosed || o.leftClosed
	}

	stop, rightClosed := i.stop, i.rightClosed
	switch {
	case o.stop > stop:
		stop, rightClosed = o.stop, o.rightClosed
	case o.stop == stop:
		rightClosed = rightClosed || o.rightClosed
	}

	return mk(start, stop, leftClosed, rightClosed)
}
