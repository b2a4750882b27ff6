// SPDX-License-Identifier: MIT
// Package: lvseries/interval
//
// interval.go — the Interval value type, constructors and accessors.
//
// Contract:
//   • Interval is an immutable value; every operation returns a new value.
//   • Invariants hold for every Interval produced by this package:
//       start ≤ stop, no NaN bounds, infinite bounds are open.
//   • The zero value is the empty interval (0;0).

package interval

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Interval is a contiguous subset of the real line.
//
// Fields are unexported to keep the value immutable; use the accessors.
type Interval struct {
	start       float64 // lower bound
	stop        float64 // upper bound, start ≤ stop
	leftClosed  bool    // start belongs to the interval
	rightClosed bool    // stop belongs to the interval
}

// New builds an interval from explicit bounds and closings.
//
// Returns ErrInvalidBounds when a bound is NaN, start > stop, or a closed end
// is placed on an infinite bound.
//
// Complexity: O(1).
func New(start, stop float64, leftClosed, rightClosed bool) (Interval, error) {
	if math.IsNaN(start) || math.IsNaN(stop) {
		return Interval{}, boundsErrorf("NaN bound (%v;%v)", start, stop)
	}
	if start > stop {
		return Interval{}, boundsErrorf("start %v is after stop %v", start, stop)
	}
	if leftClosed && math.IsInf(start, 0) {
		return Interval{}, boundsErrorf("closed left end on infinite start %v", start)
	}
	if rightClosed && math.IsInf(stop, 0) {
		return Interval{}, boundsErrorf("closed right end on infinite stop %v", stop)
	}

	return Interval{start: start, stop: stop, leftClosed: leftClosed, rightClosed: rightClosed}, nil
}

// Between builds an interval whose finite ends are closed and whose infinite
// ends are open, e.g. Between(0, 1) is <0;1> and Between(0, +Inf) is <0;inf).
func Between(start, stop float64) (Interval, error) {
	return New(start, stop, !math.IsInf(start, 0), !math.IsInf(stop, 0))
}

// Empty returns the canonical empty interval (0;0).
func Empty() Interval {
	return Interval{}
}

// RealLine returns (-inf;inf).
func RealLine() Interval {
	return Interval{start: math.Inf(-1), stop: math.Inf(1)}
}

// mk builds an interval from bounds already known to satisfy the invariants.
func mk(start, stop float64, leftClosed, rightClosed bool) Interval {
	return Interval{start: start, stop: stop, leftClosed: leftClosed, rightClosed: rightClosed}
}

// Start returns the lower bound.
func (i Interval) Start() float64 { return i.start }

// Stop returns the upper bound.
func (i Interval) Stop() float64 { return i.stop }

// LeftClosed reports whether Start belongs to the interval.
func (i Interval) LeftClosed() bool { return i.leftClosed }

// RightClosed reports whether Stop belongs to the interval.
func (i Interval) RightClosed() bool { return i.rightClosed }

// IsEmpty reports whether the interval contains no point.
// A degenerate interval [a;a] is non-empty only when both ends are closed.
func (i Interval) IsEmpty() bool {
	return i.start == i.stop && !(i.leftClosed && i.rightClosed)
}

// Length returns stop - start, or 0 for an empty interval.
func (i Interval) Length() float64 {
	if i.IsEmpty() {
		return 0
	}

	return i.stop - i.start
}

// IsBounded reports whether both bounds are finite.
func (i Interval) IsBounded() bool {
	return !math.IsInf(i.start, 0) && !math.IsInf(i.stop, 0)
}

// Equal reports structural equality. Any two empty intervals are equal.
func (i Interval) Equal(o Interval) bool {
	ie, oe := i.IsEmpty(), o.IsEmpty()
	if ie || oe {
		return ie && oe
	}

	return i == o
}

// Hash returns a structural hash consistent with Equal: all empty intervals
// share one hash.
func (i Interval) Hash() uint64 {
	if i.IsEmpty() {
		return 0
	}

	var buf [18]byte
	putFloat(buf[0:8], i.start)
	putFloat(buf[8:16], i.stop)
	if i.leftClosed {
		buf[16] = 1
	}
	if i.rightClosed {
		buf[17] = 1
	}

	return xxhash.Sum64(buf[:])
}

// Compare orders intervals by their start bound (-1, 0, +1).
// Intervals with equal starts compare equal even if otherwise different.
func (i Interval) Compare(o Interval) int {
	switch {
	case i.start < o.start:
		return -1
	case i.start > o.start:
		return 1
	default:
		return 0
	}
}

// putFloat writes the IEEE-754 bits of f into b (little endian).
// -0 and +0 are folded so that they hash alike, as they compare equal.
func putFloat(b []byte, f float64) {
	if f == 0 {
		f = 0
	}
	u := math.Float64bits(f)
	for k := 0; k < 8; k++ {
		b[k] = byte(u >> (8 * k))
	}
}
