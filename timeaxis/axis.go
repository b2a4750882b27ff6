// SPDX-License-Identifier: MIT
// Package: lvseries/timeaxis
//
// axis.go — mapping between time.Time and float positions.

package timeaxis

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
)

const nanosPerSecond = 1e9

// Axis maps instants to float positions counted in units since an epoch.
// The zero Axis is invalid; use NewAxis.
type Axis struct {
	epoch time.Time
	unit  time.Duration
}

// NewAxis returns the axis on which epoch is 0 and epoch+unit is 1.
//
// Returns ErrBadUnit when unit <= 0.
func NewAxis(epoch time.Time, unit time.Duration) (Axis, error) {
	if unit <= 0 {
		return Axis{}, fmt.Errorf("%w: %v", ErrBadUnit, unit)
	}

	return Axis{epoch: epoch, unit: unit}, nil
}

// Epoch returns the instant at position 0.
func (a Axis) Epoch() time.Time { return a.epoch }

// Unit returns the duration of one step on the axis.
func (a Axis) Unit() time.Duration { return a.unit }

// ToFloat returns the position of t. Seconds and nanoseconds are
// subtracted separately, so instants centuries apart do not saturate.
func (a Axis) ToFloat(t time.Time) float64 {
	secs := float64(t.Unix() - a.epoch.Unix())
	nanos := float64(t.Nanosecond() - a.epoch.Nanosecond())

	return (secs*nanosPerSecond + nanos) / float64(a.unit)
}

// ToTime returns the instant at position f, rounded to the nanosecond.
// Non-finite positions have no instant and yield the zero Time.
func (a Axis) ToTime(f float64) time.Time {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}
	}

	ns := f * float64(a.unit)
	secs := math.Floor(ns / nanosPerSecond)
	rem := math.Round(ns - secs*nanosPerSecond)

	return time.Unix(a.epoch.Unix()+int64(secs), int64(a.epoch.Nanosecond())+int64(rem)).In(a.epoch.Location())
}

// Coerce reads v as a position on the axis. Instants (time.Time, *time.Time
// and strings cast can parse as dates, such as RFC 3339) are mapped through
// ToFloat; numbers and numeric strings are taken as positions already.
//
// Returns ErrBadInstant for anything else.
func (a Axis) Coerce(v any) (float64, error) {
	switch x := v.(type) {
	case time.Time:
		return a.ToFloat(x), nil
	case *time.Time:
		if x == nil {
			return 0, fmt.Errorf("%w: nil time", ErrBadInstant)
		}

		return a.ToFloat(*x), nil
	case string:
		if t, err := cast.ToTimeE(x); err == nil {
			return a.ToFloat(t), nil
		}
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadInstant, err)
	}

	return f, nil
}

// String renders the axis as "<epoch RFC 3339>/<unit>".
func (a Axis) String() string {
	return a.epoch.Format(time.RFC3339Nano) + "/" + a.unit.String()
}
