// SPDX-License-Identifier: MIT
// Package: lvseries/timeaxis
//
// errors.go — sentinel errors for time axes.

package timeaxis

import "errors"

// ErrBadUnit indicates a non-positive axis unit, or a join of two axes whose
// units differ.
var ErrBadUnit = errors.New("timeaxis: invalid unit")

// ErrBadInstant indicates a value that cannot be read as an instant or an
// axis position, or a time range whose end precedes its start.
var ErrBadInstant = errors.New("timeaxis: invalid instant")
