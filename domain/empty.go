// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// empty.go — the empty domain.

package domain

import "github.com/katalvlaran/lvseries/interval"

// Empty is the domain containing no point. Its zero value is ready to use.
type Empty struct{}

var _ Domain = Empty{}

func (Empty) sealed() {}

// Contains always reports false.
func (Empty) Contains(float64) bool { return false }

// Covers reports whether o is empty as well.
func (Empty) Covers(o Domain) bool { return o.IsEmpty() }

// Intersection is always Empty.
func (e Empty) Intersection(o Domain) (Domain, error) { return intersect(e, o) }

// Union returns o.
func (e Empty) Union(o Domain) Domain { return unite(e, o) }

// Translate returns the receiver.
func (e Empty) Translate(float64) Domain { return e }

// Span returns the empty interval.
func (Empty) Span() interval.Interval { return interval.Empty() }

// StartsAt returns the 0 sentinel.
func (Empty) StartsAt() float64 { return 0 }

// IsEmpty always reports true.
func (Empty) IsEmpty() bool { return true }

// Equal reports whether o is empty.
func (Empty) Equal(o Domain) bool { return o != nil && o.IsEmpty() }

// Hash is 0 for every empty domain.
func (Empty) Hash() uint64 { return 0 }

func (Empty) String() string { return interval.Empty().String() }
