// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// function.go — a series backed by a plain Go function.

package series

import (
	"fmt"

	"github.com/katalvlaran/lvseries/domain"
)

// Function evaluates a rule fn(p) on its domain.
type Function[V any] struct {
	fn  func(p float64) V
	dom domain.Domain
}

var _ Series[float64] = (*Function[float64])(nil)

// NewFunction wraps fn over dom. dom is anything domain.Coerce accepts; a nil
// dom means the whole real line.
//
// Returns ErrTypeConstraint for a nil fn and the coercion error for a
// malformed dom.
func NewFunction[V any](fn func(p float64) V, dom any) (*Function[V], error) {
	if fn == nil {
		return nil, errNilFunc
	}

	d := domain.RealLine()
	if dom != nil {
		var err error
		if d, err = domain.Coerce(dom); err != nil {
			return nil, fmt.Errorf("series: function domain: %w", err)
		}
	}

	return &Function[V]{fn: fn, dom: d}, nil
}

// Domain returns the domain given at construction.
func (f *Function[V]) Domain() domain.Domain { return f.dom }

// At returns fn(p) for p in the domain.
func (f *Function[V]) At(p float64) (V, error) { return evaluate[V](f, p) }

func (f *Function[V]) valueAt(p float64) V { return f.fn(p) }
