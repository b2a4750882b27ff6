// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// merge.go — two-pointer merge-join of a discrete series with another series.
//
// Algorithm (JoinDiscrete):
//  1. nd = a.Domain ∩ b.Domain; an empty nd yields an empty result.
//  2. Candidate breakpoints are a's breakpoints merged with b's when b has
//     breakpoints of its own (Discrete, LinearInterpolation), plus the start
//     of every contiguous piece of nd and the end of nd.
//  3. Walk the candidates in increasing order, keeping those inside nd (piece
//     starts are always kept, the first one seeds the output), evaluate
//     fn(x, a(x), b(x)) and append only when x is past the last appended
//     breakpoint and the value differs from the last appended value.
//
// Complexity: O((n+m) · (log n + log m)) for n and m breakpoints.

package series

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvseries/domain"
)

// breakpointer is implemented by the series that carry explicit breakpoints.
type breakpointer interface {
	breakpoints() []float64
}

// JoinDiscrete combines a with b pointwise into a new discrete series over
// a.Domain ∩ b.Domain, walking both breakpoint lists once.
//
// Consecutive breakpoints producing equal values are collapsed as they are
// merged. When b is not a step function it is sampled at a's breakpoints and
// at the ends of the common domain, so the result spans it edge to edge.
//
// Returns domain.ErrUnsupportedOperation when the domains cannot be intersected.
func JoinDiscrete[A, B, R any](a *Discrete[A], b Series[B], fn func(p float64, x A, y B) R) (*Discrete[R], error) {
	if fn == nil {
		return nil, errNilFunc
	}

	nd, err := a.Domain().Intersection(b.Domain())
	if err != nil {
		return nil, err
	}

	candidates := a.breakpoints()
	if bp, ok := b.(breakpointer); ok {
		candidates = mergeBreakpoints(candidates, bp.breakpoints())
	}

	return materialize(nd, candidates, func(p float64) R {
		return fn(p, a.valueAt(p), b.valueAt(p))
	}), nil
}

// materialize samples eval over nd at the candidate breakpoints, the piece
// starts and the end of nd, collapsing repeated values.
func materialize[R any](nd domain.Domain, candidates []float64, eval func(p float64) R) *Discrete[R] {
	if nd.IsEmpty() {
		return &Discrete[R]{dom: domain.NewEmpty()}
	}

	seeds := pieceStarts(nd)
	all := mergeBreakpoints(candidates, seeds)
	if stop := nd.Span().Stop(); !math.IsInf(stop, 0) {
		all = mergeBreakpoints(all, []float64{stop})
	}

	out := make([]Point[R], 0, len(all))
	for _, x := range all {
		if math.IsInf(x, 0) {
			continue
		}
		if !nd.Contains(x) && !containsSorted(seeds, x) {
			continue
		}
		out = appendIf(out, x, eval(x))
	}

	return &Discrete[R]{points: out, dom: nd}
}

// appendIf appends (x, v) unless x does not advance past the last breakpoint
// or v repeats the last value.
func appendIf[R any](out []Point[R], x float64, v R) []Point[R] {
	if n := len(out); n > 0 {
		if x <= out[n-1].At || valuesEqual(out[n-1].Value, v) {
			return out
		}
	}

	return append(out, Point[R]{At: x, Value: v})
}

// mergeBreakpoints merges two increasing lists into one, consuming equal
// heads from both sides once.
func mergeBreakpoints(x, y []float64) []float64 {
	out := make([]float64, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i] < y[j]:
			out = append(out, x[i])
			i++
		case y[j] < x[i]:
			out = append(out, y[j])
			j++
		default:
			out = append(out, x[i])
			i++
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)

	return out
}

// pieceStarts lists the lower bound of every contiguous piece of d, sorted.
// Every isolated point of a PointSet is its own piece.
func pieceStarts(d domain.Domain) []float64 {
	switch x := d.(type) {
	case domain.Single:
		return []float64{x.Interval().Start()}
	case domain.PointSet:
		return x.Points()
	case domain.Patchwork:
		var out []float64
		for _, m := range x.Members() {
			out = mergeBreakpoints(out, pieceStarts(m))
		}

		return out
	}

	return nil
}

func containsSorted(xs []float64, x float64) bool {
	k := sort.SearchFloat64s(xs, x)

	return k < len(xs) && xs[k] == x
}
