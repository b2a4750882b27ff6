// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// discrete.go — incremental accumulation of breakpoints into a step series.
//
// Contract:
//   • Put stages (at, value) and extends the tracked domain minimally so that
//     it contains at; the base series is never mutated.
//   • Series overlays staged values onto the base breakpoints (staged values
//     win on collision, the last Put for a position wins) and returns a new
//     series over the tracked domain.
//   • A Discrete builder is not safe for concurrent use.

package builder

import (
	"sort"
	"strconv"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/lvseries/domain"
	"github.com/katalvlaran/lvseries/series"
)

// Discrete accumulates point updates on top of an existing step series.
type Discrete[V any] struct {
	logger l.Wrapper

	base   []series.Point[V]
	dom    domain.Domain
	staged map[float64]V
}

// NewDiscrete starts a builder from base; a nil base starts from an empty
// series. Only WithLogger is observed.
//
// Complexity: O(len(opts)).
func NewDiscrete[V any](base *series.Discrete[V], opts ...BuilderOption) *Discrete[V] {
	cfg := newBuilderConfig(opts...)
	if base == nil {
		base = series.MustDiscrete[V](nil, nil)
	}

	return &Discrete[V]{
		logger: cfg.logger.WithFields(l.StringField(l.ClsKey, "discreteBuilder")),
		base:   base.Points(),
		dom:    base.Domain(),
		staged: make(map[float64]V),
	}
}

// Put stages v at position at, extending the tracked domain to contain it.
// Non-finite positions are staged as given and rejected by Series.
//
// Complexity: O(1) amortized, plus O(log n) to detect base overrides.
func (b *Discrete[V]) Put(at float64, v V) {
	if !b.dom.Contains(at) {
		if nd := extendTo(b.dom, at); !nd.Equal(b.dom) {
			b.dom = nd
			b.logger.WithFields(l.StringField("at", formatAt(at)), l.StringField("domain", nd.String())).
				Debug("domain extended")
		}
	}

	if _, ok := b.staged[at]; ok || b.hasBreakpoint(at) {
		b.logger.WithFields(l.StringField("at", formatAt(at))).Debug("breakpoint overridden")
	}
	b.staged[at] = v
}

// PutAny is Put with a loosely typed position: numbers and numeric strings
// are accepted through cast.ToFloat64E.
//
// Returns ErrOptionViolation when at cannot be read as a number.
func (b *Discrete[V]) PutAny(at any, v V) error {
	f, err := cast.ToFloat64E(at)
	if err != nil {
		return builderErrorf(MethodDiscrete, ErrOptionViolation, "position %v: %v", at, err)
	}
	b.Put(f, v)

	return nil
}

// Domain returns the tracked domain: the base domain extended by every Put.
func (b *Discrete[V]) Domain() domain.Domain { return b.dom }

// Series finalizes the staged updates into a new step series over Domain().
// The builder stays usable; later Puts start from the same staged state.
//
// Errors from series construction (non-finite positions) are returned
// unchanged, so errors.Is(err, series.ErrInvalidBreakpoints) holds.
//
// Complexity: O((n+k) log(n+k)) for n base and k staged breakpoints.
func (b *Discrete[V]) Series() (*series.Discrete[V], error) {
	pending := maps.Clone(b.staged)

	out := make([]series.Point[V], 0, len(b.base)+len(pending))
	for _, pt := range b.base {
		if v, ok := pending[pt.At]; ok {
			pt.Value = v
			delete(pending, pt.At)
		}
		out = append(out, pt)
	}

	rest := maps.Keys(pending)
	sort.Float64s(rest)
	for _, at := range rest {
		out = append(out, series.Point[V]{At: at, Value: pending[at]})
	}

	return series.NewDiscreteOn(out, b.dom)
}

// hasBreakpoint reports whether the base series has a breakpoint at x.
func (b *Discrete[V]) hasBreakpoint(x float64) bool {
	k := sort.Search(len(b.base), func(i int) bool { return b.base[i].At >= x })

	return k < len(b.base) && b.base[k].At == x
}

// extendTo grows d minimally to contain p. Contiguous domains extend their
// interval; point sets and patchworks gain p as an isolated point.
func extendTo(d domain.Domain, p float64) domain.Domain {
	switch d.(type) {
	case domain.Empty, domain.Single:
		return domain.FromInterval(d.Span().ExtendToPoint(p))
	default:
		return d.Union(domain.NewPointSet(p))
	}
}

func formatAt(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
