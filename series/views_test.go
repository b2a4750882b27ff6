package series_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/domain"
	"github.com/katalvlaran/lvseries/series"
)

func square(p float64) float64 { return p * p }

// TestNewFunction covers the nil rule and the default domain.
func TestNewFunction(t *testing.T) {
	t.Parallel()

	_, err := series.NewFunction[float64](nil, "<0;1>")
	assert.ErrorIs(t, err, series.ErrTypeConstraint)

	f, err := series.NewFunction(square, nil)
	require.NoError(t, err)
	assert.True(t, f.Domain().Equal(domain.RealLine()))

	v, err := f.At(-3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = series.NewFunction(square, "<0;1")
	assert.Error(t, err)
}

// TestApply keeps the domain and maps values lazily.
func TestApply(t *testing.T) {
	t.Parallel()

	s := series.MustDiscrete(pts(0, 1, 1, 2), "<0;2)")
	a, err := series.Apply[float64, float64](s, func(p, v float64) float64 { return p * v })
	require.NoError(t, err)

	assert.True(t, a.Domain().Equal(s.Domain()))
	v, err := a.At(1.5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = a.At(2)
	assert.ErrorIs(t, err, series.ErrNotInDomain)

	_, err = series.Apply[float64, float64](s, nil)
	assert.ErrorIs(t, err, series.ErrTypeConstraint)
}

// TestTranslate checks the sign convention: new(p) == old(p - x).
func TestTranslate(t *testing.T) {
	t.Parallel()

	s := series.MustDiscrete(pts(0, 1, 1, 2), nil)
	moved := series.Translate[float64](s, 2)
	assert.Equal(t, "<2;3>", moved.Domain().String())

	for _, p := range []float64{2, 2.5, 3} {
		got, err := moved.At(p)
		require.NoError(t, err)
		want, err := s.At(p - 2)
		require.NoError(t, err)
		assert.Equal(t, want, got, "at %v", p)
	}

	_, err := moved.At(1)
	assert.ErrorIs(t, err, series.ErrNotInDomain)

	f, err := series.NewFunction(square, "<0;1>")
	require.NoError(t, err)
	back := series.Translate[float64](f, -1)
	v, err := back.At(-0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

// TestSlice restricts a series and rejects sub-domains outside it.
func TestSlice(t *testing.T) {
	t.Parallel()

	s := series.MustDiscrete(pts(0, 1, 1, 2, 2, 3), nil)

	sl, err := series.Slice[float64](s, "<0.5;1.5)")
	require.NoError(t, err)
	assert.Equal(t, "<0.5;1.5)", sl.Domain().String())
	v, err := sl.At(1.2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = sl.At(1.6)
	assert.ErrorIs(t, err, series.ErrNotInDomain)

	_, err = series.Slice[float64](s, "<1;3>")
	require.ErrorIs(t, err, series.ErrNotInDomain)
	var nde *series.NotInDomainError
	require.True(t, errors.As(err, &nde))
	assert.Equal(t, "<1;3>", nde.Subset.String())
	assert.True(t, math.IsNaN(nde.Point))
	assert.Contains(t, nde.Error(), "not within domain <0;2>")

	pw, err := series.Slice[float64](s, "<0;0.5) + {2}")
	require.NoError(t, err)
	v, err = pw.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// TestJoin evaluates lazily on the intersected domain.
func TestJoin(t *testing.T) {
	t.Parallel()

	f, err := series.NewFunction(square, nil)
	require.NoError(t, err)
	s := series.MustDiscrete(pts(0, 1, 2, 10), "<0;4)")

	j, err := series.Join[float64, float64, float64](s, f, sum)
	require.NoError(t, err)
	assert.Equal(t, "<0;4)", j.Domain().String())

	v, err := j.At(3)
	require.NoError(t, err)
	assert.Equal(t, 19.0, v)

	_, err = j.At(4)
	assert.ErrorIs(t, err, series.ErrNotInDomain)

	pw := series.MustDiscrete(pts(0, 1), "<0;1> + <2;3>")
	_, err = series.Join[float64, float64, float64](pw, s, sum)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}

// TestEvaluateMany aborts on the first out-of-domain point.
func TestEvaluateMany(t *testing.T) {
	t.Parallel()

	s := series.MustDiscrete(pts(0, 0, 1, 1, 2, 2), nil)

	vs, err := series.EvaluateMany[float64](s, []float64{2, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 1}, vs)

	vs, err = series.EvaluateMany[float64](s, []float64{0, 5, 1})
	assert.ErrorIs(t, err, series.ErrNotInDomain)
	assert.Nil(t, vs)
}

// TestDiscretize samples a continuous series.
func TestDiscretize(t *testing.T) {
	t.Parallel()

	f, err := series.NewFunction(square, "<0;10>")
	require.NoError(t, err)

	d, err := series.Discretize[float64](f, []float64{3, 1, 2, 2})
	require.NoError(t, err)
	assertPoints(t, pts(1, 1, 2, 4, 3, 9), d.Points())
	assert.Equal(t, "<1;3>", d.Domain().String())

	empty, err := series.Discretize[float64](f, nil)
	require.NoError(t, err)
	assert.True(t, empty.Domain().IsEmpty())

	_, err = series.Discretize[float64](f, []float64{-1, 2})
	assert.ErrorIs(t, err, series.ErrNotInDomain)
}

// TestDiscretizeWithin samples over an explicit domain.
func TestDiscretizeWithin(t *testing.T) {
	t.Parallel()

	f, err := series.NewFunction(square, "<0;10>")
	require.NoError(t, err)

	d, err := series.DiscretizeWithin[float64](f, []float64{2, 1}, "<1;5)")
	require.NoError(t, err)
	assert.Equal(t, "<1;5)", d.Domain().String())
	v, err := d.At(4.9)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = series.DiscretizeWithin[float64](f, []float64{1, 2}, "<0;5>")
	assert.ErrorIs(t, err, series.ErrInvalidBreakpoints)

	_, err = series.DiscretizeWithin[float64](f, []float64{1, 2}, "<1;20>")
	assert.ErrorIs(t, err, series.ErrNotInDomain)

	d, err = series.DiscretizeWithin[float64](f, nil, "<1;5>")
	require.NoError(t, err, "no points yields an empty series")
	assert.True(t, d.Domain().IsEmpty())
	assert.Zero(t, d.Len())
}
