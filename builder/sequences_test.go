package builder_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseries/builder"
	"github.com/katalvlaran/lvseries/series"
)

// values extracts the breakpoint values of s.
func values(s *series.Discrete[float64]) []float64 {
	pts := s.Points()
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.Value
	}

	return out
}

// positions extracts the breakpoint positions of s.
func positions(s *series.Discrete[float64]) []float64 {
	pts := s.Points()
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.At
	}

	return out
}

// TestPulse_Shape checks one full period at the default frequency and duty.
func TestPulse_Shape(t *testing.T) {
	t.Parallel()

	p, err := builder.Pulse(8, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, values(p))
	assert.Equal(t, "<0;7>", p.Domain().String())

	edges := p.Compute().Points()
	assert.Empty(t, cmp.Diff([]series.Point[float64]{{At: 0, Value: 1}, {At: 4, Value: 0}}, edges))
}

// TestPulse_Options checks amplitude, frequency, trend and placement.
func TestPulse_Options(t *testing.T) {
	t.Parallel()

	p, err := builder.Pulse(4, 1,
		builder.WithAmplitude(2),
		builder.WithFrequency(0.5),
		builder.WithTrend(1),
		builder.WithStep(0.5),
		builder.WithOrigin(10),
	)
	require.NoError(t, err)
	// frac alternates 0, 0.5: on, off; trend adds i.
	assert.Equal(t, []float64{2, 1, 4, 3}, values(p))
	assert.Equal(t, []float64{10, 10.5, 11, 11.5}, positions(p))
	assert.Equal(t, "<10;11.5>", p.Domain().String())

	v, err := p.At(10.75)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestSequences_Deterministic checks that a seed fixes the noisy output.
func TestSequences_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Pulse(32, 7, builder.WithNoise(0.1))
	require.NoError(t, err)
	b, err := builder.Pulse(32, 7, builder.WithNoise(0.1))
	require.NoError(t, err)
	assert.Equal(t, values(a), values(b))

	c, err := builder.Pulse(32, 8, builder.WithNoise(0.1))
	require.NoError(t, err)
	assert.NotEqual(t, values(a), values(c))

	x, err := builder.Chirp(32, 7, builder.WithNoise(0.1))
	require.NoError(t, err)
	y, err := builder.Chirp(32, 7, builder.WithNoise(0.1))
	require.NoError(t, err)
	assert.Equal(t, values(x), values(y))
}

// TestChirp_Bounds checks sample count, domain and the amplitude envelope.
func TestChirp_Bounds(t *testing.T) {
	t.Parallel()

	c, err := builder.Chirp(64, 1, builder.WithAmplitude(3))
	require.NoError(t, err)
	assert.Equal(t, 64, c.Len())
	assert.Equal(t, "<0;63>", c.Domain().String())
	for _, v := range values(c) {
		assert.LessOrEqual(t, math.Abs(v), 3.0)
	}

	one, err := builder.Chirp(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(2*math.Pi*0.02), values(one)[0], 1e-12)

	li, err := series.Interpolate[float64](c)
	require.NoError(t, err)
	_, err = li.At(31.5)
	assert.NoError(t, err)
}

// TestOHLC_Invariants checks candle ordering and day-to-day continuity.
func TestOHLC_Invariants(t *testing.T) {
	t.Parallel()

	open, high, low, closing, err := builder.OHLC(30, 42, builder.WithAmplitude(0.5))
	require.NoError(t, err)

	o, h, lo, c := values(open), values(high), values(low), values(closing)
	require.Len(t, o, 30)
	assert.Equal(t, 50.0, o[0])
	for d := range o {
		assert.LessOrEqual(t, lo[d], math.Min(o[d], c[d]), "day %d", d)
		assert.GreaterOrEqual(t, h[d], math.Max(o[d], c[d]), "day %d", d)
		if d > 0 {
			assert.Equal(t, c[d-1], o[d], "day %d opens at the previous close", d)
		}
	}

	for _, s := range []*series.Discrete[float64]{high, low, closing} {
		assert.True(t, s.Domain().Equal(open.Domain()))
	}
}

// TestSequences_Errors checks size and grid validation.
func TestSequences_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Pulse(0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Chirp(-3, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, _, _, _, err = builder.OHLC(0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Pulse(2, 1, builder.WithOrigin(1e16), builder.WithStep(0.5))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
