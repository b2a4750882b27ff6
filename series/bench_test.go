// Package series_test provides benchmarks for the hot paths of series.
package series_test

import (
	"testing"

	"github.com/katalvlaran/lvseries/series"
)

// ramp builds n breakpoints at i*step with value i.
func ramp(n int, step float64) *series.Discrete[float64] {
	ps := make([]series.Point[float64], n)
	for i := range ps {
		ps[i] = series.Point[float64]{At: float64(i) * step, Value: float64(i)}
	}

	return series.MustDiscrete(ps, nil)
}

// BenchmarkDiscrete_At measures the binary-search step lookup.
func BenchmarkDiscrete_At(b *testing.B) {
	s := ramp(10_000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.At(float64(i%10_000) + 0.5)
	}
}

// BenchmarkJoinDiscrete measures the two-pointer merge of interleaved lists.
func BenchmarkJoinDiscrete(b *testing.B) {
	x := ramp(5_000, 2)
	y := ramp(5_000, 2).Translate(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = series.JoinDiscrete[float64, float64, float64](x, y, sum)
	}
}

// BenchmarkInterpolation_At measures bracketing search plus interpolation.
func BenchmarkInterpolation_At(b *testing.B) {
	li, _ := series.Interpolate[float64](ramp(10_000, 1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = li.At(float64(i%9_999) + 0.25)
	}
}
