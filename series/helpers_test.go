package series_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/lvseries/series"
)

// pts builds float breakpoints from alternating (at, value) pairs.
func pts(pairs ...float64) []series.Point[float64] {
	out := make([]series.Point[float64], 0, len(pairs)/2)
	for k := 0; k+1 < len(pairs); k += 2 {
		out = append(out, series.Point[float64]{At: pairs[k], Value: pairs[k+1]})
	}

	return out
}

// assertPoints fails with a structural diff when got differs from want.
func assertPoints[V any](t *testing.T, want, got []series.Point[V]) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("breakpoints mismatch (-want +got):\n%s", diff)
	}
}

func sum(_ float64, a, b float64) float64 { return a + b }
