package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvseries/interval"
)

// TestIntersection checks both operand orders against an expected result.
// An empty want means the intersection must be empty.
func TestIntersection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want string
	}{
		{"<-10;1>", "<2;3>", ""},
		{"<-10;-1)", "<-1;1>", ""},
		{"<-10;-1)", "(-1;3>", ""},
		{"<-10;-1>", "(-1;3>", ""},
		{"<-10;-1>", "<-1;3>", "<-1;-1>"},
		{"<-10;2)", "<1;5>", "<1;2)"},
		{"<-5;5>", "(-5;5)", "(-5;5)"},
		{"(-1;1>", "(0.5;2>", "(0.5;1>"},
		{"<0;10>", "<2;3)", "<2;3)"},
		{"(-inf;inf)", "<1;2)", "<1;2)"},
		{"(-inf;0>", "<0;inf)", "<0;0>"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.a+"∩"+tc.b, func(t *testing.T) {
			t.Parallel()
			a, b := interval.MustParse(tc.a), interval.MustParse(tc.b)

			ab, ba := a.Intersection(b), b.Intersection(a)
			assert.True(t, ab.Equal(ba), "intersection must commute: %s vs %s", ab, ba)

			if tc.want == "" {
				assert.True(t, ab.IsEmpty(), "expected empty, got %s", ab)
				assert.False(t, a.Overlaps(b))
				return
			}
			assert.Equal(t, tc.want, ab.String())
			assert.True(t, a.Overlaps(b))
		})
	}
}

// TestIntersection_Properties checks idempotence and absorption by the empty interval.
func TestIntersection_Properties(t *testing.T) {
	t.Parallel()

	samples := []string{"<0;1>", "(0;1)", "<0;1)", "(0;1>", "<2;2>", "(-inf;3>", "(-inf;inf)"}
	for _, s := range samples {
		i := interval.MustParse(s)
		assert.True(t, i.Intersection(i).Equal(i), "%s ∩ itself", s)
		assert.True(t, i.Intersection(interval.Empty()).IsEmpty(), "%s ∩ ∅", s)
		assert.True(t, interval.Empty().Intersection(i).IsEmpty(), "∅ ∩ %s", s)
	}
}

// TestUnion covers absorption, overlap, touching and disjoint operands.
func TestUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b   string
		want   string
		wantOK bool
	}{
		{"(-1;1>", "(0.5;2>", "(-1;2>", true},
		{"<0;5>", "<1;2>", "<0;5>", true},
		{"<0;1)", "<1;2>", "<0;2>", true},
		{"<0;1>", "(1;2>", "<0;2>", true},
		{"<0;1)", "(1;2>", "", false},
		{"<0;1>", "<5;10)", "", false},
		{"<0;2)", "(1;2>", "<0;2>", true},
		{"(0;2)", "<0;1>", "<0;2)", true},
		{"(0;0)", "<3;4>", "<3;4>", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.a+"∪"+tc.b, func(t *testing.T) {
			t.Parallel()
			a, b := interval.MustParse(tc.a), interval.MustParse(tc.b)

			u, ok := a.Union(b)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, u.String())
			}

			u2, ok2 := b.Union(a)
			assert.Equal(t, ok, ok2, "union must commute")
			if ok2 {
				assert.True(t, u.Equal(u2))
			}
		})
	}
}

// TestHull verifies the smallest enclosing interval.
func TestHull(t *testing.T) {
	t.Parallel()

	a := interval.MustParse("(0;1)")
	b := interval.MustParse("<5;6)")
	assert.Equal(t, "(0;6)", a.Hull(b).String())
	assert.Equal(t, "(0;6)", b.Hull(a).String())
	assert.Equal(t, "<5;6)", interval.Empty().Hull(b).String())
	assert.Equal(t, "<0;1)", a.Hull(interval.MustParse("<0;0>")).String())
}
