package series_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseries/series"
)

// ExampleJoinDiscrete merges two step functions breakpoint by breakpoint.
func ExampleJoinDiscrete() {
	a := series.MustDiscrete([]series.Point[int]{{At: 0, Value: 0}, {At: 1, Value: 1}, {At: 2, Value: 2}}, nil)
	b := series.MustDiscrete([]series.Point[int]{{At: 0, Value: 1}, {At: 1, Value: 2}, {At: 2, Value: 3}}, nil)

	sum, err := series.JoinDiscrete(a, b, func(_ float64, x, y int) int { return x + y })
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sum)

	// Output:
	// <0;2>: (0, 1) (1, 3) (2, 5)
}

// ExampleNewModulo repeats a three-step pattern over the whole real line.
func ExampleNewModulo() {
	pattern := series.MustDiscrete([]series.Point[int]{
		{At: 0, Value: 1}, {At: 1, Value: 2}, {At: 2, Value: 3},
	}, "<0;3)")

	m, _ := series.NewModulo[int](pattern)
	vs, _ := series.EvaluateMany[int](m, []float64{-1, 0, 4, 3})
	fmt.Println(vs)

	// Output:
	// [3 1 2 1]
}

// ExampleInterpolate contrasts step lookup with linear interpolation.
func ExampleInterpolate() {
	s := series.MustDiscrete([]series.Point[float64]{{At: 0, Value: 1}, {At: 1, Value: 2}, {At: 2, Value: 3}}, nil)
	li, _ := series.Interpolate[float64](s)

	step, _ := s.At(0.5)
	lin, _ := li.At(0.5)
	fmt.Println(step, lin)

	_, err := s.At(-1)
	fmt.Println(errors.Is(err, series.ErrNotInDomain))

	// Output:
	// 1 1.5
	// true
}
