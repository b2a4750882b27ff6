package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvseries/builder"
	"github.com/katalvlaran/lvseries/series"
)

// ExampleNewDiscrete overlays staged points onto an existing series.
func ExampleNewDiscrete() {
	base := series.MustDiscrete([]series.Point[int]{{At: 0, Value: 1}, {At: 1, Value: 2}}, nil)

	b := builder.NewDiscrete(base)
	b.Put(3, 4)
	b.Put(-1, 5)
	b.Put(-1, 6)

	s, err := b.Series()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)

	// Output:
	// <-1;3>: (-1, 6) (0, 1) (1, 2) (3, 4)
}

// ExamplePulse keeps only the edges of a pulse train.
func ExamplePulse() {
	p, err := builder.Pulse(16, 1, builder.WithAmplitude(5), builder.WithStep(0.25))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Compute())

	// Output:
	// <0;3.75>: (0, 5) (1, 0) (2, 5) (3, 0)
}
