package interval_test

import (
	"fmt"

	"github.com/katalvlaran/lvseries/interval"
)

// ExampleParse demonstrates the notation and the basic set operations.
func ExampleParse() {
	a := interval.MustParse("<-10;2)")
	b := interval.MustParse("<1;5>")

	fmt.Println(a.Intersection(b))
	fmt.Println(a.Contains(2), b.Contains(5))

	u, ok := a.Union(b)
	fmt.Println(u, ok)

	// Output:
	// <1;2)
	// false true
	// <-10;5> true
}

// ExampleInterval_ExtendToPoint shows how an interval grows to cover a point.
func ExampleInterval_ExtendToPoint() {
	i := interval.MustParse("(-1;1)")

	fmt.Println(i.ExtendToPoint(-1))
	fmt.Println(i.ExtendToPoint(3))
	fmt.Println(interval.Empty().ExtendToPoint(4))

	// Output:
	// <-1;1)
	// (-1;3>
	// <4;4>
}
