package domain_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseries/domain"
)

// ExampleParse shows the three textual member forms and how they combine.
func ExampleParse() {
	working := domain.MustParse("<9;12)")
	afternoon := domain.MustParse("<13;17)")
	checkpoints := domain.MustParse("{8;10;12.5;15;20}")

	day := working.Union(afternoon)
	fmt.Println(day)

	seen, _ := checkpoints.Intersection(day)
	fmt.Println(seen)

	_, err := day.Intersection(domain.MustParse("<10;14>"))
	fmt.Println(errors.Is(err, domain.ErrUnsupportedOperation))

	// Output:
	// <9;12) + <13;17)
	// {10;15}
	// true
}

// ExampleDomain_Union shows contiguous fusion of touching intervals.
func ExampleDomain_Union() {
	a := domain.MustParse("<0;1)")
	b := domain.MustParse("<1;2>")

	fmt.Println(a.Union(b))
	fmt.Println(a.Union(domain.NewPointSet(5, 3)))

	// Output:
	// <0;2>
	// <0;1) + {3;5}
}
