package gradient_test

import (
	"fmt"

	"github.com/gogpu/gradient"
	"github.com/gogpu/gradient/color"
)

func ExampleGradient_Take() {
	g := gradient.New[float64]([]color.Luma{{Y: 0}, {Y: 1}})
	for l := range g.Take(5).All() {
		fmt.Printf("%.2f ", l.Y)
	}
	fmt.Println()
	// Output: 0.00 0.25 0.50 0.75 1.00
}

func ExampleGradient_Slice() {
	g := gradient.New[float64]([]color.Luma{{Y: 0}, {Y: 1}})
	s := g.Slice(gradient.Between(0.25, 0.75))

	lo, hi := s.Domain()
	fmt.Println(lo, hi)
	fmt.Printf("%.2f %.2f\n", s.Get(0).Y, s.Get(1).Y)
	// Output:
	// 0.25 0.75
	// 0.25 0.75
}

func ExampleWithDomain() {
	g := gradient.WithDomain([]gradient.Stop[float64, color.Luma]{
		{Offset: -10, Value: color.Luma{Y: 0}},
		{Offset: 30, Value: color.Luma{Y: 1}},
	})
	fmt.Printf("%.3f\n", g.Get(0).Y)
	// Output: 0.250
}

func ExampleTake_NextBack() {
	g := gradient.New[float64]([]color.Luma{{Y: 0}, {Y: 1}})
	take := g.Take(3)
	last, _ := take.NextBack()
	first, _ := take.Next()
	fmt.Println(first.Y, last.Y, take.Len())
	// Output: 0 1 1
}

func ExampleRange_Constrain() {
	r := gradient.Between(0.0, 1.0)
	fmt.Println(r.Constrain(gradient.From(0.2)))
	fmt.Println(r.Constrain(gradient.Between(3.0, 5.0)))
	// Output:
	// [0.2, 1]
	// [1, 1]
}
