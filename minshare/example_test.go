package minshare_test

import (
	"fmt"
	"time"

	"github.com/fairdivision/divvy/minshare"
	"github.com/fairdivision/divvy/valuation"
)

// Two agents whose favorite objects differ: no object needs splitting.
func ExampleProportional() {
	v, _ := valuation.NewValuationMatrix([][]float64{
		{3, 2},
		{1, 4},
	})

	z, _ := minshare.Proportional(v)
	fmt.Println(z)
	fmt.Println("sharings:", z.NumSharings())
	// Output:
	// [1 0]
	// [0 1]
	// sharings: 0
}

// A single contested object must be split to satisfy both agents.
func ExampleProportional_singleObject() {
	v, _ := valuation.NewValuationMatrix([][]float64{
		{3},
		{5},
	})

	z, _ := minshare.Proportional(v)
	fmt.Println(z)
	fmt.Println("sharings:", z.NumSharings())
	// Output:
	// [0.5]
	// [0.5]
	// sharings: 1
}

// Batch experiments wrap the search with a wall-clock budget and read a
// status instead of handling errors per instance.
func ExampleRunWithTimeLimit() {
	v, _ := valuation.NewValuationMatrix([][]float64{
		{3, 2},
		{1, 4},
	})

	res := minshare.RunWithTimeLimit(v, minshare.EnvyFreeCriterion(), 30*time.Second)
	fmt.Println(res.Status, "sharings:", res.NumSharings)
	// Output:
	// OK sharings: 0
}
