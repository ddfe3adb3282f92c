package tsp_test

import (
	"fmt"
	"math"

	"github.com/tourbound/tourbound/matrix"
	"github.com/tourbound/tourbound/tsp"
)

// ExampleSolve solves a small 5-city instance with the default options.
// +Inf marks missing edges (including the diagonal).
func ExampleSolve() {
	inf := math.Inf(1)
	m, err := matrix.NewDenseFrom([][]float64{
		{inf, 10, 8, 9, 7},
		{10, inf, 10, 5, 6},
		{8, 10, inf, 8, 9},
		{9, 5, 8, inf, 6},
		{7, 6, 9, 6, inf},
	})
	if err != nil {
		fmt.Println("matrix:", err)
		return
	}

	res, err := tsp.Solve(m, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("cost: %.0f feasible: %v\n", res.Cost, res.Feasible)
	// Output:
	// cost: 34 feasible: true
}
