package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/effres/matrix"
)

// ExampleSolve solves the grounded two-resistor chain: a unit current
// injected at the far end raises it to 2 V.
func ExampleSolve() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Inc(0, 0, 2)
	_ = a.Inc(0, 1, -1)
	_ = a.Inc(1, 0, -1)
	_ = a.Inc(1, 1, 1)
	x, err := matrix.Solve(a, []float64{0, 1}, matrix.DefaultPivotTolerance)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f %.3f\n", x[0], x[1])
	// Output: 1.000 2.000
}
