package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/optionfdm/matrix"
)

// ExampleTridiagonal_Factorize factorizes a time-invariant operator once and
// reuses it for two right-hand sides.
func ExampleTridiagonal_Factorize() {
	tri, _ := matrix.NewTridiagonal(
		[]float64{0, 1, 1},
		[]float64{2, 2, 2},
		[]float64{1, 1, 0},
	)
	f, _ := tri.Factorize()

	x := make([]float64, 3)
	for _, rhs := range [][]float64{{4, 8, 8}, {3, 4, 3}} {
		_ = f.SolveInto(x, rhs)
		fmt.Printf("%.3f\n", x)
	}

	// Output:
	// [1.000 2.000 3.000]
	// [1.000 1.000 1.000]
}

// ExampleMaxAbsDiff reports the worst deviation between two surfaces.
func ExampleMaxAbsDiff() {
	numeric, _ := matrix.NewDenseFromRows([][]float64{{0, 4.9, 10.5}})
	exact, _ := matrix.NewDenseFromRows([][]float64{{0, 5.0, 10.45}})

	d, _, col, _ := matrix.MaxAbsDiff(numeric, exact)
	fmt.Printf("max %.2f at column %d\n", d, col)

	// Output:
	// max 0.10 at column 1
}
