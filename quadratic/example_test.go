package quadratic_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polysolve/numeric"
	"github.com/katalvlaran/polysolve/quadratic"
)

// ExampleSolve solves x² + 2x = 0. The "+√D" root comes first.
func ExampleSolve() {
	r, err := quadratic.Solve(1, 2, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(r.X1, r.X2, r.Degeneracy)
	// Output:
	// 0 -2 distinct
}

// ExampleSolve_degenerate shows the structured degeneracy signal for
// (x + 1)² = 0 together with the notification hook.
func ExampleSolve_degenerate() {
	r, _ := quadratic.Solve(1, 2, 1,
		quadratic.WithOnDegenerate(func(kind numeric.Degeneracy, roots []complex128) {
			fmt.Println("notified:", kind)
		}),
	)
	fmt.Println(r.Distinct())
	// Output:
	// notified: double root
	// [-1]
}

// ExampleSolve_noRealRoots shows that x² + 1 = 0 has no real solution.
func ExampleSolve_noRealRoots() {
	_, err := quadratic.Solve(1, 0, 1)
	fmt.Println(errors.Is(err, quadratic.ErrInvalidResult))
	// Output:
	// true
}

// ExampleSolveComplex returns the conjugate pair of x² − 2x + 5 = 0.
func ExampleSolveComplex() {
	r, _ := quadratic.SolveComplex(1, -2, 5)
	fmt.Println(r.X[0], r.X[1])
	// Output:
	// (1+2i) (1-2i)
}
