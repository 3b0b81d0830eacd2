// Package quadratic solves a·x² + b·x + c = 0 with the quadratic formula.
//
// 🚀 What does it do?
//
//	Given real coefficients (a, b, c) with a ≠ 0 it computes
//
//	    D  = b² − 4ac
//	    x₊ = (−b + √D) / 2a
//	    x₋ = (−b − √D) / 2a
//
//	with √D taken in ℂ, then validates the result at the real boundary.
//	The coefficients are first rescaled by a power of two, and for D ≥ 0
//	the smaller root is recovered as c/(a·x) from the larger one, so
//	neither overflow nor cancellation distorts it.
//
// ✨ Key features:
//   - Solve:        real roots, ErrInvalidResult when D < 0
//   - SolveComplex: the same pipeline without the realness check
//   - Degeneracy:   every result says whether the roots coincide
//   - Hooks:        WithOnDegenerate for a side-channel notification
//   - Strict mode:  WithRejectDegenerate turns a double root into ErrDegenerate
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polysolve/quadratic"
//
//	r, err := quadratic.Solve(1, 2, 1)
//	if err != nil {
//	  // ErrInvalidInput / ErrInvalidResult
//	}
//	if r.Degeneracy.Degenerate() {
//	  fmt.Println("single root:", r.X1)
//	}
//
// Performance: O(1) time and memory; safe for concurrent use.
package quadratic
