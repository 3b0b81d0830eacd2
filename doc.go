// Package polysolve computes closed-form roots of quadratic and cubic
// polynomials with real coefficients.
//
// 🚀 What is polysolve?
//
//	A small, pure-Go library built around two classical formulas:
//		• Quadratic formula: a·x² + b·x + c = 0
//		• Cardano's method:  a·x³ + b·x² + c·x + d = 0
//
// ✨ Why choose polysolve?
//
//   - Explicit complex intermediates: negative discriminants are handled in ℂ
//     and validated at the real boundary (ErrInvalidResult), never narrowed silently.
//   - Correct Cardano branches: s·t = −q is enforced, so three-real-root
//     cubics never produce spurious complex roots.
//   - Structured degeneracy: repeated roots are reported as Distinct /
//     DoubleRoot / TripleRoot, with an optional hook and strict mode.
//   - Stateless and allocation-light: every call is safe for concurrent use.
//
// Packages:
//
//	numeric/   — tolerances, principal cube root, ω, Horner evaluation, Degeneracy
//	quadratic/ — quadratic.Solve, quadratic.SolveComplex
//	cubic/     — cubic.Solve, cubic.SolveComplex
//	examples/  — runnable demos (projectile impact, spherical tank level)
//
// Quick example:
//
//	r, err := cubic.Solve(1, -6, 11, -6)
//	// r.X1, r.X2, r.X3 == 3, 1, 2; r.Degeneracy == numeric.Distinct
//
//	go get github.com/katalvlaran/polysolve
package polysolve
