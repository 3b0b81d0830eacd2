// SPDX-License-Identifier: MIT

// Package numeric holds the numeric policy shared by the quadratic and cubic
// solvers: tolerances, complex helpers and polynomial evaluation.
//
// What lives here:
//
//   - Tolerances: DefaultEpsilon (realness / root equality) and
//     DiscriminantEpsilon (snapping a cancelled discriminant to zero).
//   - Complex helpers: the principal cube root Cbrt, IsReal, ApproxEqual.
//   - CubeRootOfUnity ω = −1/2 + i·√3/2 and its imaginary part.
//   - Degeneracy: Distinct, DoubleRoot, TripleRoot + pairwise classifiers.
//   - Eval: Horner evaluation of a real polynomial at a complex point.
//   - Normalize: exact power-of-two rescaling of a coefficient vector.
//
// Comparison policy:
//
//	IsReal(z, eps)         ⇔ |Im z| ≤ eps·max(1, |Re z|)
//	ApproxEqual(x, y, eps) ⇔ |x − y| ≤ eps·max(1, |x|, |y|)
//	NearZero(v, s, eps)    ⇔ |v| ≤ eps·|s|, v and s finite
//
// All functions are pure and safe for concurrent use.
package numeric
