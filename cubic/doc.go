// Package cubic solves a·x³ + b·x² + c·x + d = 0 in closed form with
// Cardano's method.
//
// 🚀 How does it work?
//
//	The substitution x = y − b/3a removes the quadratic term and leaves the
//	depressed cubic y³ + 3q·y − 2r = 0. With D = q³ + r²,
//
//	    s = ∛(r + √D),  t = ∛(r − √D),  s·t = −q
//
//	and the three roots are s + t and its two rotations by the cube roots
//	of unity ω, ω²:
//
//	    x₁ = s + t − b/3a
//	    x₂ = −(s+t)/2 − b/3a + i·(√3/2)·(s − t)
//	    x₃ = −(s+t)/2 − b/3a − i·(√3/2)·(s − t)
//
// ⚠️ Branch selection:
//
//	Each cube root has three values; only the combinations with s·t = −q are
//	roots. Picking s and t independently as principal roots breaks this for
//	three-real-root inputs (D < 0) and produces spurious complex results.
//	The solver takes one principal root and derives the other from −q.
//
// 📏 Scaling:
//
//	Before depressing, the cubic is made monic and rescaled by a power of
//	two so every coefficient lies in (−1, 1); the roots are scaled back at
//	the end. Coefficients anywhere in the float64 range are accepted, and
//	q or r that are pure rounding residue (a triple root at 0.1, say) are
//	snapped to zero.
//
// ✨ Key features:
//   - Solve:        three real roots, ErrInvalidResult when a conjugate pair exists
//   - SolveComplex: the same pipeline without the realness check
//   - Degeneracy:   Distinct / DoubleRoot / TripleRoot on every result
//   - Hooks:        WithOnDegenerate; strict mode via WithRejectDegenerate
//
// ⚙️ Usage:
//
//	r, err := cubic.Solve(1, -6, 11, -6) // roots 3, 1, 2
//
// Performance: O(1); safe for concurrent use.
package cubic
