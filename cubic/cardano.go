package cubic

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/polysolve/numeric"
)

// monic rewrites a·x³ + b·x² + c·x + d as y³ + p2·y² + p1·y + p0 with
// x = k·y. k is the power of two just above max(|b/a|, √|c/a|, ∛|d/a|), so
// every returned coefficient lies in (−1, 1) and no Cardano intermediate can
// overflow. All rescaling is by powers of two and therefore exact.
//
// k is +Inf when the roots themselves exceed float64 range.
func monic(a, b, c, d float64) (p2, p1, p0, k float64) {
	n := [4]float64{a, b, c, d}
	numeric.Normalize(n[:])
	p2, p1, p0 = n[1]/n[0], n[2]/n[0], n[3]/n[0]

	bound := math.Max(math.Abs(p2), math.Max(math.Sqrt(math.Abs(p1)), math.Cbrt(math.Abs(p0))))
	switch {
	case bound == 0:
		return 0, 0, 0, 1
	case !numeric.IsFinite(bound):
		return p2, p1, p0, math.Inf(1)
	}

	_, exp := math.Frexp(bound)

	return math.Ldexp(p2, -exp), math.Ldexp(p1, -2*exp), math.Ldexp(p0, -3*exp), math.Ldexp(1, exp)
}

// depress returns the Cardano intermediates of the monic y³ + b·y² + c·y + d:
//
//	q = (3c − b²) / 9
//	r = (9bc − 27d − 2b³) / 54
//
// so that with y = z − b/3 the cubic becomes z³ + 3q·z − 2r = 0.
//
// q and r are differences of terms that cancel exactly at a triple root. A
// value within DiscriminantEpsilon of the magnitude of its own terms is
// rounding residue and is clamped to zero.
func depress(b, c, d float64) (q, r float64) {
	q = (3*c - b*b) / 9
	r = (9*b*c - 27*d - 2*b*b*b) / 54

	if numeric.NearZero(q, (math.Abs(3*c)+b*b)/9, numeric.DiscriminantEpsilon) {
		q = 0
	}
	if numeric.NearZero(r, (math.Abs(9*b*c)+math.Abs(27*d)+math.Abs(2*b*b*b))/54, numeric.DiscriminantEpsilon) {
		r = 0
	}

	return q, r
}

// branches returns the Cardano pair (s, t) with s³ = r + √D, t³ = r − √D
// and D = q³ + r².
//
// Of the three cube roots of each radicand only the pairs with s·t = −q
// solve the depressed cubic. The principal cube root is taken of the
// radicand with the larger magnitude, and its partner is derived as −q
// divided by it, which fixes the product and never divides by a cancelled
// value. When both radicands vanish, q = r = 0 and s = t = 0.
//
// A discriminant within DiscriminantEpsilon of zero (relative to |q|³ and
// r²) is snapped to exactly zero before the square root is taken.
func branches(q, r float64) (s, t complex128) {
	q3, r2 := q*q*q, r*r
	disc := q3 + r2
	if numeric.NearZero(disc, math.Max(math.Abs(q3), r2), numeric.DiscriminantEpsilon) {
		disc = 0
	}

	sq := cmplx.Sqrt(complex(disc, 0))
	plus := complex(r, 0) + sq
	minus := complex(r, 0) - sq
	negQ := complex(-q, 0)

	switch {
	case plus == 0 && minus == 0:
		return 0, 0
	case cmplx.Abs(plus) >= cmplx.Abs(minus):
		s = numeric.Cbrt(plus)
		t = negQ / s
	default:
		t = numeric.Cbrt(minus)
		s = negQ / t
	}

	return s, t
}

// combine maps (s, t) back to the three roots of the monic cubic whose
// depression shift is b/3.
func combine(s, t complex128, shift float64) [3]complex128 {
	sum, diff := s+t, s-t
	base := -sum/2 - complex(shift, 0)
	rot := numeric.ImagCubeRootOfUnity * diff

	return [3]complex128{
		sum - complex(shift, 0),
		base + rot,
		base - rot,
	}
}
