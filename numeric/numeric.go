// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/cmplx"
)

const (
	// DefaultEpsilon is the relative tolerance used to decide whether a root
	// is real and whether two roots coincide.
	DefaultEpsilon = 1e-9

	// DiscriminantEpsilon is the relative tolerance under which a
	// discriminant is treated as exactly zero. It is scaled by the
	// magnitude of the terms whose difference produced the discriminant.
	DiscriminantEpsilon = 1e-12

	// Sqrt3Over2 is √3/2.
	Sqrt3Over2 = 0.86602540378443864676372317075293618347140262690519
)

// CubeRootOfUnity is the primitive cube root of unity ω = −1/2 + i·√3/2.
const CubeRootOfUnity = complex(-0.5, Sqrt3Over2)

// ImagCubeRootOfUnity is i·√3/2, the imaginary part of ω as a complex value.
// Cardano's second and third branches add and subtract it times (s − t).
const ImagCubeRootOfUnity = complex(0, Sqrt3Over2)

// NearZero reports whether |v| ≤ eps·|scale|.
// A zero scale accepts only an exact zero, and a NaN or infinite v or scale
// is never near zero.
func NearZero(v, scale, eps float64) bool {
	if !IsFinite(v, scale) {
		return false
	}

	return math.Abs(v) <= eps*math.Abs(scale)
}

// Normalize scales coeffs in place by a power of two so that the largest
// magnitude lies in [0.5, 1). The roots of the polynomial are unchanged and,
// barring underflow of tiny entries, so is every mantissa. An all-zero slice
// is left as is.
func Normalize(coeffs []float64) {
	var m float64
	for _, c := range coeffs {
		m = math.Max(m, math.Abs(c))
	}
	if m == 0 || !IsFinite(m) {
		return
	}

	_, exp := math.Frexp(m)
	for i := range coeffs {
		coeffs[i] = math.Ldexp(coeffs[i], -exp)
	}
}

// ApproxEqual reports whether x and y agree within eps, relative to the
// larger of 1, |x| and |y|.
func ApproxEqual(x, y complex128, eps float64) bool {
	scale := math.Max(1, math.Max(cmplx.Abs(x), cmplx.Abs(y)))

	return cmplx.Abs(x-y) <= eps*scale
}

// IsReal reports whether the imaginary part of z is negligible relative to
// max(1, |Re z|).
func IsReal(z complex128, eps float64) bool {
	return math.Abs(imag(z)) <= eps*math.Max(1, math.Abs(real(z)))
}

// IsFinite reports whether every value is neither NaN nor ±Inf.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Cbrt returns the principal complex cube root of z:
//
//	|z|^{1/3} · e^{i·arg(z)/3},  arg(z) ∈ (−π, π]
//
// Cbrt(0) == 0. For a negative real z the result is NOT the real cube root;
// callers that need s·t = −q pair the branches themselves.
func Cbrt(z complex128) complex128 {
	if z == 0 {
		return 0
	}

	return cmplx.Rect(math.Cbrt(cmplx.Abs(z)), cmplx.Phase(z)/3)
}
