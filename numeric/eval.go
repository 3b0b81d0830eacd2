// SPDX-License-Identifier: MIT

package numeric

// Eval evaluates the real polynomial with coefficients given highest degree
// first at the complex point x, using Horner's scheme:
//
//	Eval(x, a, b, c) == a·x² + b·x + c
//
// Eval with no coefficients returns 0.
func Eval(x complex128, coeffs ...float64) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*x + complex(c, 0)
	}

	return acc
}
