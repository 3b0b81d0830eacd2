// SPDX-License-Identifier: MIT

package numeric

// ToReal2 projects both roots onto the real axis. ok is false if either
// root has a non-negligible imaginary part.
func ToReal2(roots [2]complex128, eps float64) (out [2]float64, ok bool) {
	for i, z := range roots {
		if !IsReal(z, eps) {
			return [2]float64{}, false
		}
		out[i] = real(z)
	}

	return out, true
}

// ToReal3 projects all three roots onto the real axis. ok is false if any
// root has a non-negligible imaginary part.
func ToReal3(roots [3]complex128, eps float64) (out [3]float64, ok bool) {
	for i, z := range roots {
		if !IsReal(z, eps) {
			return [3]float64{}, false
		}
		out[i] = real(z)
	}

	return out, true
}
