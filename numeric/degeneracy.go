// SPDX-License-Identifier: MIT

package numeric

// Degeneracy describes how many roots of a polynomial coincide.
type Degeneracy int

const (
	// Distinct means no two roots coincide within tolerance.
	Distinct Degeneracy = iota

	// DoubleRoot means exactly two roots coincide.
	DoubleRoot

	// TripleRoot means all three roots of a cubic coincide.
	TripleRoot
)

// String implements fmt.Stringer.
func (d Degeneracy) String() string {
	switch d {
	case Distinct:
		return "distinct"
	case DoubleRoot:
		return "double root"
	case TripleRoot:
		return "triple root"
	default:
		return "unknown"
	}
}

// Degenerate reports whether at least two roots coincide.
func (d Degeneracy) Degenerate() bool {
	return d != Distinct
}

// Classify2 compares the two roots of a quadratic.
func Classify2(roots [2]complex128, eps float64) Degeneracy {
	if ApproxEqual(roots[0], roots[1], eps) {
		return DoubleRoot
	}

	return Distinct
}

// Classify3 compares the three roots of a cubic pairwise.
//
// Tolerance equality is not transitive, so two matching pairs out of three
// (x≈y, y≈z, x≉z) are reported as TripleRoot: the three values form one
// cluster.
func Classify3(roots [3]complex128, eps float64) Degeneracy {
	pairs := 0
	for i := 0; i < len(roots); i++ {
		for j := i + 1; j < len(roots); j++ {
			if ApproxEqual(roots[i], roots[j], eps) {
				pairs++
			}
		}
	}

	switch {
	case pairs >= 2:
		return TripleRoot
	case pairs == 1:
		return DoubleRoot
	default:
		return Distinct
	}
}
