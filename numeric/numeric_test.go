// SPDX-License-Identifier: MIT
package numeric_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysolve/numeric"
)

// TestCubeRootOfUnity checks ω³ = 1 and 1 + ω + ω² = 0.
func TestCubeRootOfUnity(t *testing.T) {
	w := numeric.CubeRootOfUnity
	assert.True(t, numeric.ApproxEqual(w*w*w, 1, 1e-15), "ω³ must be 1, got %v", w*w*w)
	assert.True(t, numeric.ApproxEqual(1+w+w*w, 0, 1e-15), "1+ω+ω² must vanish")
	assert.Equal(t, imag(w), imag(numeric.ImagCubeRootOfUnity))
	assert.InDelta(t, math.Sqrt(3)/2, numeric.Sqrt3Over2, 1e-16)
}

// TestCbrt verifies the principal branch and that Cbrt(z)³ == z.
func TestCbrt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   complex128
		want complex128
	}{
		{"zero", 0, 0},
		{"positive real", 8, 2},
		{"negative real takes principal branch", -8, cmplx.Rect(2, math.Pi/3)},
		{"imaginary unit", 1i, cmplx.Rect(1, math.Pi/6)},
		{"negative imaginary", -27i, cmplx.Rect(3, -math.Pi/6)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := numeric.Cbrt(tc.in)
			assert.True(t, numeric.ApproxEqual(got, tc.want, 1e-14), "Cbrt(%v)=%v, want %v", tc.in, got, tc.want)
			assert.True(t, numeric.ApproxEqual(got*got*got, tc.in, 1e-14), "Cbrt(%v)³ must round-trip", tc.in)
		})
	}
}

// TestCbrt_ArgumentRange checks arg(Cbrt z) ∈ (−π/3, π/3].
func TestCbrt_ArgumentRange(t *testing.T) {
	for k := 0; k < 24; k++ {
		z := cmplx.Rect(1+float64(k), -math.Pi+float64(k+1)*math.Pi/12)
		phase := cmplx.Phase(numeric.Cbrt(z))
		assert.LessOrEqual(t, phase, math.Pi/3+1e-15, "k=%d", k)
		assert.Greater(t, phase, -math.Pi/3-1e-15, "k=%d", k)
	}
}

// TestNearZero covers exact zero, relative threshold and zero scale.
func TestNearZero(t *testing.T) {
	assert.True(t, numeric.NearZero(0, 0, numeric.DiscriminantEpsilon))
	assert.False(t, numeric.NearZero(1e-300, 0, numeric.DiscriminantEpsilon), "zero scale admits only exact zero")
	assert.True(t, numeric.NearZero(1e-13, 1, numeric.DiscriminantEpsilon))
	assert.False(t, numeric.NearZero(1e-11, 1, numeric.DiscriminantEpsilon))
	assert.True(t, numeric.NearZero(-1e-3, 1e10, numeric.DiscriminantEpsilon))

	// an overflowed discriminant is not a vanishing one
	inf := math.Inf(1)
	assert.False(t, numeric.NearZero(inf, inf, numeric.DiscriminantEpsilon))
	assert.False(t, numeric.NearZero(1, inf, numeric.DiscriminantEpsilon))
	assert.False(t, numeric.NearZero(math.NaN(), 1, numeric.DiscriminantEpsilon))
}

// TestNormalize checks power-of-two scaling keeps ratios exact.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"already unit", []float64{0.5, -0.25}, []float64{0.5, -0.25}},
		{"small integers", []float64{1, -6, 11, -6}, []float64{0.0625, -0.375, 0.6875, -0.375}},
		{"all zero", []float64{0, 0, 0}, []float64{0, 0, 0}},
		{"huge", []float64{math.Ldexp(1, 1000), math.Ldexp(3, 999)}, []float64{0.5, 0.75}},
		{"tiny", []float64{math.Ldexp(-1, -1000), 0}, []float64{-0.5, 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := append([]float64(nil), tc.in...)
			numeric.Normalize(got)
			assert.Equal(t, tc.want, got)
		})
	}

	// decimal inputs keep their ratios bit for bit
	cs := []float64{1e300, 1e300, -1e300}
	numeric.Normalize(cs)
	assert.Equal(t, cs[0], cs[1])
	assert.Equal(t, cs[0], -cs[2])
	assert.True(t, cs[0] >= 0.5 && cs[0] < 1, "max magnitude %g outside [0.5, 1)", cs[0])
}

// TestIsRealAndApproxEqual covers the relative comparison policy.
func TestIsRealAndApproxEqual(t *testing.T) {
	eps := numeric.DefaultEpsilon

	assert.True(t, numeric.IsReal(complex(3, 1e-12), eps))
	assert.False(t, numeric.IsReal(complex(3, 1e-6), eps))
	assert.True(t, numeric.IsReal(complex(1e6, 1e-4), eps), "tolerance scales with |Re|")
	assert.False(t, numeric.IsReal(1i, eps))

	assert.True(t, numeric.ApproxEqual(1, 1+1e-12, eps))
	assert.False(t, numeric.ApproxEqual(1, 1+1e-6, eps))
	assert.True(t, numeric.ApproxEqual(1e9, 1e9+0.5, eps))
	assert.True(t, numeric.ApproxEqual(0, 1e-10, eps), "tolerance is at least absolute eps")
}

// TestIsFinite rejects NaN and both infinities.
func TestIsFinite(t *testing.T) {
	assert.True(t, numeric.IsFinite())
	assert.True(t, numeric.IsFinite(1, -2, 0))
	assert.False(t, numeric.IsFinite(1, math.NaN()))
	assert.False(t, numeric.IsFinite(math.Inf(1)))
	assert.False(t, numeric.IsFinite(0, math.Inf(-1)))
}

// TestEval checks Horner evaluation at real and complex points.
func TestEval(t *testing.T) {
	assert.Equal(t, complex128(0), numeric.Eval(5))
	assert.Equal(t, complex128(7), numeric.Eval(5, 7))
	// x² + 2x + 1 at x = 3 → 16
	assert.Equal(t, complex128(16), numeric.Eval(3, 1, 2, 1))
	// x² + 1 at x = i → 0
	assert.Equal(t, complex128(0), numeric.Eval(1i, 1, 0, 1))
	// x³ − 6x² + 11x − 6 at 1, 2, 3 → 0
	for _, x := range []complex128{1, 2, 3} {
		assert.Equal(t, complex128(0), numeric.Eval(x, 1, -6, 11, -6), "x=%v", x)
	}
}

// TestToReal covers the real-boundary projection.
func TestToReal(t *testing.T) {
	eps := numeric.DefaultEpsilon

	got2, ok := numeric.ToReal2([2]complex128{complex(1, 1e-15), -2}, eps)
	require.True(t, ok)
	assert.Equal(t, [2]float64{1, -2}, got2)

	_, ok = numeric.ToReal2([2]complex128{1i, -1i}, eps)
	assert.False(t, ok)

	got3, ok := numeric.ToReal3([3]complex128{3, complex(1, -1e-16), 2}, eps)
	require.True(t, ok)
	if diff := cmp.Diff([3]float64{3, 1, 2}, got3, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("ToReal3 mismatch (-want +got):\n%s", diff)
	}

	_, ok = numeric.ToReal3([3]complex128{1, complex(0.5, 0.8), complex(0.5, -0.8)}, eps)
	assert.False(t, ok)
}

// TestClassify covers every Degeneracy outcome.
func TestClassify(t *testing.T) {
	t.Parallel()

	eps := numeric.DefaultEpsilon

	assert.Equal(t, numeric.Distinct, numeric.Classify2([2]complex128{0, -2}, eps))
	assert.Equal(t, numeric.DoubleRoot, numeric.Classify2([2]complex128{-1, -1 + 1e-13}, eps))

	tests := []struct {
		name  string
		roots [3]complex128
		want  numeric.Degeneracy
	}{
		{"distinct", [3]complex128{3, 1, 2}, numeric.Distinct},
		{"double first/last", [3]complex128{1, -2, 1}, numeric.DoubleRoot},
		{"double last two", [3]complex128{5, 1, 1}, numeric.DoubleRoot},
		{"triple", [3]complex128{0, 0, 0}, numeric.TripleRoot},
		{"chain counts as triple", [3]complex128{0, 0.9e-9, 1.8e-9}, numeric.TripleRoot},
		{"complex conjugates are distinct", [3]complex128{-1, complex(0.5, 0.8), complex(0.5, -0.8)}, numeric.Distinct},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, numeric.Classify3(tc.roots, eps))
		})
	}
}

// TestDegeneracyString covers the Stringer and Degenerate helper.
func TestDegeneracyString(t *testing.T) {
	assert.Equal(t, "distinct", numeric.Distinct.String())
	assert.Equal(t, "double root", numeric.DoubleRoot.String())
	assert.Equal(t, "triple root", numeric.TripleRoot.String())
	assert.Equal(t, "unknown", numeric.Degeneracy(42).String())

	assert.False(t, numeric.Distinct.Degenerate())
	assert.True(t, numeric.DoubleRoot.Degenerate())
	assert.True(t, numeric.TripleRoot.Degenerate())
}
