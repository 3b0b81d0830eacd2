package quadratic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polysolve/numeric"
)

// Solve returns the two real roots of a·x² + b·x + c = 0.
//
// Algorithm:
//  0. a, b, c are rescaled by a power of two so that none exceeds 1.
//  1. D = b² − 4ac. If |D| ≤ DiscriminantEpsilon·max(b², |4ac|) then D = 0
//     (the cancellation residue of a double root).
//  2. √D is taken in ℂ, so negative D yields an imaginary square root.
//  3. X1 = (−b + √D) / 2a, X2 = (−b − √D) / 2a. For D ≥ 0 the smaller root
//     is recovered from the product c/a instead of the difference.
//  4. Realness: every root must be finite and satisfy numeric.IsReal under
//     Epsilon.
//
// Errors (in order of precedence):
//   - ErrOptionViolation — an Option was invalid.
//   - ErrInvalidInput    — a == 0, or a coefficient is NaN/±Inf.
//   - ErrInvalidResult   — D < 0 (no real roots), or a root overflows float64.
//   - ErrDegenerate      — only with WithRejectDegenerate; roots are still returned.
//
// Example:
//
//	r, err := quadratic.Solve(1, 2, 0) // r.X1 == 0, r.X2 == -2
func Solve(a, b, c float64, opts ...Option) (Roots, error) {
	cfg, x, kind, err := solve(a, b, c, opts)
	if err != nil {
		return Roots{}, err
	}

	real2, ok := numeric.ToReal2(x, cfg.Epsilon)
	if !ok {
		return Roots{}, fmt.Errorf("%w: a=%g b=%g c=%g roots=%v", ErrInvalidResult, a, b, c, x)
	}

	roots := Roots{X1: real2[0], X2: real2[1], Degeneracy: kind}

	return roots, notify(cfg, kind, x)
}

// SolveComplex is Solve without the realness postcondition: for a negative
// discriminant it returns the conjugate pair (−b ± i·√|D|) / 2a.
func SolveComplex(a, b, c float64, opts ...Option) (ComplexRoots, error) {
	cfg, x, kind, err := solve(a, b, c, opts)
	if err != nil {
		return ComplexRoots{}, err
	}

	return ComplexRoots{X: x, Degeneracy: kind}, notify(cfg, kind, x)
}

// solve validates inputs and runs the quadratic formula in ℂ.
func solve(a, b, c float64, opts []Option) (Options, [2]complex128, numeric.Degeneracy, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, [2]complex128{}, numeric.Distinct, cfg.err
	}

	if a == 0 {
		return cfg, [2]complex128{}, numeric.Distinct, fmt.Errorf("%w: leading coefficient is zero", ErrInvalidInput)
	}
	if !numeric.IsFinite(a, b, c) {
		return cfg, [2]complex128{}, numeric.Distinct, fmt.Errorf("%w: non-finite coefficient a=%g b=%g c=%g", ErrInvalidInput, a, b, c)
	}

	n := [3]float64{a, b, c}
	numeric.Normalize(n[:])
	a, b, c = n[0], n[1], n[2]

	bb, ac4 := b*b, 4*a*c
	disc := bb - ac4
	snapped := numeric.NearZero(disc, math.Max(bb, math.Abs(ac4)), numeric.DiscriminantEpsilon)
	if snapped {
		disc = 0
	}

	var x [2]complex128
	if disc < 0 {
		re, im := -b/(2*a), math.Sqrt(-disc)/(2*a)
		x = [2]complex128{complex(re, im), complex(re, -im)}
	} else {
		x = realPair(a, b, c, math.Sqrt(disc))
	}
	for _, z := range x {
		if !numeric.IsFinite(real(z), imag(z)) {
			return cfg, x, numeric.Distinct, fmt.Errorf("%w: root %v is out of float64 range", ErrInvalidResult, z)
		}
	}

	kind := numeric.Classify2(x, cfg.Epsilon)
	if snapped {
		kind = numeric.DoubleRoot
	}

	return cfg, x, kind, nil
}

// realPair returns ((−b + sq)/2a, (−b − sq)/2a) for sq = √D ≥ 0.
//
// With w = −(b + sign(b)·sq)/2 the root of larger magnitude is w/a and its
// partner is c/w, so −b and ±sq are never subtracted from each other.
func realPair(a, b, c, sq float64) [2]complex128 {
	w := -(b + math.Copysign(sq, b)) / 2
	if w == 0 {
		// b = 0 and D = 0 force c = 0: a double root at the origin.
		return [2]complex128{0, 0}
	}

	big, small := w/a, c/w
	if sq == 0 {
		return [2]complex128{complex(big, 0), complex(big, 0)}
	}
	if small == 0 {
		small = 0 // no −0 from a zero c
	}
	if math.Signbit(b) {
		return [2]complex128{complex(big, 0), complex(small, 0)}
	}

	return [2]complex128{complex(small, 0), complex(big, 0)}
}

// notify fires the degeneracy hook and applies the reject policy.
func notify(cfg Options, kind numeric.Degeneracy, x [2]complex128) error {
	if !kind.Degenerate() {
		return nil
	}
	if cfg.OnDegenerate != nil {
		cfg.OnDegenerate(kind, x[:])
	}
	if cfg.RejectDegenerate {
		return fmt.Errorf("%w: %s at %v", ErrDegenerate, kind, x[0])
	}

	return nil
}
