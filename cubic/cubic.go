package cubic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polysolve/numeric"
)

// Solve returns the three real roots of a·x³ + b·x² + c·x + d = 0 using
// Cardano's method.
//
// Algorithm Outline:
//  0. Make the cubic monic and substitute x = k·y (k a power of two) so
//     that every coefficient lies in (−1, 1).
//  1. q = (3ac − b²)/9a², r = (9abc − 27a²d − 2b³)/54a³, each snapped to 0
//     when it is rounding residue of its own terms.
//  2. D = q³ + r² (snapped to 0 within DiscriminantEpsilon), √D in ℂ.
//  3. s = ∛(r + √D), t = ∛(r − √D) with branches paired so that s·t = −q.
//  4. X1 = s + t − b/3a,
//     X2,3 = −(s+t)/2 − b/3a ± i·(√3/2)·(s − t), scaled back by k.
//  5. Classify coinciding roots, then require every root to be finite and real.
//
// Errors (in order of precedence):
//   - ErrOptionViolation — an Option was invalid.
//   - ErrInvalidInput    — a == 0, or a coefficient is NaN/±Inf.
//   - ErrInvalidResult   — the cubic has a complex-conjugate pair of roots,
//     or a root overflows float64.
//   - ErrDegenerate      — only with WithRejectDegenerate; roots are still returned.
//
// Complexity: O(1) time and memory.
func Solve(a, b, c, d float64, opts ...Option) (Roots, error) {
	cfg, x, kind, err := solve(a, b, c, d, opts)
	if err != nil {
		return Roots{}, err
	}

	real3, ok := numeric.ToReal3(x, cfg.Epsilon)
	if !ok {
		return Roots{}, fmt.Errorf("%w: a=%g b=%g c=%g d=%g roots=%v", ErrInvalidResult, a, b, c, d, x)
	}

	roots := Roots{X1: real3[0], X2: real3[1], X3: real3[2], Degeneracy: kind}

	return roots, notify(cfg, kind, x)
}

// SolveComplex is Solve without the realness postcondition. For a cubic
// with one real root it returns that root alongside the conjugate pair,
// still in Cardano order.
func SolveComplex(a, b, c, d float64, opts ...Option) (ComplexRoots, error) {
	cfg, x, kind, err := solve(a, b, c, d, opts)
	if err != nil {
		return ComplexRoots{}, err
	}

	return ComplexRoots{X: x, Degeneracy: kind}, notify(cfg, kind, x)
}

// solve validates inputs and runs Cardano's method in ℂ.
func solve(a, b, c, d float64, opts []Option) (Options, [3]complex128, numeric.Degeneracy, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, [3]complex128{}, numeric.Distinct, cfg.err
	}

	if a == 0 {
		return cfg, [3]complex128{}, numeric.Distinct, fmt.Errorf("%w: leading coefficient is zero", ErrInvalidInput)
	}
	if !numeric.IsFinite(a, b, c, d) {
		return cfg, [3]complex128{}, numeric.Distinct, fmt.Errorf("%w: non-finite coefficient a=%g b=%g c=%g d=%g", ErrInvalidInput, a, b, c, d)
	}

	p2, p1, p0, k := monic(a, b, c, d)
	if math.IsInf(k, 0) {
		return cfg, [3]complex128{}, numeric.Distinct, fmt.Errorf("%w: roots of a=%g b=%g c=%g d=%g are out of float64 range", ErrInvalidResult, a, b, c, d)
	}

	q, r := depress(p2, p1, p0)
	s, t := branches(q, r)
	y := combine(s, t, p2/3)

	var x [3]complex128
	for i, z := range y {
		x[i] = complex(real(z)*k, imag(z)*k)
		if !numeric.IsFinite(real(x[i]), imag(x[i])) {
			return cfg, x, numeric.Distinct, fmt.Errorf("%w: root %v is out of float64 range", ErrInvalidResult, y[i])
		}
	}

	return cfg, x, numeric.Classify3(x, cfg.Epsilon), nil
}

// notify fires the degeneracy hook and applies the reject policy.
func notify(cfg Options, kind numeric.Degeneracy, x [3]complex128) error {
	if !kind.Degenerate() {
		return nil
	}
	if cfg.OnDegenerate != nil {
		cfg.OnDegenerate(kind, x[:])
	}
	if cfg.RejectDegenerate {
		return fmt.Errorf("%w: %s among %v", ErrDegenerate, kind, x)
	}

	return nil
}
