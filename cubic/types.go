// Package cubic defines options, results and sentinel errors for the
// closed-form (Cardano) cubic solver.
package cubic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/polysolve/numeric"
)

// Sentinel errors returned by Solve and SolveComplex.
var (
	// ErrInvalidInput indicates a zero leading coefficient or a NaN/±Inf
	// coefficient.
	ErrInvalidInput = errors.New("cubic: invalid input")

	// ErrInvalidResult indicates that at least one root carries a
	// non-negligible imaginary part while real roots were required.
	ErrInvalidResult = errors.New("cubic: result is not real")

	// ErrDegenerate is returned together with the roots when
	// WithRejectDegenerate is set and two or more roots coincide.
	ErrDegenerate = errors.New("cubic: degenerate (repeated) root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cubic: invalid option supplied")
)

// Roots is the real solution of a·x³ + b·x² + c·x + d = 0 in Cardano order:
//
//	X1 = s + t − b/3a
//	X2 = −(s+t)/2 − b/3a + i·(√3/2)·(s−t)
//	X3 = −(s+t)/2 − b/3a − i·(√3/2)·(s−t)
//
// Roots reported as repeated by Degeneracy agree within Epsilon, not
// necessarily bit for bit.
type Roots struct {
	X1, X2, X3 float64
	Degeneracy numeric.Degeneracy
}

// Slice returns the roots in order [X1, X2, X3].
func (r Roots) Slice() []float64 {
	return []float64{r.X1, r.X2, r.X3}
}

// Distinct returns the roots with coinciding values collapsed, keeping
// the first occurrence in Cardano order. For a DoubleRoot the closest
// pair is the coinciding one.
func (r Roots) Distinct() []float64 {
	xs := r.Slice()
	switch r.Degeneracy {
	case numeric.TripleRoot:
		return xs[:1]
	case numeric.DoubleRoot:
		drop, best := 1, math.Abs(xs[0]-xs[1])
		if d := math.Abs(xs[0] - xs[2]); d < best {
			drop, best = 2, d
		}
		if d := math.Abs(xs[1] - xs[2]); d < best {
			drop = 2
		}

		return append(xs[:drop:drop], xs[drop+1:]...)
	default:
		return xs
	}
}

// ComplexRoots is the unrestricted solution returned by SolveComplex.
type ComplexRoots struct {
	X          [3]complex128
	Degeneracy numeric.Degeneracy
}

// Option configures the solver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the numeric policy and callbacks of a single solve.
type Options struct {
	// Epsilon is the relative tolerance for the realness check and for
	// pairwise root comparison.
	Epsilon float64

	// OnDegenerate, if set, is called once when two or more roots coincide.
	OnDegenerate func(kind numeric.Degeneracy, roots []complex128)

	// RejectDegenerate turns a repeated root into ErrDegenerate.
	RejectDegenerate bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Epsilon = numeric.DefaultEpsilon,
// no hook and RejectDegenerate = false.
func DefaultOptions() Options {
	return Options{
		Epsilon: numeric.DefaultEpsilon,
	}
}

// WithEpsilon sets the tolerance. eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: epsilon must be finite and positive, got %g", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithOnDegenerate installs a notification hook for repeated roots.
// A nil fn is ignored.
func WithOnDegenerate(fn func(kind numeric.Degeneracy, roots []complex128)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDegenerate = fn
		}
	}
}

// WithRejectDegenerate makes Solve return ErrDegenerate (alongside the
// roots) when two or more roots coincide.
func WithRejectDegenerate() Option {
	return func(o *Options) {
		o.RejectDegenerate = true
	}
}
