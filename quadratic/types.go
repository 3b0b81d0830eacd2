// Package quadratic defines options, results and sentinel errors for the
// closed-form quadratic solver.
package quadratic

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
	ErrInvalidInput = errors.New("quadratic: invalid input")

	// ErrInvalidResult indicates that the equation has no real solution:
	// a root carries a non-negligible imaginary part.
	ErrInvalidResult = errors.New("quadratic: result is not real")

	// ErrDegenerate is returned together with the roots when
	// WithRejectDegenerate is set and both roots coincide.
	ErrDegenerate = errors.New("quadratic: degenerate (repeated) root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quadratic: invalid option supplied")
)

// Roots is the real solution of a·x² + b·x + c = 0.
//
// X1 is the "+√D" root and X2 the "−√D" root. Degeneracy is DoubleRoot
// when X1 and X2 agree within Epsilon; they are bit-identical only when the
// discriminant itself was snapped to zero.
type Roots struct {
	X1, X2     float64
	Degeneracy numeric.Degeneracy
}

// Slice returns the roots in order [X1, X2].
func (r Roots) Slice() []float64 {
	return []float64{r.X1, r.X2}
}

// Distinct returns the distinct roots: one value for a double root,
// two otherwise.
func (r Roots) Distinct() []float64 {
	if r.Degeneracy.Degenerate() {
		return []float64{r.X1}
	}

	return r.Slice()
}

// ComplexRoots is the unrestricted solution returned by SolveComplex.
type ComplexRoots struct {
	X          [2]complex128
	Degeneracy numeric.Degeneracy
}

// Option configures the solver via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the numeric policy and callbacks of a single solve.
type Options struct {
	// Epsilon is the relative tolerance for the realness check and for
	// comparing the two roots.
	Epsilon float64

	// OnDegenerate, if set, is called once when the roots coincide.
	// It receives the degeneracy kind and the computed (complex) roots.
	OnDegenerate func(kind numeric.Degeneracy, roots []complex128)

	// RejectDegenerate turns a repeated root into ErrDegenerate.
	RejectDegenerate bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Epsilon:          numeric.DefaultEpsilon
//   - OnDegenerate:     nil (no notification)
//   - RejectDegenerate: false (a double root is a valid result)
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
// roots) when both roots coincide.
func WithRejectDegenerate() Option {
	return func(o *Options) {
		o.RejectDegenerate = true
	}
}
