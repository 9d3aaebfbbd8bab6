package akima

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-akima/internal/kernel"
)

// Common errors returned by the interpolator.
var (
	// ErrDegenerateSpacing indicates adjacent x samples closer than the
	// minimum spacing, making the secant slope numerically unstable.
	ErrDegenerateSpacing = kernel.ErrDegenerateSpacing

	// ErrTooFewSamples indicates fewer than MinSamples data points.
	ErrTooFewSamples = errors.New("too few samples")

	// ErrLengthMismatch indicates x and y slices of different lengths.
	ErrLengthMismatch = errors.New("sample length mismatch")

	// ErrInvalidAxis indicates an interpolation axis outside the array rank.
	ErrInvalidAxis = errors.New("invalid interpolation axis")

	// ErrShapeMismatch indicates incompatible array shapes.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("invalid sample rate")
)

// Interpolate fits an Akima spline through the samples (x[i], y[i]) and
// evaluates it at every point of xNew, returning the interpolated values
// index-aligned with xNew.
//
// x must be strictly increasing with at least MinSamples points and
// len(x) == len(y). xNew may be in any order; sorted queries evaluate
// fastest. Queries outside [x[0], x[n-1]] extrapolate the boundary cubic.
func Interpolate(x, y, xNew []float64) ([]float64, error) {
	s, err := NewSpline(x, y)
	if err != nil {
		return nil, err
	}
	return s.EvalAll(xNew), nil
}

// Spline is a fitted Akima spline. It is immutable after construction and
// safe for concurrent evaluation from multiple goroutines.
type Spline struct {
	fit *kernel.Fit
}

// NewSpline fits an Akima spline through the samples (x[i], y[i]).
// The input slices are not retained and may be reused by the caller.
func NewSpline(x, y []float64) (*Spline, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d",
			ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < MinSamples {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			ErrTooFewSamples, len(x), MinSamples)
	}

	fit, err := kernel.New(x, y)
	if err != nil {
		return nil, err
	}
	return &Spline{fit: fit}, nil
}

// Eval evaluates the spline at a single point.
func (s *Spline) Eval(q float64) float64 {
	return s.fit.Eval(q)
}

// EvalAll evaluates the spline at every query point and returns the results
// index-aligned with queries.
func (s *Spline) EvalAll(queries []float64) []float64 {
	return s.fit.EvalAll(nil, queries)
}

// EvalAllInto is like EvalAll but writes results into dst, which must have
// the same length as queries. It returns dst. Use this to avoid per-call
// allocations when evaluating repeatedly.
func (s *Spline) EvalAllInto(dst, queries []float64) ([]float64, error) {
	if len(dst) != len(queries) {
		return nil, fmt.Errorf("%w: len(dst)=%d, len(queries)=%d",
			ErrLengthMismatch, len(dst), len(queries))
	}
	return s.fit.EvalAll(dst, queries), nil
}

// Domain returns the abscissa range covered by the fitted samples.
func (s *Spline) Domain() (lo, hi float64) {
	return s.fit.Domain()
}

// Len returns the number of samples the spline was fitted through.
func (s *Spline) Len() int {
	return s.fit.Len()
}
