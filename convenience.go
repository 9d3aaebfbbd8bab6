package akima

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid returns n evenly spaced points spanning [lo, hi] inclusive.
// It is a convenience for building query grids; n must be at least 2.
func Grid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// InterpolateAt fits a spline through the samples and evaluates it at a
// single point. When evaluating more than one point, fit once with NewSpline
// and reuse it instead.
func InterpolateAt(x, y []float64, q float64) (float64, error) {
	s, err := NewSpline(x, y)
	if err != nil {
		return 0, err
	}
	return s.Eval(q), nil
}

// ResampleUniform treats y as a signal sampled uniformly at srcRate and
// returns it resampled to dstRate using Akima interpolation. The output
// length is ceil(len(y) * dstRate / srcRate); output samples beyond the last
// input sample extrapolate the final segment's cubic.
//
// Akima resampling is an interpolation, not a bandlimited filter: use it for
// smooth data and modest rate changes, not for heavy downsampling of
// broadband signals.
func ResampleUniform(y []float64, srcRate, dstRate float64) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: srcRate=%g, dstRate=%g", ErrInvalidRate, srcRate, dstRate)
	}
	n := len(y)
	if n < MinSamples {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewSamples, n, MinSamples)
	}

	x := floats.Span(make([]float64, n), 0, float64(n-1)/srcRate)

	outLen := int(math.Ceil(float64(n) * dstRate / srcRate))
	if outLen < 2 {
		outLen = 2
	}
	queries := floats.Span(make([]float64, outLen), 0, float64(outLen-1)/dstRate)

	return Interpolate(x, y, queries)
}
