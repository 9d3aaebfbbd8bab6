// Package akima provides one-dimensional Akima spline interpolation in pure Go.
//
// The library implements the method described in:
//
//	A new method of interpolation and smooth curve fitting based on local
//	procedures. Hiroshi Akima, J. ACM, October 1970, 17(4), 589-602.
//
// A continuously differentiable sub-spline is built from piecewise cubic
// polynomials whose node slopes are local weighted averages of neighboring
// secant slopes. The interpolant passes through every data point and suppresses
// the overshoot that global cubic splines show near sharp local features.
//
// # Features
//
//   - Local-procedure fitting: each node slope depends on four neighboring
//     segments only, so outliers stay local
//   - Boundary handling via Akima's original two-point quadratic extrapolation,
//     with no special-cased endpoint formulas
//   - O(n + m) evaluation for sorted queries, O(m log n) for arbitrary order
//   - Axis-wise interpolation over N-dimensional arrays with optional
//     parallel lane processing
//   - Uniform-rate signal resampling helpers
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For one-shot interpolation:
//
//	out, err := akima.Interpolate(x, y, xNew)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated evaluation of one sample set, fit once and reuse:
//
//	s, err := akima.NewSpline(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := s.Eval(2.5)
//	grid := s.EvalAll(akima.Grid(0, 10, 200))
//
// # Requirements on the data
//
// Sample abscissas must be strictly increasing with at least [MinSamples]
// points; adjacent values closer than 1e-12 fail with [ErrDegenerateSpacing].
// Query points may lie in any order and outside the sample range: out-of-range
// queries evaluate the nearest boundary segment's cubic (true extrapolation,
// not clamping).
//
// # Multi-dimensional data
//
// [InterpolateAxis] interpolates an N-dimensional [Array] along one axis,
// running the one-dimensional fit once per lane orthogonal to that axis.
// Lanes are independent, so they can be processed in parallel:
//
//	out, err := akima.InterpolateAxis(x, y, xNew, &akima.AxisOptions{
//	    Axis:     0,
//	    Parallel: true,
//	})
//
// # Thread Safety
//
// A fitted [Spline] is immutable and safe for concurrent evaluation from
// multiple goroutines. Fitting allocates a scratch buffer per call and shares
// no state between calls.
package akima
