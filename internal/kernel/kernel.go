// Package kernel implements Akima's piecewise-cubic interpolation method.
//
// A continuously differentiable sub-spline is built from local weighted
// averages of neighboring secant slopes, following:
//
//	A new method of interpolation and smooth curve fitting based on local
//	procedures. Hiroshi Akima, J. ACM, October 1970, 17(4), 589-602.
package kernel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDegenerateSpacing indicates that two adjacent sample abscissas are
// closer than the minimum spacing, making the secant slope undefined or
// numerically unstable.
var ErrDegenerateSpacing = errors.New("degenerate x spacing")

// Fit holds the per-segment cubic coefficients of a fitted Akima spline.
// A Fit is immutable after construction and safe for concurrent evaluation.
//
// On segment i, with t = q - x[i], the interpolant is
//
//	y(q) = c0[i] + slope[i]*t + c1[i]*t^2 + c2[i]*t^3
//
// where slope[i] is the blended node slope at the left endpoint.
type Fit struct {
	x     []float64 // sample abscissas, private copy
	c0    []float64 // constant term per segment (sample ordinate)
	c1    []float64 // quadratic correction per segment
	c2    []float64 // cubic correction per segment
	slope []float64 // blended node slopes, one per sample
}

// New fits an Akima spline through the samples (x[i], y[i]).
//
// Callers must guarantee len(x) == len(y) and len(x) >= MinSamples, with x
// strictly increasing. Gaps smaller than the minimum spacing fail with
// ErrDegenerateSpacing; no partial result is produced. The input slices are
// not retained.
func New(x, y []float64) (*Fit, error) {
	n := len(x)

	// Secant slopes between adjacent samples, stored at m[2..n]. The buffer
	// carries two extrapolated slopes on each side so the blending rule
	// below applies uniformly at the boundary nodes.
	m := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		dx := x[i+1] - x[i]
		if dx < minSpacing {
			return nil, fmt.Errorf("%w: x[%d]=%g, x[%d]=%g",
				ErrDegenerateSpacing, i, x[i], i+1, x[i+1])
		}
		m[i+2] = (y[i+1] - y[i]) / dx
	}

	// Synthesize two virtual points beyond each end by fitting a quadratic
	// through the three outermost samples. The virtual secant slopes reduce
	// to a linear recurrence on the real ones.
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m[n+1] = 2*m[n] - m[n-1]
	m[n+2] = 2*m[n+1] - m[n]

	// Node slopes: Akima's weighted average of the two secant slopes
	// meeting at the node, weighted by the slope change of the opposite
	// neighbor pair. Flat or collinear neighborhoods take the plain average
	// to avoid dividing by a vanishing weight sum.
	slope := make([]float64, n)
	for i := range slope {
		d0 := math.Abs(m[i+3] - m[i+2])
		d1 := math.Abs(m[i+1] - m[i])
		if d0+d1 < slopeEps {
			slope[i] = 0.5 * (m[i+1] + m[i+2])
		} else {
			slope[i] = (d0*m[i+1] + d1*m[i+2]) / (d0 + d1)
		}
	}

	// Hermite coefficients per segment from the node slopes at both ends
	// and the secant slope across the segment.
	f := &Fit{
		x:     append([]float64(nil), x...),
		c0:    make([]float64, n-1),
		c1:    make([]float64, n-1),
		c2:    make([]float64, n-1),
		slope: slope,
	}
	for i := 0; i < n-1; i++ {
		dx := x[i+1] - x[i]
		s := m[i+2]
		f.c0[i] = y[i]
		f.c1[i] = (3*s - 2*slope[i] - slope[i+1]) / dx
		f.c2[i] = (slope[i] + slope[i+1] - 2*s) / (dx * dx)
	}

	return f, nil
}

// Len returns the number of samples the spline was fitted through.
func (f *Fit) Len() int { return len(f.x) }

// Domain returns the abscissa range covered by the samples.
func (f *Fit) Domain() (lo, hi float64) {
	return f.x[0], f.x[len(f.x)-1]
}

// Eval evaluates the spline at a single query point. Queries outside the
// sample range evaluate the nearest boundary segment's cubic, extrapolating
// rather than clamping.
func (f *Fit) Eval(q float64) float64 {
	return f.evalSegment(f.segment(q), q)
}

// EvalAll evaluates the spline at every query point, writing results to dst
// index-aligned with queries. If dst is nil a new slice is allocated; it is
// returned either way.
//
// A forward cursor tracks the containing segment, so non-decreasing queries
// evaluate in O(n + m). When a query moves backwards the cursor re-seats by
// binary search, so arbitrary order costs at most O(m log n).
func (f *Fit) EvalAll(dst, queries []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(queries))
	}
	last := len(f.x) - 2
	i := 0
	prev := math.Inf(-1)
	for k, q := range queries {
		if q < prev {
			i = f.segment(q)
		} else {
			for i < last && q > f.x[i+1] {
				i++
			}
		}
		prev = q
		dst[k] = f.evalSegment(i, q)
	}
	return dst
}

// segment returns the index of the segment whose cubic evaluates q: the
// largest i with x[i] <= q, clamped to the boundary segments for queries
// outside the sample range.
func (f *Fit) segment(q float64) int {
	i := sort.SearchFloat64s(f.x, q) - 1
	if i < 0 {
		return 0
	}
	if last := len(f.x) - 2; i > last {
		return last
	}
	return i
}

func (f *Fit) evalSegment(i int, q float64) float64 {
	t := q - f.x[i]
	return ((f.c2[i]*t+f.c1[i])*t+f.slope[i])*t + f.c0[i]
}
