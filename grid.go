package akima

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/tphakala/go-akima/internal/kernel"
)

// Array is a dense N-dimensional array of float64 values in row-major order.
// It is a strided view over a flat backing slice, so axis-wise interpolation
// can walk any axis without copying the whole array.
type Array struct {
	data   []float64
	shape  []int
	stride []int
}

// NewArray allocates a zero-filled array with the given shape.
// Dimensions must be non-negative; a zero dimension yields an empty array.
func NewArray(shape ...int) (*Array, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: dimension %d must be non-negative", ErrShapeMismatch, d)
		}
		size *= d
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: array needs at least one dimension", ErrShapeMismatch)
	}
	return &Array{
		data:   make([]float64, size),
		shape:  append([]int(nil), shape...),
		stride: rowMajorStrides(shape),
	}, nil
}

// WrapArray creates an array view over an existing backing slice without
// copying. len(data) must equal the product of the shape dimensions.
// The caller must not resize data while the view is in use.
func WrapArray(data []float64, shape ...int) (*Array, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: dimension %d must be non-negative", ErrShapeMismatch, d)
		}
		size *= d
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: array needs at least one dimension", ErrShapeMismatch)
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: len(data)=%d does not match shape size %d",
			ErrShapeMismatch, len(data), size)
	}
	return &Array{
		data:   data,
		shape:  append([]int(nil), shape...),
		stride: rowMajorStrides(shape),
	}, nil
}

func rowMajorStrides(shape []int) []int {
	stride := make([]int, len(shape))
	s := 1
	for d := len(shape) - 1; d >= 0; d-- {
		stride[d] = s
		s *= shape[d]
	}
	return stride
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the array dimensions.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Data returns the flat row-major backing slice.
func (a *Array) Data() []float64 { return a.data }

// At returns the element at the given index, one value per dimension.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given index, one value per dimension.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("akima: got %d indices for rank-%d array", len(idx), len(a.shape)))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic(fmt.Sprintf("akima: index %d out of range for dimension %d (size %d)",
				i, d, a.shape[d]))
		}
		off += i * a.stride[d]
	}
	return off
}

// laneOffset returns the flat offset of the first element of the given lane,
// where lanes enumerate all index combinations of the non-axis dimensions in
// row-major order.
func (a *Array) laneOffset(axis, lane int) int {
	off := 0
	rem := lane
	for d := len(a.shape) - 1; d >= 0; d-- {
		if d == axis {
			continue
		}
		off += (rem % a.shape[d]) * a.stride[d]
		rem /= a.shape[d]
	}
	return off
}

// AxisOptions configures InterpolateAxis.
type AxisOptions struct {
	// Axis selects the dimension of y to interpolate along. Negative values
	// count from the last axis, so -1 is the last dimension.
	Axis int

	// Out optionally receives the result, avoiding an allocation. Its shape
	// must equal y's shape with the interpolation axis replaced by the
	// query count.
	Out *Array

	// Parallel enables concurrent lane processing. Lanes are independent,
	// so results are bit-identical to sequential processing.
	Parallel bool

	// Workers bounds the number of goroutines used when Parallel is set.
	// Zero or negative uses GOMAXPROCS.
	Workers int
}

// InterpolateAxis interpolates an N-dimensional array along one axis.
//
// x holds the sample abscissas for that axis and must match its length; every
// one-dimensional lane of y along the axis is an independent sample set, fitted
// and evaluated at xNew. The result has y's shape with the axis dimension
// replaced by len(xNew).
//
// A nil opts interpolates along the last axis, sequentially, into a newly
// allocated array.
func InterpolateAxis(x []float64, y *Array, xNew []float64, opts *AxisOptions) (*Array, error) {
	if opts == nil {
		opts = &AxisOptions{Axis: defaultAxis}
	}

	axis := opts.Axis
	if axis < 0 {
		axis += y.Rank()
	}
	if axis < 0 || axis >= y.Rank() {
		return nil, fmt.Errorf("%w: axis %d for rank-%d array", ErrInvalidAxis, opts.Axis, y.Rank())
	}

	n := y.shape[axis]
	if len(x) != n {
		return nil, fmt.Errorf("%w: len(x)=%d, axis %d has size %d",
			ErrShapeMismatch, len(x), axis, n)
	}
	if n < MinSamples {
		return nil, fmt.Errorf("%w: got %d along axis %d, need at least %d",
			ErrTooFewSamples, n, axis, MinSamples)
	}

	outShape := y.Shape()
	outShape[axis] = len(xNew)
	out := opts.Out
	if out == nil {
		var err error
		if out, err = NewArray(outShape...); err != nil {
			return nil, err
		}
	} else if !shapeEqual(out.shape, outShape) {
		return nil, fmt.Errorf("%w: out shape %v, want %v", ErrShapeMismatch, out.shape, outShape)
	}

	lanes := len(y.data) / n
	var laneErr error
	if opts.Parallel && lanes >= parallelLaneThreshold {
		laneErr = interpolateLanesParallel(x, y, xNew, out, axis, lanes, opts.Workers)
	} else {
		laneErr = interpolateLanes(x, y, xNew, out, axis, 0, lanes)
	}
	if laneErr != nil {
		return nil, laneErr
	}
	return out, nil
}

// interpolateLanes processes lanes [lo, hi) sequentially, reusing one pair of
// gather/scatter buffers across the whole range.
func interpolateLanes(x []float64, y *Array, xNew []float64, out *Array, axis, lo, hi int) error {
	ybuf := make([]float64, len(x))
	obuf := make([]float64, len(xNew))

	for lane := lo; lane < hi; lane++ {
		if err := interpolateLane(x, y, xNew, out, axis, lane, ybuf, obuf); err != nil {
			return fmt.Errorf("lane %d: %w", lane, err)
		}
	}
	return nil
}

// interpolateLanesParallel splits the lane range across workers. Each worker
// owns its buffers; the first error wins and the remaining lanes of the
// failing worker are skipped.
func interpolateLanesParallel(x []float64, y *Array, xNew []float64, out *Array, axis, lanes, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > lanes {
		workers = lanes
	}
	chunk := (lanes + workers - 1) / workers

	var wg sync.WaitGroup
	var firstErr error
	var errMu sync.Mutex

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > lanes {
			hi = lanes
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			if err := interpolateLanes(x, y, xNew, out, axis, lo, hi); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(lo, hi)
	}
	wg.Wait()

	return firstErr
}

// interpolateLane fits and evaluates a single lane. The lane's samples are
// gathered into ybuf so the kernel sees contiguous data regardless of axis.
func interpolateLane(x []float64, y *Array, xNew []float64, out *Array, axis, lane int, ybuf, obuf []float64) error {
	base := y.laneOffset(axis, lane)
	str := y.stride[axis]
	for i := range ybuf {
		ybuf[i] = y.data[base+i*str]
	}

	fit, err := kernel.New(x, ybuf)
	if err != nil {
		return err
	}
	fit.EvalAll(obuf, xNew)

	obase := out.laneOffset(axis, lane)
	ostr := out.stride[axis]
	for k, v := range obuf {
		out.data[obase+k*ostr] = v
	}
	return nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
