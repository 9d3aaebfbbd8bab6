package akima

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-akima/internal/testutil"
)

func TestInterpolateReferenceValues(t *testing.T) {
	// Values from the original 1970 method applied to a minimal sample set.
	got, err := Interpolate(
		[]float64{0, 1, 2},
		[]float64{0, 0, 1},
		[]float64{0.5, 1.5},
	)
	require.NoError(t, err)
	testutil.AssertMaxDelta(t, []float64{-0.125, 0.375}, got, testutil.NodeTolerance)
}

func TestInterpolatePassesThroughSamples(t *testing.T) {
	x := []float64{0.1, 1.0, 2.7, 3.2, 5.9}
	y := []float64{-1.0, 4.2, 0.0, 1.1, -0.5}

	got, err := Interpolate(x, y, x)
	require.NoError(t, err)
	testutil.AssertMaxDelta(t, y, got, testutil.NodeTolerance)
}

func TestInterpolateValidation(t *testing.T) {
	cases := []struct {
		name    string
		x, y, q []float64
		wantErr error
	}{
		{
			name:    "too few samples",
			x:       []float64{0, 1},
			y:       []float64{0, 1},
			q:       []float64{0.5},
			wantErr: ErrTooFewSamples,
		},
		{
			name:    "length mismatch",
			x:       []float64{0, 1, 2},
			y:       []float64{0, 1},
			q:       []float64{0.5},
			wantErr: ErrLengthMismatch,
		},
		{
			name:    "duplicate abscissa",
			x:       []float64{0, 1, 1, 2},
			y:       []float64{0, 1, 2, 3},
			q:       []float64{0.5},
			wantErr: ErrDegenerateSpacing,
		},
		{
			name:    "decreasing abscissa",
			x:       []float64{0, 2, 1},
			y:       []float64{0, 1, 2},
			q:       []float64{0.5},
			wantErr: ErrDegenerateSpacing,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Interpolate(tc.x, tc.y, tc.q)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestInterpolateEmptyQueries(t *testing.T) {
	out, err := Interpolate([]float64{0, 1, 2}, []float64{0, 1, 0}, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSplineReuse(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 0, 1, 0}

	s, err := NewSpline(x, y)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())

	lo, hi := s.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 4.0, hi)

	sorted := s.EvalAll([]float64{0.5, 1.5, 2.5, 3.5})
	unsorted := s.EvalAll([]float64{3.5, 0.5, 2.5, 1.5})

	assert.Equal(t, sorted[0], unsorted[1])
	assert.Equal(t, sorted[1], unsorted[3])
	assert.Equal(t, sorted[2], unsorted[2])
	assert.Equal(t, sorted[3], unsorted[0])

	// Akima damping keeps the interpolant near the data range.
	testutil.AssertAllInRange(t, sorted, -1.5, 1.5)
}

func TestSplineEvalAllInto(t *testing.T) {
	s, err := NewSpline([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)

	queries := []float64{0.25, 0.75, 1.5}
	dst := make([]float64, len(queries))
	out, err := s.EvalAllInto(dst, queries)
	require.NoError(t, err)
	assert.Equal(t, &dst[0], &out[0], "expected dst to be reused")

	_, err = s.EvalAllInto(make([]float64, 2), queries)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSplineExtrapolation(t *testing.T) {
	s, err := NewSpline([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	require.NoError(t, err)

	// Out-of-range queries extrapolate the boundary cubic; they never fail
	// and are never clamped to the boundary value.
	left := s.Eval(-1)
	right := s.Eval(4)
	testutil.AssertNoNaNOrInf(t, []float64{left, right})
	assert.NotEqual(t, 0.0, left)
	assert.NotEqual(t, 9.0, right)

	// Point evaluation and sweep evaluation agree outside the domain too.
	swept := s.EvalAll([]float64{-1, 4})
	assert.Equal(t, left, swept[0])
	assert.Equal(t, right, swept[1])
}

func TestSplineSmoothFunction(t *testing.T) {
	// Densely sampled cosine: the interpolant should track the function
	// closely between nodes.
	x := Grid(0, 2*math.Pi, 100)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Cos(v)
	}

	s, err := NewSpline(x, y)
	require.NoError(t, err)

	// Akima slopes are second-order accurate, so expect O(h^3) error
	// between nodes (h ~ 0.063 here).
	const tol = 1e-3
	queries := Grid(0.1, 2*math.Pi-0.1, 333)
	got := s.EvalAll(queries)
	for i, q := range queries {
		assert.InDelta(t, math.Cos(q), got[i], tol, "q=%g", q)
	}
}
