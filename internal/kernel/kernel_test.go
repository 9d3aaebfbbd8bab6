package kernel

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestFitPassesThroughSamples(t *testing.T) {
	x := []float64{0, 0.7, 1.3, 2.9, 4.0, 5.5, 6.1}
	y := []float64{1.2, -0.4, 3.3, 0.0, -2.1, 0.5, 0.9}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := f.EvalAll(nil, x)
	for i := range x {
		if diff := math.Abs(got[i] - y[i]); diff > 1e-12 {
			t.Errorf("node %d: got %v want %v (diff %g)", i, got[i], y[i], diff)
		}
	}
}

func TestC1Continuity(t *testing.T) {
	x := []float64{0, 1, 2.5, 3, 4.2, 5}
	y := []float64{0, 2, -1, 0.5, 0.5, 3}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// The left-hand derivative of segment i-1 at its right endpoint must
	// equal the blended node slope, which is the right-hand derivative of
	// segment i at its left endpoint.
	for i := 1; i < len(x)-1; i++ {
		dx := x[i] - x[i-1]
		left := f.slope[i-1] + 2*f.c1[i-1]*dx + 3*f.c2[i-1]*dx*dx
		right := f.slope[i]
		if diff := math.Abs(left - right); diff > 1e-9 {
			t.Errorf("node %d: left deriv %v != right deriv %v", i, left, right)
		}
	}
}

func TestLinearDataReproduction(t *testing.T) {
	const a, b = -1.75, 0.5
	x := []float64{0, 1, 2, 3.5, 5, 9}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = a*v + b
	}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for q := x[0]; q <= x[len(x)-1]; q += 0.083 {
		want := a*q + b
		if got := f.Eval(q); math.Abs(got-want) > 1e-12 {
			t.Fatalf("Eval(%g) = %v, want %v", q, got, want)
		}
	}
}

func TestQuadraticDataReproduction(t *testing.T) {
	// Uniformly spaced secant slopes of a parabola differ by a constant, so
	// the weighted average degenerates to the exact derivative and the
	// cubic reproduces the parabola.
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * v
	}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for q := 0.5; q < 5; q++ {
		if got := f.Eval(q); math.Abs(got-q*q) > 1e-6 {
			t.Errorf("Eval(%g) = %v, want %v", q, got, q*q)
		}
	}
}

func TestDegenerateSpacing(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
	}{
		{"duplicate", []float64{0, 1, 1, 2}},
		{"decreasing", []float64{0, 2, 1, 3}},
		{"below threshold", []float64{0, 1, 1 + 1e-13, 2}},
	}
	y := []float64{0, 1, 2, 3}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := New(tc.x, y)
			if !errors.Is(err, ErrDegenerateSpacing) {
				t.Fatalf("err = %v, want ErrDegenerateSpacing", err)
			}
			if f != nil {
				t.Fatal("expected no partial result")
			}
		})
	}
}

func TestMinimumSampleCount(t *testing.T) {
	// Three samples is the smallest fit: two segments, both boundary rules
	// exercised. Reference values from the original implementation.
	f, err := New([]float64{0, 1, 2}, []float64{0, 0, 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := f.EvalAll(nil, []float64{0.5, 1.5})
	want := []float64{-0.125, 0.375}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("query %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestNoOvershootOnOscillatingData(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 0, 1, 0}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for q := 0.0; q <= 4.0; q += 0.01 {
		if v := f.Eval(q); math.Abs(v) > 1.5 {
			t.Fatalf("Eval(%g) = %v overshoots data range [0,1]", q, v)
		}
	}
}

func TestExtrapolationBeyondDomain(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Queries outside the domain evaluate the boundary segment's cubic at
	// an out-of-range local coordinate.
	for _, q := range []float64{-1.5, -0.1, 3.1, 5} {
		i := 0
		if q > x[len(x)-1] {
			i = len(x) - 2
		}
		want := f.evalSegment(i, q)
		if got := f.Eval(q); got != want {
			t.Errorf("Eval(%g) = %v, want boundary cubic %v", q, got, want)
		}
		if got := f.EvalAll(nil, []float64{q})[0]; got != want {
			t.Errorf("EvalAll(%g) = %v, want boundary cubic %v", q, got, want)
		}
	}
}

func TestEvalAllUnsortedMatchesSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := make([]float64, len(x))
	for i := range y {
		y[i] = rng.NormFloat64()
	}

	f, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	queries := make([]float64, 200)
	for i := range queries {
		queries[i] = rng.Float64()*9 - 1 // includes out-of-domain points
	}

	got := f.EvalAll(nil, queries)
	for i, q := range queries {
		if want := f.Eval(q); got[i] != want {
			t.Errorf("query %d (%g): sweep %v != point eval %v", i, q, got[i], want)
		}
	}
}

func TestEvalAllReusesDst(t *testing.T) {
	f, err := New([]float64{0, 1, 2}, []float64{0, 1, 0})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dst := make([]float64, 3)
	out := f.EvalAll(dst, []float64{0, 1, 2})
	if &out[0] != &dst[0] {
		t.Error("EvalAll allocated a new slice despite dst being provided")
	}
}

func TestDomain(t *testing.T) {
	f, err := New([]float64{-2, 0, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	lo, hi := f.Domain()
	if lo != -2 || hi != 3 {
		t.Errorf("Domain() = (%g, %g), want (-2, 3)", lo, hi)
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, want 3", f.Len())
	}
}

func benchSamples(n int) (x, y []float64) {
	rng := rand.New(rand.NewSource(1))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = float64(i) + rng.Float64()*0.5
		y[i] = rng.NormFloat64()
	}
	return x, y
}

func BenchmarkFit(b *testing.B) {
	x, y := benchSamples(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvalAllSorted(b *testing.B) {
	x, y := benchSamples(1024)
	f, err := New(x, y)
	if err != nil {
		b.Fatal(err)
	}

	queries := make([]float64, 4096)
	lo, hi := f.Domain()
	for i := range queries {
		queries[i] = lo + (hi-lo)*float64(i)/float64(len(queries)-1)
	}
	dst := make([]float64, len(queries))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.EvalAll(dst, queries)
	}
}

func BenchmarkEvalAllUnsorted(b *testing.B) {
	x, y := benchSamples(1024)
	f, err := New(x, y)
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewSource(2))
	lo, hi := f.Domain()
	queries := make([]float64, 4096)
	for i := range queries {
		queries[i] = lo + (hi-lo)*rng.Float64()
	}
	dst := make([]float64, len(queries))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.EvalAll(dst, queries)
	}
}
