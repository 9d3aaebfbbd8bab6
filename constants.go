package akima

import "github.com/tphakala/go-akima/internal/kernel"

// Version is the library version.
const Version = "1.0.1"

// MinSamples is the smallest sample count the interpolator accepts. Akima's
// boundary extrapolation needs two secant slopes per side, which three
// samples provide.
const MinSamples = kernel.MinSamples

// Defaults for axis-wise interpolation.
const (
	// defaultAxis selects the last axis, matching the common convention for
	// row-major numerical data.
	defaultAxis = -1

	// parallelLaneThreshold is the minimum lane count before parallel
	// processing is worth the goroutine overhead.
	parallelLaneThreshold = 2
)
