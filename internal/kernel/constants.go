package kernel

// Numerical thresholds for the fitting stages.
const (
	// MinSamples is the smallest sample count the fit supports.
	// Two slopes per side are needed for the boundary extrapolation.
	MinSamples = 3

	// minSpacing is the smallest allowed gap between adjacent sample
	// abscissas. Below this the secant slope is numerically unstable.
	minSpacing = 1e-12

	// slopeEps is the threshold below which both neighboring slope
	// differences count as negligible and the node slope falls back to a
	// plain average instead of the weighted one.
	slopeEps = 1e-9
)
