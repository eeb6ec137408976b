package hankel

// Worker pool sizing
const (
	minWorkers      = 1 // Lower bound on the worker count
	reservedWorkers = 1 // Parallelism left to the calling goroutine
)

// Numerical limits
const (
	// minBesselMagnitude is the smallest |J₁(c[i])| accepted as a denominator.
	// Smaller values mean c[i] sits on a root of J₁ instead of J₀.
	minBesselMagnitude = 1e-12
)

// Kernel constants
const (
	kernelNumerator = 2.0 // Bessel_Jn = |J₁(c[k])| / (2/c[N])
	bandwidthFactor = 2.0 // V = c[N] / (2πR)
)
