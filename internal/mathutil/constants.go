package mathutil

// McMahon expansion for the roots of J₀.
// Abramowitz & Stegun 9.5.12 with μ = 4ν² = 0:
//
//	j ≈ β + 1/(8β) - 31/(384β³) + 3779/(15360β⁵)
const (
	mcMahonPhaseOffset = 0.25 // β = (k - 1/4)π

	mcMahonCoeff1 = 8.0
	mcMahonCoeff2 = 31.0
	mcMahonCoeff3 = 384.0
	mcMahonCoeff4 = 3779.0
	mcMahonCoeff5 = 15360.0
)

// Newton refinement limits.
const (
	maxNewtonIterations = 8
	newtonTolerance     = 1e-16 // relative step size at which refinement stops
)
