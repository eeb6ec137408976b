// Package mathutil provides Bessel function helpers for the Hankel transform.
package mathutil

import (
	"math"
)

// AbsBesselJ1 writes |J₁(x[i])| into dst[i] for every element of x.
// dst must be at least as long as x.
//
// The magnitude is taken because the transform uses J₁ only as a
// normalization, and its sign alternates between consecutive J₀ roots.
func AbsBesselJ1(dst, x []float64) {
	for i, v := range x {
		dst[i] = math.Abs(math.J1(v))
	}
}

// BesselJ0Zero returns the k-th positive root of J₀ (k starts at 1).
//
// The root is seeded with McMahon's asymptotic expansion
//
//	j ≈ β + 1/(8β) - 31/(384β³) + 3779/(15360β⁵),  β = (k - 1/4)π
//
// and refined with Newton's method using J₀'(x) = -J₁(x).
// Accuracy: within a few ulps for all k ≥ 1.
func BesselJ0Zero(k int) float64 {
	if k < 1 {
		return math.NaN()
	}

	beta := (float64(k) - mcMahonPhaseOffset) * math.Pi
	b2 := beta * beta
	x := beta + 1/(mcMahonCoeff1*beta) -
		mcMahonCoeff2/(mcMahonCoeff3*beta*b2) +
		mcMahonCoeff4/(mcMahonCoeff5*beta*b2*b2)

	for range maxNewtonIterations {
		// x_{n+1} = x_n - J₀(x)/J₀'(x) = x_n + J₀(x)/J₁(x)
		step := math.J0(x) / math.J1(x)
		x += step
		if math.Abs(step) <= newtonTolerance*x {
			break
		}
	}

	return x
}

// BesselJ0Zeros returns the first n positive roots of J₀ in ascending order.
//
// A QDHT of N samples needs N+1 roots: the first N give the sample
// abscissas and the last one is the normalization constant.
func BesselJ0Zeros(n int) []float64 {
	if n <= 0 {
		return nil
	}
	zeros := make([]float64, n)
	for i := range zeros {
		zeros[i] = BesselJ0Zero(i + 1)
	}
	return zeros
}
