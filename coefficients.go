package hankel

import (
	"fmt"
	"math"

	"github.com/tphakala/go-hankel/internal/mathutil"
	"github.com/tphakala/go-hankel/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// coefficients holds everything derived from one call's inputs.
// Nothing here outlives the call that built it.
type coefficients struct {
	n      int // samples
	nzeros int // truncation order

	zeros     []float64 // c[0..n], c[n] is the normalization root
	bandwidth float64   // V = c[n]/(2πR)

	m2  []float64 // frequency-domain per-sample scaling, m1·R/V
	fRe []float64 // pre-scaled input F = h/m1, real part
	fIm []float64 // pre-scaled input F = h/m1, imaginary part
	jn  []float64 // Bessel_Jn, |J₁(c[k])|·c[n]/2 for k < nzeros
	jm  []float64 // Bessel_Jm, |J₁(c[j])| for j < n
}

// validateInputs checks the preconditions shared by every entry point and
// returns the effective truncation order.
func validateInputs(n int, radius float64, zeros []float64, nzeros int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: no samples", ErrInvalidInput)
	}

	if !(radius > 0) || math.IsInf(radius, 1) {
		return 0, fmt.Errorf("%w: radius must be positive and finite, got %v", ErrInvalidInput, radius)
	}

	if len(zeros) < n+1 {
		return 0, fmt.Errorf("%w: zero table has %d entries, need at least %d for %d samples",
			ErrInvalidInput, len(zeros), n+1, n)
	}

	if nzeros <= 0 {
		nzeros = n
	}
	if nzeros > n {
		return 0, fmt.Errorf("%w: truncation order %d exceeds sample count %d", ErrInvalidInput, nzeros, n)
	}

	table := zeros[:n+1]
	if floats.HasNaN(table) {
		return 0, fmt.Errorf("%w: zero table contains NaN", ErrInvalidInput)
	}
	if lowest := floats.Min(table); lowest <= 0 {
		return 0, fmt.Errorf("%w: zero table entries must be positive, found %v", ErrInvalidInput, lowest)
	}
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			return 0, fmt.Errorf("%w: zero table not strictly increasing at index %d (%v <= %v)",
				ErrInvalidInput, i, table[i], table[i-1])
		}
	}
	if math.IsInf(table[n], 1) {
		return 0, fmt.Errorf("%w: zero table entry %d is infinite", ErrInvalidInput, n)
	}

	return nzeros, nil
}

func bandwidth(radius, norm float64) float64 {
	return norm / (bandwidthFactor * math.Pi * radius)
}

// newCoefficients derives the scaling vectors and Bessel tables for one
// transform of h.
func newCoefficients(h []complex128, radius float64, zeros []float64, nzeros int) (*coefficients, error) {
	n := len(h)
	nzeros, err := validateInputs(n, radius, zeros, nzeros)
	if err != nil {
		return nil, err
	}

	norm := zeros[n]
	c := &coefficients{
		n:         n,
		nzeros:    nzeros,
		zeros:     zeros[:n+1],
		bandwidth: bandwidth(radius, norm),
		m2:        make([]float64, n),
		fRe:       make([]float64, n),
		fIm:       make([]float64, n),
		jn:        make([]float64, nzeros),
		jm:        make([]float64, n),
	}

	// Magnitudes first: every later division is by a strictly positive value
	mathutil.AbsBesselJ1(c.jm, c.zeros[:n])
	for i, v := range c.jm {
		if v < minBesselMagnitude {
			return nil, fmt.Errorf("%w: |J1(c[%d]=%v)| = %e vanishes, zero table must hold roots of J0",
				ErrNumerical, i, c.zeros[i], v)
		}
	}

	m1 := make([]float64, n)
	simdops.Scale(m1, c.jm, 1/radius)
	simdops.Scale(c.m2, m1, radius/c.bandwidth)

	simdops.Split(c.fRe, c.fIm, h)
	for i, m := range m1 {
		c.fRe[i] /= m
		c.fIm[i] /= m
	}

	simdops.Scale(c.jn, c.jm[:nzeros], norm/kernelNumerator)

	return c, nil
}
