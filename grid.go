package hankel

import (
	"github.com/tphakala/go-hankel/internal/simdops"
)

// Bandwidth returns the spatial-frequency extent V = c[n]/(2πR) of an
// n-sample transform over the given radius.
func Bandwidth(radius float64, zeros []float64, n int) (float64, error) {
	if _, err := validateInputs(n, radius, zeros, 0); err != nil {
		return 0, err
	}
	return bandwidth(radius, zeros[n]), nil
}

// RadialPositions returns the sample radii r[i] = c[i]·R/c[n] at which the
// input of an n-sample transform must be taken.
func RadialPositions(radius float64, zeros []float64, n int) ([]float64, error) {
	if _, err := validateInputs(n, radius, zeros, 0); err != nil {
		return nil, err
	}
	r := make([]float64, n)
	simdops.Scale(r, zeros[:n], radius/zeros[n])
	return r, nil
}

// FrequencyPositions returns the spatial frequencies ν[i] = c[i]·V/c[n] at
// which the output of an n-sample transform is placed.
func FrequencyPositions(radius float64, zeros []float64, n int) ([]float64, error) {
	v, err := Bandwidth(radius, zeros, n)
	if err != nil {
		return nil, err
	}
	nu := make([]float64, n)
	simdops.Scale(nu, zeros[:n], v/zeros[n])
	return nu, nil
}
