package hankel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-hankel/internal/mathutil"
	"github.com/tphakala/go-hankel/internal/testutil"
)

func TestBandwidth(t *testing.T) {
	zeros := []float64{2.405, 5.520, 8.654, 11.792, 14.931}

	v, err := Bandwidth(1.0, zeros, 4)
	require.NoError(t, err)
	testutil.AssertRelativeError(t, 14.931/(2*math.Pi), v, 1e-15)

	v, err = Bandwidth(2.0, zeros, 2)
	require.NoError(t, err)
	testutil.AssertRelativeError(t, 8.654/(4*math.Pi), v, 1e-15)

	_, err = Bandwidth(0, zeros, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Bandwidth(1, zeros, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestRadialPositions tests samples fall inside the aperture in ascending
// order with the expected spacing.
func TestRadialPositions(t *testing.T) {
	const (
		n      = 64
		radius = 3.0
	)
	zeros := mathutil.BesselJ0Zeros(n + 1)

	r, err := RadialPositions(radius, zeros, n)
	require.NoError(t, err)
	require.Len(t, r, n)

	testutil.AssertMonotonic(t, r)
	for i, v := range r {
		testutil.AssertRelativeError(t, zeros[i]*radius/zeros[n], v, 1e-14)
		testutil.AssertInRange(t, v, 0, radius)
	}
}

// TestFrequencyPositions tests ν[i] = c[i]/(2πR) and that the last sample
// stays below the bandwidth.
func TestFrequencyPositions(t *testing.T) {
	const (
		n      = 32
		radius = 0.5
	)
	zeros := mathutil.BesselJ0Zeros(n + 1)

	nu, err := FrequencyPositions(radius, zeros, n)
	require.NoError(t, err)
	require.Len(t, nu, n)

	v, err := Bandwidth(radius, zeros, n)
	require.NoError(t, err)

	for i, f := range nu {
		testutil.AssertRelativeError(t, zeros[i]/(2*math.Pi*radius), f, 1e-14)
	}
	assert.Less(t, nu[n-1], v)

	_, err = FrequencyPositions(-1, zeros, n)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestPositions_Duality tests r[i]·ν[j] = c[i]·c[j]/(2π·c[N]), the kernel
// argument J₀(2π r ν) = J₀(c[i]·c[j]/c[N]).
func TestPositions_Duality(t *testing.T) {
	const n = 16
	zeros := mathutil.BesselJ0Zeros(n + 1)

	r, err := RadialPositions(1.7, zeros, n)
	require.NoError(t, err)
	nu, err := FrequencyPositions(1.7, zeros, n)
	require.NoError(t, err)

	for i := range n {
		for j := range n {
			want := zeros[i] * zeros[j] / zeros[n]
			testutil.AssertRelativeError(t, want, 2*math.Pi*r[i]*nu[j], 1e-13)
		}
	}
}
