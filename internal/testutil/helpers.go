// Package testutil provides reusable test helper functions for Hankel transform tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance     = 1e-10
	EquivalenceTolerance = 1e-12
	AnalyticTolerance    = 1e-5
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []complex128, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if cmplx.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if cmplx.IsInf(v) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertComplexInDelta verifies that two complex slices have the same length
// and that |expected[i] - actual[i]| <= delta for every element.
func AssertComplexInDelta(t *testing.T, expected, actual []complex128, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if d := cmplx.Abs(expected[i] - actual[i]); d > delta {
			return assert.Fail(t, "complex values differ",
				"index %d: expected %v, actual %v, |diff|=%e > %e", i, expected[i], actual[i], d, delta)
		}
	}
	return true
}

// MaxAbsDiff returns max |a[i] - b[i]| over the common length of a and b.
func MaxAbsDiff(a, b []complex128) float64 {
	var worst float64
	for i := range min(len(a), len(b)) {
		worst = math.Max(worst, cmplx.Abs(a[i]-b[i]))
	}
	return worst
}

// MaxAbs returns max |s[i]|.
func MaxAbs(s []complex128) float64 {
	var peak float64
	for _, v := range s {
		peak = math.Max(peak, cmplx.Abs(v))
	}
	return peak
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// Gaussian samples exp(-a·r²) at the given radii as a complex profile.
func Gaussian(radii []float64, a float64) []complex128 {
	h := make([]complex128, len(radii))
	for i, r := range radii {
		h[i] = complex(math.Exp(-a*r*r), 0)
	}
	return h
}

// GaussianTransform returns the analytic zeroth-order Hankel transform of
// exp(-a·r²) with the 2π kernel convention: (π/a)·exp(-π²ν²/a).
func GaussianTransform(freqs []float64, a float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, nu := range freqs {
		out[i] = complex(math.Pi/a*math.Exp(-math.Pi*math.Pi*nu*nu/a), 0)
	}
	return out
}
