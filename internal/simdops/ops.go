// Package simdops wraps the SIMD kernels used by the Hankel transform.
//
// Complex vectors that meet a real kernel are kept as split real and
// imaginary float64 slices, so every inner product runs on the f64
// dot-product kernel instead of a scalar complex loop.
package simdops

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// DotRealComplex returns Σ kernel[i]·(re[i] + i·im[i]).
// re and im must be exactly as long as kernel.
func DotRealComplex(kernel, re, im []float64) complex128 {
	return complex(f64.DotProductUnsafe(kernel, re), f64.DotProductUnsafe(kernel, im))
}

// Scale multiplies each element by scalar s: dst[i] = a[i] * s
func Scale(dst, a []float64, s float64) {
	f64.Scale(dst, a, s)
}

// MulReal multiplies each complex element by the matching real factor in place.
func MulReal(dst []complex128, factors []float64) {
	scale := make([]complex128, len(dst))
	for i := range scale {
		scale[i] = complex(factors[i], 0)
	}
	c128.Mul(dst, dst, scale)
}

// Split copies src into separate real and imaginary slices.
func Split(re, im []float64, src []complex128) {
	for i, v := range src {
		re[i] = real(v)
		im[i] = imag(v)
	}
}

// Info describes the SIMD instruction set selected at startup.
func Info() string {
	return cpu.Info()
}
