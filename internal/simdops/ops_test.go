package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotRealComplex(t *testing.T) {
	kernel := []float64{1, 2, 3, 4, 5}
	re := []float64{1, 0, -1, 0, 2}
	im := []float64{0, 1, 0, -1, 0.5}

	got := DotRealComplex(kernel, re, im)

	// re: 1 - 3 + 10 = 8, im: 2 - 4 + 2.5 = 0.5
	assert.InDelta(t, 8.0, real(got), 1e-12)
	assert.InDelta(t, 0.5, imag(got), 1e-12)
}

func TestScale(t *testing.T) {
	a := []float64{1, -2, 4}
	dst := make([]float64, len(a))

	Scale(dst, a, 0.5)

	assert.InDeltaSlice(t, []float64{0.5, -1, 2}, dst, 1e-15)
}

func TestMulReal(t *testing.T) {
	dst := []complex128{complex(1, 1), complex(-2, 3), complex(0, -1)}

	MulReal(dst, []float64{2, 0.5, -3})

	assert.InDelta(t, 2.0, real(dst[0]), 1e-15)
	assert.InDelta(t, 2.0, imag(dst[0]), 1e-15)
	assert.InDelta(t, -1.0, real(dst[1]), 1e-15)
	assert.InDelta(t, 1.5, imag(dst[1]), 1e-15)
	assert.InDelta(t, 0.0, real(dst[2]), 1e-15)
	assert.InDelta(t, 3.0, imag(dst[2]), 1e-15)
}

func TestSplit(t *testing.T) {
	src := []complex128{complex(1, 2), complex(-3, 4)}
	re := make([]float64, len(src))
	im := make([]float64, len(src))

	Split(re, im, src)

	assert.Equal(t, []float64{1, -3}, re)
	assert.Equal(t, []float64{2, 4}, im)
}

func BenchmarkDotRealComplex(b *testing.B) {
	const n = 1024
	kernel := make([]float64, n)
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range n {
		kernel[i] = float64(i)
		re[i] = 1
		im[i] = -1
	}
	for b.Loop() {
		_ = DotRealComplex(kernel, re, im)
	}
}
