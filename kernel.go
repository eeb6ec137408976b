package hankel

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-hankel/internal/simdops"
)

// row evaluates output sample jj:
//
//	C[k]  = J₀(c[k]·c[jj]/c[N]) / (Bessel_Jn[k]·Bessel_Jm[jj]),  k < nzeros
//	H[jj] = Σ C[k]·F[k]
//
// kernel is scratch space of length nzeros.
func (c *coefficients) row(jj int, kernel []float64) complex128 {
	norm := c.zeros[c.n]
	x := c.zeros[jj]
	denom := c.jm[jj]

	for k := range kernel {
		kernel[k] = math.J0(c.zeros[k]*x/norm) / (c.jn[k] * denom)
	}

	return simdops.DotRealComplex(kernel, c.fRe[:c.nzeros], c.fIm[:c.nzeros])
}

// evaluateRange writes H[start:end] into dst, which must hold end-start values.
func (c *coefficients) evaluateRange(ctx context.Context, start, end int, dst []complex128) error {
	kernel := make([]float64, c.nzeros)

	for jj := start; jj < end; jj++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("transform cancelled at index %d: %w", jj, err)
		}

		v := c.row(jj, kernel)
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return fmt.Errorf("%w: non-finite output at index %d", ErrNumerical, jj)
		}
		dst[jj-start] = v
	}

	return nil
}

// evaluateSerial computes every output sample on the calling goroutine.
func (c *coefficients) evaluateSerial(ctx context.Context) ([]complex128, error) {
	out := make([]complex128, c.n)
	if err := c.evaluateRange(ctx, 0, c.n, out); err != nil {
		return nil, err
	}
	return out, nil
}

// scaleOutput applies the frequency-domain scaling H := H·m2.
// m2 is real, so conjugating H before and after the product is a no-op and
// is folded away.
func (c *coefficients) scaleOutput(out []complex128) {
	simdops.MulReal(out, c.m2)
}
