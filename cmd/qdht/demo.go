package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"slices"
	"time"

	hankel "github.com/tphakala/go-hankel"
	"github.com/tphakala/go-hankel/internal/mathutil"
	"github.com/tphakala/go-hankel/logging"
	"gonum.org/v1/gonum/floats"
)

// demoRow is the accuracy of one truncation order.
type demoRow struct {
	order    int
	maxError float64 // max |H - H_exact| relative to the analytic peak
	elapsed  time.Duration
}

// runDemo transforms exp(-a·r²) at several truncation orders and compares
// each result with the analytic transform (π/a)·exp(-π²ν²/a). It returns
// the per-order errors and the full-order result.
func runDemo(ctx context.Context, n int, radius, a float64, cfg *hankel.Config) ([]demoRow, *result, error) {
	log := cfg.Logger
	if log == nil {
		log = logging.NoOpLogger{}
	}

	zeros := mathutil.BesselJ0Zeros(n + 1)

	radii, err := hankel.RadialPositions(radius, zeros, n)
	if err != nil {
		return nil, nil, err
	}
	freqs, err := hankel.FrequencyPositions(radius, zeros, n)
	if err != nil {
		return nil, nil, err
	}

	h := make([]complex128, n)
	for i, r := range radii {
		h[i] = complex(math.Exp(-a*r*r), 0)
	}

	peak := math.Pi / a
	exact := make([]float64, n)
	for i, nu := range freqs {
		exact[i] = peak * math.Exp(-math.Pi*math.Pi*nu*nu/a)
	}

	var orders []int
	for _, d := range demoOrderDivisors {
		orders = append(orders, max(n/d, 1))
	}
	orders = slices.Compact(orders)

	rows := make([]demoRow, 0, len(orders))
	var full []complex128
	diff := make([]float64, n)

	for _, order := range orders {
		run := *cfg
		run.Zeros = order

		start := time.Now()
		values, err := hankel.TransformContext(ctx, h, radius, zeros, &run)
		if err != nil {
			return nil, nil, fmt.Errorf("order %d: %w", order, err)
		}
		elapsed := time.Since(start)

		for i, v := range values {
			diff[i] = cmplx.Abs(v - complex(exact[i], 0))
		}
		rows = append(rows, demoRow{
			order:    order,
			maxError: floats.Max(diff) / peak,
			elapsed:  elapsed,
		})

		log.Debug("demo order done", logging.Fields{"order": order, "elapsed": elapsed})
		full = values
	}

	return rows, &result{domain: "frequency", positions: freqs, values: full}, nil
}

func printDemo(w io.Writer, n int, radius, a float64, rows []demoRow) {
	fmt.Fprintf(w, "Gaussian exp(-%g r^2), N=%d, R=%g\n", a, n, radius)
	fmt.Fprintf(w, "%8s  %14s  %12s\n", "Nzeros", "max rel error", "time")
	for _, row := range rows {
		fmt.Fprintf(w, "%8d  %14.3e  %12s\n", row.order, row.maxError, row.elapsed.Round(time.Microsecond))
	}
}
