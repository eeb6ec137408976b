// Package hankel computes the zeroth-order quasi-discrete Hankel transform
// (QDHT) of sampled radial fields in pure Go.
//
// The discretization follows M. Guizar-Sicairos and J. C. Gutiérrez-Vega,
// "Computation of quasi-discrete Hankel transforms of integer order for
// propagating optical wave fields", J. Opt. Soc. Am. A 21, 53-58 (2004).
// Samples sit at radii proportional to the roots of J₀, which turns the
// continuous transform into a symmetric matrix-vector product. It is used as
// the propagation primitive in radially symmetric optical simulations.
//
// # Features
//
//   - Forward and inverse transforms from the same symmetric kernel
//   - Optional truncation of the series sum for faster, less accurate results
//   - Block-partitioned evaluation across goroutines with ordered reassembly
//   - SIMD dot products and scaling via github.com/tphakala/simd
//   - Context cancellation and descriptive, wrapped errors
//
// # Quick Start
//
// The caller supplies the samples, the aperture radius and a table of at
// least N+1 roots of J₀:
//
//	zeros := loadBesselZeros(n + 1)
//	radii, err := hankel.RadialPositions(radius, zeros, n)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := make([]complex128, n)
//	for i, r := range radii {
//	    h[i] = field(r)
//	}
//
//	spectrum, err := hankel.Transform(h, radius, zeros, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// spectrum[i] is the transform at the spatial frequency returned by
// [FrequencyPositions]. [InverseTransform] maps it back.
//
// # Normalization
//
// The transform uses the 2π kernel convention
//
//	H(ν) = 2π ∫₀^∞ h(r) J₀(2πνr) r dr
//
// so a Gaussian exp(-a·r²) maps to (π/a)·exp(-π²ν²/a). The input should be
// negligible beyond the radius and its transform negligible beyond the
// bandwidth returned by [Bandwidth].
//
// # Truncation
//
// [Config.Zeros] limits the series sum to its first Nzeros terms. Values
// <= 0 select the full order N. Larger values than N are rejected.
//
// # Thread Safety
//
// Transform is a pure function of its inputs and is safe for concurrent use.
// The inputs are only read, never modified. With [Config.Parallel] set, each
// call starts its own workers and waits for them before returning.
package hankel
