package hankel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/tphakala/go-hankel/internal/simdops"
	"github.com/tphakala/go-hankel/logging"
)

// Common errors returned by the transform.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid transform configuration")

	// ErrInvalidInput indicates a violated precondition on the samples,
	// radius, zero table or truncation order.
	ErrInvalidInput = errors.New("invalid transform input")

	// ErrNumerical indicates an arithmetic fault such as a vanishing
	// denominator or a non-finite output sample.
	ErrNumerical = errors.New("numerical fault in transform")
)

// Config holds transform configuration.
type Config struct {
	// Zeros is the truncation order of the series sum (Nzeros).
	// Values <= 0 select the full order N = len(h). It must not exceed N.
	Zeros int

	// Parallel splits the output indices into contiguous blocks and
	// evaluates them on concurrent workers. Results are identical to the
	// serial path.
	Parallel bool

	// Workers overrides the number of parallel workers.
	// Set to 0 to use DefaultWorkers().
	Workers int

	// Logger receives debug output about dispatch decisions.
	// A nil Logger disables logging.
	Logger logging.Logger
}

// DefaultConfig returns the configuration used when Transform is given a nil
// Config: full truncation order, parallel evaluation, default worker count.
func DefaultConfig() *Config {
	return &Config{Parallel: true}
}

// DefaultWorkers returns the available parallelism minus one, reserving a
// unit for the calling goroutine, and never less than one.
func DefaultWorkers() int {
	return max(minWorkers, runtime.GOMAXPROCS(0)-reservedWorkers)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return DefaultWorkers()
}

func (c *Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.NoOpLogger{}
	}
	return c.Logger
}

// Transform computes the zeroth-order quasi-discrete Hankel transform of the
// radial samples h taken over an aperture of the given radius.
//
// zeros holds at least len(h)+1 ascending positive roots of J₀: the first
// len(h) place the samples, the next one normalizes the transform.
// A nil cfg uses DefaultConfig().
//
// The result has the same length as h. On any error no samples are returned.
func Transform(h []complex128, radius float64, zeros []float64, cfg *Config) ([]complex128, error) {
	return TransformContext(context.Background(), h, radius, zeros, cfg)
}

// TransformContext is like Transform but stops early when ctx is cancelled.
func TransformContext(ctx context.Context, h []complex128, radius float64, zeros []float64, cfg *Config) ([]complex128, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := newCoefficients(h, radius, zeros, cfg.Zeros)
	if err != nil {
		return nil, err
	}

	log := cfg.logger().WithFields(logging.Fields{"n": coeffs.n, "nzeros": coeffs.nzeros})

	var out []complex128
	if cfg.Parallel {
		out, err = coeffs.evaluateParallel(ctx, cfg.workers(), log)
	} else {
		log.Debug("evaluating serially")
		out, err = coeffs.evaluateSerial(ctx)
	}
	if err != nil {
		return nil, err
	}

	coeffs.scaleOutput(out)
	return out, nil
}

// InverseTransform maps spatial-frequency samples produced by Transform back
// to the space domain. radius and zeros are the ones given to Transform.
//
// The QDHT kernel is symmetric, so the inverse is the same transform run with
// the frequency-domain bandwidth in place of the radius.
func InverseTransform(spectrum []complex128, radius float64, zeros []float64, cfg *Config) ([]complex128, error) {
	return InverseTransformContext(context.Background(), spectrum, radius, zeros, cfg)
}

// InverseTransformContext is like InverseTransform but stops early when ctx
// is cancelled.
func InverseTransformContext(ctx context.Context, spectrum []complex128, radius float64, zeros []float64, cfg *Config) ([]complex128, error) {
	bandwidth, err := Bandwidth(radius, zeros, len(spectrum))
	if err != nil {
		return nil, err
	}
	return TransformContext(ctx, spectrum, bandwidth, zeros, cfg)
}

// Info returns information about how a transform would execute.
type Info struct {
	// Parallel reports whether block-partitioned evaluation is enabled.
	Parallel bool

	// Workers is the worker count used by the parallel path.
	Workers int

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}

// GetInfo returns execution information for cfg. A nil cfg uses DefaultConfig().
func GetInfo(cfg *Config) Info {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return Info{
		Parallel: cfg.Parallel,
		Workers:  cfg.workers(),
		SIMDType: simdops.Info(),
	}
}
