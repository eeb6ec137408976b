package main

import (
	"context"
	"errors"
	"fmt"

	json "github.com/KevinWang15/go-json5"
	hankel "github.com/tphakala/go-hankel"
	"github.com/tphakala/go-hankel/internal/mathutil"
	"github.com/tphakala/go-hankel/logging"
)

// params is the JSON5 parameter file accepted by the transform command.
//
//	{
//	  radius: 1.0,            // aperture radius
//	  samples: [[1, 0], ...], // [re, im] per radial sample
//	  zeros: [...],           // optional, roots of J0 (len(samples)+1 or more)
//	  nzeros: 0,              // truncation order, 0 = full
//	  serial: false,
//	  workers: 0,             // 0 = available parallelism - 1
//	  inverse: false,         // frequency -> space
//	}
type params struct {
	Radius  float64      `json:"radius"`
	Samples [][2]float64 `json:"samples"`
	Zeros   []float64    `json:"zeros"`
	NZeros  int          `json:"nzeros"`
	Serial  bool         `json:"serial"`
	Workers int          `json:"workers"`
	Inverse bool         `json:"inverse"`
}

// parseParams decodes a parameter file and fills in the zero table when the
// file does not provide one.
func parseParams(data []byte) (*params, error) {
	var p params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse parameters: %w", err)
	}

	if len(p.Samples) == 0 {
		return nil, errors.New("parameters: samples must not be empty")
	}
	if p.Radius <= 0 {
		return nil, fmt.Errorf("parameters: radius must be positive, got %v", p.Radius)
	}

	if len(p.Zeros) == 0 {
		p.Zeros = mathutil.BesselJ0Zeros(len(p.Samples) + 1)
	}

	return &p, nil
}

func (p *params) input() []complex128 {
	h := make([]complex128, len(p.Samples))
	for i, s := range p.Samples {
		h[i] = complex(s[0], s[1])
	}
	return h
}

func (p *params) config(logger logging.Logger) *hankel.Config {
	return &hankel.Config{
		Zeros:    p.NZeros,
		Parallel: !p.Serial,
		Workers:  p.Workers,
		Logger:   logger,
	}
}

// result is a transformed profile placed on its output grid.
type result struct {
	domain    string // "frequency" or "radius"
	positions []float64
	values    []complex128
}

// runTransform applies the forward or inverse transform described by p.
func runTransform(ctx context.Context, p *params, logger logging.Logger) (*result, error) {
	h := p.input()
	cfg := p.config(logger)

	if p.Inverse {
		values, err := hankel.InverseTransformContext(ctx, h, p.Radius, p.Zeros, cfg)
		if err != nil {
			return nil, fmt.Errorf("inverse transform failed: %w", err)
		}
		positions, err := hankel.RadialPositions(p.Radius, p.Zeros, len(h))
		if err != nil {
			return nil, err
		}
		return &result{domain: "radius", positions: positions, values: values}, nil
	}

	values, err := hankel.TransformContext(ctx, h, p.Radius, p.Zeros, cfg)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}
	positions, err := hankel.FrequencyPositions(p.Radius, p.Zeros, len(h))
	if err != nil {
		return nil, err
	}
	return &result{domain: "frequency", positions: positions, values: values}, nil
}
