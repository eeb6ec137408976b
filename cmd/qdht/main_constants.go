package main

// Default demo flag values
const (
	defaultDemoSamples = 256  // Radial samples
	defaultDemoRadius  = 1.0  // Aperture radius
	defaultDemoWidth   = 50.0 // Gaussian exp(-a·r²) coefficient a
)

// Demo truncation orders as fractions of N
var demoOrderDivisors = []int{8, 4, 2, 1}

// Plot dimensions
const (
	plotWidthInches  = 8
	plotHeightInches = 4
)
