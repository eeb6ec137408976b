package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	hankel "github.com/tphakala/go-hankel"
	"github.com/tphakala/go-hankel/logging"
)

func newTransformCmd(logger logging.Logger) *cobra.Command {
	var paramsPath, outputPath, plotPath string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform the radial profile described by a JSON5 parameter file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(paramsPath)
			if err != nil {
				return fmt.Errorf("failed to read parameters: %w", err)
			}

			p, err := parseParams(data)
			if err != nil {
				return err
			}

			res, err := runTransform(cmd.Context(), p, logger)
			if err != nil {
				logger.Error(err, "transform failed", logging.Fields{"params": paramsPath})
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := writeCSV(w, res); err != nil {
				return err
			}

			if plotPath != "" {
				if err := savePlot(plotPath, "QDHT of "+paramsPath, res); err != nil {
					return err
				}
			}

			logger.Info("transform complete", logging.Fields{
				"samples": len(res.values),
				"inverse": p.Inverse,
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&paramsPath, "params", "p", "", "JSON5 parameter file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "CSV output file (default stdout)")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write a magnitude plot to this image file")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}

func newDemoCmd(logger logging.Logger) *cobra.Command {
	var (
		n        int
		radius   float64
		width    float64
		serial   bool
		workers  int
		plotPath string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Compare a Gaussian transform with its closed form at several truncation orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n < 1 {
				return fmt.Errorf("--samples must be at least 1, got %d", n)
			}

			cfg := &hankel.Config{Parallel: !serial, Workers: workers, Logger: logger}
			rows, res, err := runDemo(cmd.Context(), n, radius, width, cfg)
			if err != nil {
				return err
			}

			printDemo(cmd.OutOrStdout(), n, radius, width, rows)

			if plotPath != "" {
				title := fmt.Sprintf("QDHT of exp(-%g r^2), N=%d", width, n)
				if err := savePlot(plotPath, title, res); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "samples", "n", defaultDemoSamples, "Number of radial samples")
	cmd.Flags().Float64VarP(&radius, "radius", "r", defaultDemoRadius, "Aperture radius")
	cmd.Flags().Float64VarP(&width, "width", "a", defaultDemoWidth, "Gaussian coefficient a in exp(-a r^2)")
	cmd.Flags().BoolVar(&serial, "serial", false, "Disable parallel evaluation")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (0 = available parallelism - 1)")
	cmd.Flags().StringVar(&plotPath, "plot", "", "Write a magnitude plot of the full-order result")

	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show worker and SIMD information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := hankel.GetInfo(nil)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Parallel: %v\n", info.Parallel)
			fmt.Fprintf(w, "Workers:  %d\n", info.Workers)
			fmt.Fprintf(w, "SIMD:     %s\n", info.SIMDType)
		},
	}
}
