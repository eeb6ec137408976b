package main

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"math/cmplx"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeCSV writes one row per sample: index, position, real, imaginary, magnitude.
func writeCSV(w io.Writer, res *result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", res.domain, "re", "im", "abs"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, v := range res.values {
		record := []string{
			strconv.Itoa(i),
			formatFloat(res.positions[i]),
			formatFloat(real(v)),
			formatFloat(imag(v)),
			formatFloat(cmplx.Abs(v)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// savePlot renders |values| against the result positions to an image file.
// The format follows the file extension (png, svg, pdf, ...).
func savePlot(path, title string, res *result) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = res.domain
	p.Y.Label.Text = "magnitude"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(res.values))
	for i, v := range res.values {
		pts[i].X = res.positions[i]
		pts[i].Y = cmplx.Abs(v)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build plot line: %w", err)
	}
	line.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255} // blue
	p.Add(line)

	if err := p.Save(plotWidthInches*vg.Inch, plotHeightInches*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
