package fasta_overview

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoLengths = errors.New("no sequence lengths to plot")

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	step := int(math.Ceil((max - min) / 10))
	if step < 1 {
		step = 1
	}
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// LengthHistogramSVG renders the distribution of sequence lengths as an SVG document.
func LengthHistogramSVG(lengths []int) (string, error) {
	if len(lengths) == 0 {
		return "", ErrNoLengths
	}

	p := plot.New()
	p.Title.Text = "Sequence Length Distribution"
	p.X.Label.Text = "Sequence Length (bp)"
	p.Y.Label.Text = "Sequence Count"
	p.X.Tick.Marker = IntegerTicks{}

	values := make(plotter.Values, len(lengths))
	for i, l := range lengths {
		values[i] = float64(l)
	}

	// Bin size setup
	binCount := 50
	if len(lengths) < binCount {
		binCount = len(lengths)
	}

	hist, err := plotter.NewHist(values, binCount)
	if err != nil {
		return "", err
	}
	hist.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	hist.LineStyle.Width = vg.Points(1)
	p.Add(hist)

	// Write to SVG
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
