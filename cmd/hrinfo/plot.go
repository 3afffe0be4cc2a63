package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotWindow renders the raw window with the detected peak positions marked.
// Peak indices refer to the filtered derivative, which lags the raw signal by
// a few samples; the markers are drawn on the raw trace at the same index.
func plotWindow(path string, samples []uint32, r windowReport) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("window %d: %s", r.index, rateLabel(r))
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "IR"

	pts := make(plotter.XYs, len(samples))
	for i, v := range samples {
		pts[i] = plotter.XY{X: float64(i), Y: float64(v)}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot line: %w", err)
	}

	line.Width = vg.Points(1)
	line.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	p.Add(line)

	if len(r.hr.Peaks) > 0 {
		peakPts := make(plotter.XYs, 0, len(r.hr.Peaks))
		for _, loc := range r.hr.Peaks {
			if loc < len(samples) {
				peakPts = append(peakPts, plotter.XY{X: float64(loc), Y: float64(samples[loc])})
			}
		}

		scatter, err := plotter.NewScatter(peakPts)
		if err != nil {
			return fmt.Errorf("plot peaks: %w", err)
		}

		scatter.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}

func rateLabel(r windowReport) string {
	if !r.hr.Valid {
		return "no valid rate"
	}

	return fmt.Sprintf("%d BPM", r.hr.BPM)
}
