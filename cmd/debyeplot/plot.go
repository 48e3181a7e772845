// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvscatter/debye"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// series is one labelled intensity curve on a shared q axis.
type series struct {
	name      string
	intensity debye.Curve
}

// savePlot renders all series against q as lines and writes the image; the
// format follows the file extension (png, svg, pdf, ...).
func savePlot(path, title string, q []float64, set []series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "q (1/Å)"
	p.Y.Label.Text = "I(q)"
	p.Add(plotter.NewGrid())

	for i, s := range set {
		if len(s.intensity) != len(q) {
			return fmt.Errorf("series %q: %d values for %d q samples", s.name, len(s.intensity), len(q))
		}
		pts := make(plotter.XYs, len(q))
		for k := range pts {
			pts[k].X = q[k]
			pts[k].Y = s.intensity[k]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
