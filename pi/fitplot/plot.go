/*
DESCRIPTION
  plot.go provides plotting of fitted curves over the samples they describe.

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

// Package fitplot renders a fitted model and its raw samples to an image file.
package fitplot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/thermocal/pi/quadfit"
)

// Plot dimensions.
const (
	width  = 15 * vg.Centimeter
	height = 15 * vg.Centimeter
)

// Model is a fitted curve that can be evaluated at any x.
type Model interface {
	Eval(x float64) float64
}

// Figure describes a single fit plot.
type Figure struct {
	Title   string
	XLabel  string
	YLabel  string
	Model   Model
	Samples quadfit.Samples
}

// Render draws f and saves it to path. The image format is chosen by the
// file extension, e.g. .png, .svg or .pdf. Missing parent directories are
// created. A file left by a failed save is removed.
func Render(path string, f Figure) error {
	if len(f.Samples) == 0 {
		return errors.New("no samples to plot")
	}
	if f.Model == nil {
		return errors.New("no model to plot")
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("could not create plot directory: %w", err)
	}

	err = plotToFile(path, f.Title, f.XLabel, f.YLabel, func(p *plot.Plot) error {
		p.Add(plotter.NewGrid())

		line, err := plotter.NewLine(curve(f.Model, f.Samples))
		if err != nil {
			return fmt.Errorf("could not create fit line: %w", err)
		}
		line.LineStyle.Color = plotutil.Color(0)
		line.LineStyle.Width = vg.Points(1.5)

		xs, ys := f.Samples.XY()
		points, err := plotter.NewScatter(plotterXY(xs, ys))
		if err != nil {
			return fmt.Errorf("could not create sample points: %w", err)
		}
		points.GlyphStyle.Color = color.Black
		points.GlyphStyle.Shape = plotutil.Shape(0)
		points.GlyphStyle.Radius = vg.Points(1.5)

		p.Add(line, points)
		p.Legend.Add("fit", line)
		p.Legend.Add("measured", points)
		p.Legend.Top = true
		return nil
	})
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("could not plot %s: %w", path, err)
	}
	return nil
}

// curve evaluates m over the sample x values in ascending order, so that the
// fitted line is drawn without doubling back on itself.
func curve(m Model, s quadfit.Samples) plotter.XYs {
	xs, _ := s.XY()
	sort.Float64s(xs)
	return plotterXY(xs, evalAll(m, xs))
}

func evalAll(m Model, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Eval(x)
	}
	return ys
}

// plotToFile creates a plot with a specified name and x&y titles using the
// provided draw function, and then saves it to the file at path.
func plotToFile(path, name, xTitle, yTitle string, draw func(*plot.Plot) error) error {
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = xTitle
	p.Y.Label.Text = yTitle
	err := draw(p)
	if err != nil {
		return fmt.Errorf("could not draw plot contents: %w", err)
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	return nil
}

// plotterXY provides a plotter.XYs type value based on the given x and y data.
func plotterXY(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, len(x))
	for i := range x {
		xy[i].X = x[i]
		xy[i].Y = y[i]
	}
	return xy
}
