/*
DESCRIPTION
  calibrate.go provides a calibration run: a quadratic is fitted to a
  training table, checked against a validation table, and both fits are
  plotted.

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

// Package calibrate provides calibration runs for a profile, fitting
// coefficients to training data, evaluating them against validation data and
// plotting the results, along with storage of fitted coefficients.
package calibrate

import (
	"fmt"
	"os"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/thermocal/pi/dataset"
	"github.com/ausocean/thermocal/pi/fitplot"
	"github.com/ausocean/thermocal/pi/profile"
	"github.com/ausocean/thermocal/pi/quadfit"
)

// Plot titles.
const (
	trainTitle = "Training"
	validTitle = "Validation"
)

// Report holds the outcome of a calibration run.
type Report struct {
	Profile      string
	Coefficients quadfit.Coefficients
	Training     quadfit.Stats
	Validation   quadfit.Stats
	Plots        []string // Paths of written plots.
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "profile: %s\n", r.Profile)
	fmt.Fprintf(&sb, "theta:\n%v\n", r.Coefficients)
	fmt.Fprintf(&sb, "training: %v\n", r.Training)
	fmt.Fprintf(&sb, "validation: %v\n", r.Validation)
	fmt.Fprintf(&sb, "plots: %s", strings.Join(r.Plots, ", "))
	return sb.String()
}

// Run performs a calibration run for p. Both tables are loaded and the fit
// completed before any plot is written. If a plot cannot be rendered, plots
// already written by the run are removed, so a failed run leaves no output.
func Run(p profile.Profile, l logging.Logger) (*Report, error) {
	l.Debug("loading training data", "profile", p.Name, "path", p.Training)
	train, err := dataset.Load(p.Training)
	if err != nil {
		return nil, fmt.Errorf("could not load training data: %w", err)
	}

	l.Debug("loading validation data", "profile", p.Name, "path", p.Validation)
	valid, err := dataset.Load(p.Validation)
	if err != nil {
		return nil, fmt.Errorf("could not load validation data: %w", err)
	}

	l.Debug("fitting", "profile", p.Name, "samples", len(train))
	c, err := quadfit.Fit(train)
	if err != nil {
		return nil, fmt.Errorf("could not fit training data: %w", err)
	}

	r := &Report{
		Profile:      p.Name,
		Coefficients: c,
		Training:     c.Stats(train),
		Validation:   c.Stats(valid),
	}
	l.Info("fitted coefficients", "profile", p.Name, "theta0", c[0], "theta1", c[1], "theta2", c[2])
	l.Info("training fit", "profile", p.Name, "rmse", r.Training.RMSE, "r2", r.Training.R2)
	l.Info("validation fit", "profile", p.Name, "rmse", r.Validation.RMSE, "r2", r.Validation.R2)

	for _, fig := range []struct {
		path    string
		title   string
		samples quadfit.Samples
	}{
		{p.TrainPlot, trainTitle, train},
		{p.ValidPlot, validTitle, valid},
	} {
		err = fitplot.Render(fig.path, fitplot.Figure{
			Title:   fig.title,
			XLabel:  p.XLabel,
			YLabel:  p.YLabel,
			Model:   c,
			Samples: fig.samples,
		})
		if err != nil {
			for _, path := range r.Plots {
				os.Remove(path)
			}
			r.Plots = nil
			return r, fmt.Errorf("could not render %s plot: %w", strings.ToLower(fig.title), err)
		}
		r.Plots = append(r.Plots, fig.path)
		l.Debug("wrote plot", "profile", p.Name, "path", fig.path)
	}
	return r, nil
}
