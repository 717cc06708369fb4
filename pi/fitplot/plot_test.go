/*
DESCRIPTION
  plot_test.go provides testing for functionality in plot.go.

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

package fitplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/thermocal/pi/quadfit"
)

var samples = quadfit.Samples{
	{X: 40, Y: 2.84}, {X: 20, Y: 2.66}, {X: 30, Y: 2.76}, {X: 25, Y: 2.71}, {X: 35, Y: 2.80},
}

// TestRender checks that figures are saved in the format given by their
// extension, creating directories as needed.
func TestRender(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figs")
	f := Figure{
		Title:   "Training",
		XLabel:  "Temperature (°C)",
		YLabel:  "Output Voltage (V)",
		Model:   quadfit.Coefficients{2.46, 0.0101, -0.000027},
		Samples: samples,
	}

	for _, name := range []string{"train.png", "train.svg", "train.pdf"} {
		path := filepath.Join(dir, name)
		err := Render(path, f)
		if err != nil {
			t.Errorf("could not render %s: %v", name, err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("could not stat %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("rendered empty file: %s", name)
		}
	}
}

// TestRenderInvalid checks nothing is written for an unusable figure.
func TestRenderInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		ext  string
		f    Figure
	}{
		{name: "no samples", ext: ".png", f: Figure{Model: quadfit.Coefficients{}}},
		{name: "no model", ext: ".png", f: Figure{Samples: samples}},
		{name: "unknown format", ext: ".bmp", f: Figure{Model: quadfit.Coefficients{1, 2, 3}, Samples: samples}},
	}

	for _, test := range tests {
		path := filepath.Join(dir, test.name+test.ext)
		err := Render(path, test.f)
		if err == nil {
			t.Errorf("expected error for %s", test.name)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("unexpected output file for %s", test.name)
		}
	}
}

// TestCurve checks the fitted line is evaluated in ascending x order.
func TestCurve(t *testing.T) {
	c := quadfit.Coefficients{0, 0, 1}
	xy := curve(c, samples)
	if len(xy) != len(samples) {
		t.Fatalf("did not get expected length. Got: %d, Want: %d", len(xy), len(samples))
	}
	for i := range xy {
		if i > 0 && xy[i].X < xy[i-1].X {
			t.Errorf("x not ascending at %d: %v after %v", i, xy[i].X, xy[i-1].X)
		}
		if xy[i].Y != xy[i].X*xy[i].X {
			t.Errorf("did not get expected y at %d. Got: %v, Want: %v", i, xy[i].Y, xy[i].X*xy[i].X)
		}
	}
}
