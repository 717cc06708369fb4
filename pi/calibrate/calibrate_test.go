/*
DESCRIPTION
  calibrate_test.go provides testing for functionality in calibrate.go and
  coefficients.go.

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

package calibrate

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/utils/logging"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ausocean/thermocal/pi/profile"
	"github.com/ausocean/thermocal/pi/quadfit"
)

// Voltage to temperature readings lying on the Arduino thermometer curve.
const (
	trainingData   = "1.90 25.649229\n1.95 38.848333\n2.00 52.190013\n2.05 65.674269\n2.10 79.301102\n"
	validationData = "# held out\n1.925 32.230959\n2.025 58.914319\n2.075 72.469864\n"
)

func newLogger() logging.Logger {
	return logging.New(logging.Debug, io.Discard, true)
}

// writeProfile writes the given tables to a temporary directory and returns
// the inverse profile pointing at them.
func writeProfile(t *testing.T, train, valid string) profile.Profile {
	t.Helper()
	dir := t.TempDir()
	p, err := profile.Lookup(profile.Inverse)
	if err != nil {
		t.Fatalf("could not get profile: %v", err)
	}
	p = p.In(dir, filepath.Join(dir, "figs"))
	for path, data := range map[string]string{p.Training: train, p.Validation: valid} {
		if data == "" {
			continue
		}
		err := os.WriteFile(path, []byte(data), 0o644)
		if err != nil {
			t.Fatalf("could not write %s: %v", path, err)
		}
	}
	return p
}

// TestRun checks a complete calibration run.
func TestRun(t *testing.T) {
	p := writeProfile(t, trainingData, validationData)

	r, err := Run(p, newLogger())
	if err != nil {
		t.Fatalf("could not run calibration: %v", err)
	}

	want := quadfit.Coefficients{-370.26765526, 154.19830290, 28.51526560}
	for j := range want {
		if !scalar.EqualWithinAbsOrRel(r.Coefficients[j], want[j], 0.05, 1e-3) {
			t.Errorf("did not get expected coefficient %d. Got: %v, Want: %v", j, r.Coefficients[j], want[j])
		}
	}
	if r.Training.N != 5 || r.Validation.N != 3 {
		t.Errorf("did not get expected sample counts: %v, %v", r.Training, r.Validation)
	}
	if r.Training.RMSE > 1e-3 || r.Validation.RMSE > 1e-3 {
		t.Errorf("fit error too large: %v, %v", r.Training, r.Validation)
	}

	if len(r.Plots) != 2 {
		t.Fatalf("did not get expected plots: %v", r.Plots)
	}
	for _, path := range []string{p.TrainPlot, p.ValidPlot} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("plot not written: %v", err)
		}
	}
}

// TestRunFailures checks that failed runs write no plots.
func TestRunFailures(t *testing.T) {
	tests := []struct {
		name         string
		train, valid string
	}{
		{name: "missing training", valid: validationData},
		{name: "missing validation", train: trainingData},
		{name: "malformed training", train: "1.9 x\n", valid: validationData},
		{name: "empty validation", train: trainingData, valid: "# nothing\n"},
	}

	for _, test := range tests {
		p := writeProfile(t, test.train, test.valid)
		_, err := Run(p, newLogger())
		if err == nil {
			t.Errorf("expected error for %s", test.name)
		}
		if _, err := os.Stat(filepath.Dir(p.TrainPlot)); !os.IsNotExist(err) {
			t.Errorf("plot output created for %s", test.name)
		}
	}
}

// TestRunPlotFailure checks the training plot is removed when the validation
// plot cannot be written.
func TestRunPlotFailure(t *testing.T) {
	p := writeProfile(t, trainingData, validationData)
	p.ValidPlot = filepath.Join(filepath.Dir(p.ValidPlot), "valid1.bmp")

	r, err := Run(p, newLogger())
	if err == nil {
		t.Fatal("expected error rendering unsupported plot format")
	}
	if r != nil && len(r.Plots) != 0 {
		t.Errorf("did not expect plots to be reported: %v", r.Plots)
	}
	for _, path := range []string{p.TrainPlot, p.ValidPlot} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("unexpected output file: %s", path)
		}
	}
}

// TestCoefficients checks coefficients survive a round trip through a file.
func TestCoefficients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theta.conf")
	want := quadfit.Coefficients{-370.26765526, 154.19830290, 28.51526560}

	err := WriteCoefficients(path, want)
	if err != nil {
		t.Fatalf("could not write coefficients: %v", err)
	}
	got, err := ReadCoefficients(path)
	if err != nil {
		t.Fatalf("could not read coefficients: %v", err)
	}
	if got != want {
		t.Errorf("did not get expected coefficients. Got: %v, Want: %v", got, want)
	}

	_, err = ReadCoefficients(filepath.Join(t.TempDir(), "missing.conf"))
	if err == nil {
		t.Error("expected error reading missing coefficients")
	}
}
