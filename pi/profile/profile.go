/*
DESCRIPTION
  profile.go provides calibration profiles, which name the data files, plot
  files and axis labels used for a single calibration run.

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

// Package profile provides calibration profiles. The forward profile models
// sensor output voltage as a function of temperature, and the inverse profile
// models temperature as a function of voltage, which is what a thermometer
// needs to convert its readings.
package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ausocean/utils/filemap"
	"github.com/ausocean/utils/sliceutils"
)

// Axis labels.
const (
	Temperature = "Temperature (°C)"
	Voltage     = "Output Voltage (V)"
)

// Profile names.
const (
	Forward = "forward"
	Inverse = "inverse"
)

// ErrUnknown is returned when looking up a profile that does not exist.
var ErrUnknown = errors.New("unknown profile")

// Profile describes one calibration run.
type Profile struct {
	Name       string
	XLabel     string // Label of the independent variable.
	YLabel     string // Label of the fitted variable.
	Training   string // Path of the training table.
	Validation string // Path of the validation table.
	TrainPlot  string // Path of the training fit plot.
	ValidPlot  string // Path of the validation fit plot.
}

var builtin = map[string]Profile{
	Forward: {
		Name:       Forward,
		XLabel:     Temperature,
		YLabel:     Voltage,
		Training:   "training_data.txt",
		Validation: "validation_data.txt",
		TrainPlot:  "train.png",
		ValidPlot:  "valid.png",
	},
	Inverse: {
		Name:       Inverse,
		XLabel:     Voltage,
		YLabel:     Temperature,
		Training:   "training_data1.txt",
		Validation: "validation_data1.txt",
		TrainPlot:  "train1.png",
		ValidPlot:  "valid1.png",
	},
}

// Names returns the names of the built in profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the built in profile with the given name.
func Lookup(name string) (Profile, error) {
	p, ok := builtin[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p, nil
}

// In returns a copy of p with relative data paths joined to dataDir and
// relative plot paths joined to plotDir.
func (p Profile) In(dataDir, plotDir string) Profile {
	p.Training = rebase(dataDir, p.Training)
	p.Validation = rebase(dataDir, p.Validation)
	p.TrainPlot = rebase(plotDir, p.TrainPlot)
	p.ValidPlot = rebase(plotDir, p.ValidPlot)
	return p
}

func rebase(dir, path string) string {
	if dir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Config file keys.
const (
	keyBase       = "Profile"
	keyName       = "Name"
	keyXLabel     = "XLabel"
	keyYLabel     = "YLabel"
	keyTraining   = "Training"
	keyValidation = "Validation"
	keyTrainPlot  = "TrainPlot"
	keyValidPlot  = "ValidPlot"
)

var keys = []string{keyBase, keyName, keyXLabel, keyYLabel, keyTraining, keyValidation, keyTrainPlot, keyValidPlot}

// FromFile reads a profile from a config file of Key=Value lines. The
// optional Profile key names a built in profile to start from, otherwise
// base is used; any other keys override the corresponding fields.
func FromFile(path string, base Profile) (Profile, error) {
	raw, err := filemap.ReadFrom(path, "\n", "=")
	if err != nil {
		return Profile{}, fmt.Errorf("could not read profile config: %w", err)
	}
	p, err := fromMap(raw, base)
	if err != nil {
		return Profile{}, fmt.Errorf("invalid profile config %s: %w", path, err)
	}
	return p, nil
}

func fromMap(raw map[string]string, base Profile) (Profile, error) {
	config := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.TrimSpace(k)
		if k == "" || strings.HasPrefix(k, "#") {
			continue
		}
		if !sliceutils.ContainsString(keys, k) {
			return Profile{}, fmt.Errorf("unknown key: %s", k)
		}
		config[k] = strings.TrimSpace(v)
	}

	p := base
	if name, ok := config[keyBase]; ok {
		var err error
		p, err = Lookup(name)
		if err != nil {
			return Profile{}, err
		}
	}

	for k, field := range map[string]*string{
		keyName:       &p.Name,
		keyXLabel:     &p.XLabel,
		keyYLabel:     &p.YLabel,
		keyTraining:   &p.Training,
		keyValidation: &p.Validation,
		keyTrainPlot:  &p.TrainPlot,
		keyValidPlot:  &p.ValidPlot,
	} {
		if v, ok := config[k]; ok {
			*field = v
		}
	}

	if p.Training == "" || p.Validation == "" {
		return Profile{}, errors.New("training and validation data files are required")
	}
	if p.TrainPlot == "" || p.ValidPlot == "" {
		return Profile{}, errors.New("training and validation plot files are required")
	}
	return p, nil
}
