/*
NAME
  lsq-fit - least squares calibration of an analog temperature sensor

DESCRIPTION
  lsq-fit fits a quadratic to training data for each requested calibration
  profile, reports how well the fit describes separate validation data, and
  plots both fits.

  By default both built in profiles are run: "forward" (voltage as a function
  of temperature) and "inverse" (temperature as a function of voltage).

LICENSE
  lsq-fit is Copyright (C) 2026 the Australian Ocean Lab (AusOcean).

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  along with revid in gpl.txt.  If not, see [GNU licenses](http://www.gnu.org/licenses).
*/

// lsq-fit fits calibration coefficients for an analog temperature sensor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/thermocal/pi/calibrate"
	"github.com/ausocean/thermocal/pi/profile"
	"github.com/ausocean/thermocal/pi/smartlogger"
)

// Defaults.
const (
	progName       = "lsq-fit"
	defaultLogPath = "logs"
	defaultPlotDir = "figs"
	allProfiles    = "all"
)

func main() {
	profileName := flag.String("Profile", allProfiles, "Calibration profile: "+strings.Join(append(profile.Names(), allProfiles), ", "))
	configFile := flag.String("ConfigFile", "", "Profile config file of Key=Value lines, overriding -Profile")
	dataDir := flag.String("DataDir", "", "Directory holding relative data files")
	plotDir := flag.String("PlotDir", defaultPlotDir, "Directory for relative plot files")
	coeffFile := flag.String("CoeffFile", "", "File to write fitted coefficients to; a profile suffix is added when running several profiles")
	logLevel := flag.Int("LogLevel", int(logging.Info), "Specifies log level")
	logPath := flag.String("LogPath", defaultLogPath, "Specifies log path")
	flag.Parse()

	sl := smartlogger.New(*logPath, progName)
	log, validLogLevel := sl.Logger(*logLevel, os.Stderr)
	log.Debug("logger initialised", "path", sl.Filename())
	if !validLogLevel {
		log.Error("invalid log level was defaulted to Info", "level", *logLevel)
	}

	profiles, err := selectProfiles(*profileName, *configFile)
	if err != nil {
		log.Fatal("could not select profiles", "error", err)
	}

	failed := false
	for _, p := range profiles {
		p = p.In(*dataDir, *plotDir)
		r, err := calibrate.Run(p, log)
		if err != nil {
			log.Error("calibration failed", "profile", p.Name, "error", err)
			failed = true
			continue
		}
		fmt.Println(r)

		if *coeffFile == "" {
			continue
		}
		path := coeffPath(*coeffFile, p.Name, len(profiles) > 1)
		err = calibrate.WriteCoefficients(path, r.Coefficients)
		if err != nil {
			log.Error("could not save coefficients", "profile", p.Name, "path", path, "error", err)
			failed = true
			continue
		}
		log.Info("saved coefficients", "profile", p.Name, "path", path)
	}

	sl.Close()
	if failed {
		os.Exit(1)
	}
}

// selectProfiles returns the profiles to run. A config file takes precedence
// and starts from the named profile, or the forward profile when all are
// requested.
func selectProfiles(name, configFile string) ([]profile.Profile, error) {
	if configFile != "" {
		base := profile.Forward
		if name != allProfiles {
			base = name
		}
		bp, err := profile.Lookup(base)
		if err != nil {
			return nil, err
		}
		p, err := profile.FromFile(configFile, bp)
		if err != nil {
			return nil, err
		}
		return []profile.Profile{p}, nil
	}

	if name != allProfiles {
		p, err := profile.Lookup(name)
		if err != nil {
			return nil, err
		}
		return []profile.Profile{p}, nil
	}

	var profiles []profile.Profile
	for _, n := range profile.Names() {
		p, err := profile.Lookup(n)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if len(profiles) == 0 {
		return nil, errors.New("no profiles")
	}
	return profiles, nil
}

// coeffPath returns the coefficient file for the named profile, adding the
// profile name before the extension when several profiles share the flag.
func coeffPath(path, name string, several bool) string {
	if !several {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + name + ext
}
