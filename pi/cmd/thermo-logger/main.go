/*
NAME
  thermo-logger - data collection and readout for an analog thermometer

DESCRIPTION
  thermo-logger reads sensor voltages printed by the thermometer Arduino over
  serial. In collect mode each voltage is paired with a DS18B20 reference
  temperature and appended to a calibration table for lsq-fit. In measure mode
  voltages are converted to temperatures with fitted inverse coefficients.

LICENSE
  thermo-logger is Copyright (C) 2026 the Australian Ocean Lab (AusOcean).

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

// thermo-logger collects calibration data from, and reads temperatures with,
// an Arduino based analog thermometer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/thermocal/pi/calibrate"
	"github.com/ausocean/thermocal/pi/dataset"
	"github.com/ausocean/thermocal/pi/quadfit"
	"github.com/ausocean/thermocal/pi/smartlogger"
	"github.com/ausocean/thermocal/pi/thermometer"
)

// Defaults.
const (
	progName       = "thermo-logger"
	defaultLogPath = "/var/log/thermocal"
	defaultPeriod  = time.Second
	retryPeriod    = 5 * time.Second
)

// Modes.
const (
	modeCollect = "collect"
	modeMeasure = "measure"
)

func main() {
	mode := flag.String("Mode", modeMeasure, "Mode: "+modeCollect+" or "+modeMeasure)
	hw := flag.String("HW", "", "Serial config, e.g. port=/dev/ttyACM0,baud=9600")
	dataFile := flag.String("DataFile", "training_data.txt", "Table to append samples to in collect mode")
	inverse := flag.Bool("Inverse", false, "Collect voltage,temperature rather than temperature,voltage samples")
	count := flag.Int("Samples", 0, "Number of samples or readings to take, 0 for no limit")
	period := flag.Duration("Period", defaultPeriod, "Time between samples or readings")
	coeffFile := flag.String("CoeffFile", "", "Inverse coefficients written by lsq-fit; defaults to the firmware coefficients")
	logLevel := flag.Int("LogLevel", int(logging.Info), "Specifies log level")
	logPath := flag.String("LogPath", defaultLogPath, "Specifies log path")
	flag.Parse()

	sl := smartlogger.New(*logPath, progName)
	log, validLogLevel := sl.Logger(*logLevel, os.Stderr)
	log.Info("logger initialised", "path", sl.Filename())
	if !validLogLevel {
		log.Error("invalid log level was defaulted to Info", "level", *logLevel)
	}

	cfg, err := parseHW(*hw)
	if err != nil {
		log.Fatal("invalid hardware config", "error", err)
	}

	sv, err := thermometer.OpenSerial(cfg.port, cfg.baud, log)
	if err != nil {
		log.Fatal("could not open thermometer", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case modeCollect:
		err = collect(ctx, sv, *dataFile, *inverse, *count, *period, log)
	case modeMeasure:
		err = measure(ctx, sv, *coeffFile, *count, *period, os.Stdout, log)
	default:
		err = fmt.Errorf("unknown mode: %s", *mode)
	}
	if err != nil {
		log.Error("stopped", "mode", *mode, "error", err)
	}

	sv.Close()
	sl.Close()
	if err != nil {
		os.Exit(1)
	}
}

// collect appends reference temperature and voltage pairs to path until
// count samples have been taken or ctx is cancelled. Each sample uses a fresh
// voltage.
func collect(ctx context.Context, sv *thermometer.SerialVoltage, path string, inverse bool, count int, period time.Duration, l logging.Logger) error {
	probe, err := thermometer.FindDS18B20()
	if err != nil {
		return fmt.Errorf("could not find reference probe: %w", err)
	}
	l.Info("collecting", "probe", probe.ID, "path", path, "inverse", inverse)

	fresh := &freshVoltage{sv: sv}
	for n := 0; count == 0 || n < count; {
		if !sleep(ctx, period) {
			return nil
		}

		s, err := thermometer.Pair(probe, fresh, inverse)
		if err != nil {
			l.Warning("could not take sample, retrying", "error", err)
			if !sleep(ctx, retryPeriod) {
				return nil
			}
			continue
		}

		err = dataset.Append(path, quadfit.Samples{s})
		if err != nil {
			return fmt.Errorf("could not save sample: %w", err)
		}
		n++
		l.Info("sample", "n", n, "x", s.X, "y", s.Y)
	}
	return nil
}

// measure writes temperatures to out until count readings have been taken or
// ctx is cancelled. Until the Arduino prints its first voltage each attempt
// is logged and retried after period; any other error ends the run.
func measure(ctx context.Context, sv *thermometer.SerialVoltage, coeffFile string, count int, period time.Duration, out io.Writer, l logging.Logger) error {
	c := thermometer.DefaultCoefficients
	if coeffFile != "" {
		var err error
		c, err = calibrate.ReadCoefficients(coeffFile)
		if err != nil {
			return err
		}
	}
	l.Info("measuring", "theta0", c[0], "theta1", c[1], "theta2", c[2])

	th := thermometer.New(sv, c)
	for n := 0; count == 0 || n < count; {
		if !sleep(ctx, period) {
			return nil
		}
		t, err := th.Temperature()
		if errors.Is(err, thermometer.ErrNoReading) {
			l.Warning("waiting for first voltage", "error", err)
			continue
		}
		if err != nil {
			return err
		}
		n++
		l.Info("temperature", "n", n, "celsius", t)
		fmt.Fprintf(out, "%.2f°C\n", t)
	}
	return nil
}

// freshVoltage is a VoltageSource that reports an error rather than returning
// the same serial reading twice.
type freshVoltage struct {
	sv   *thermometer.SerialVoltage
	last int
}

func (f *freshVoltage) Voltage() (float64, error) {
	v, seq, err := f.sv.Latest()
	if err != nil {
		return 0, err
	}
	if seq == f.last {
		return 0, fmt.Errorf("no new voltage since reading %d", seq)
	}
	f.last = seq
	return v, nil
}

// sleep waits for d, returning false if ctx is cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
