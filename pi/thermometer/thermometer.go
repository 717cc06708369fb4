/*
DESCRIPTION
  thermometer.go provides conversion of sensor voltages to temperatures using
  fitted calibration coefficients, and the pairing of reference temperatures
  with sensor voltages to collect calibration data.

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

// Package thermometer provides a calibrated analog thermometer. An Arduino
// samples the sensor with its 10 bit ADC and prints the voltage over serial;
// the voltage is converted to a temperature with inverse calibration
// coefficients. For calibration, voltages are paired with readings from a
// DS18B20 reference probe.
package thermometer

import (
	"fmt"

	"github.com/ausocean/thermocal/pi/quadfit"
)

// ADC parameters of the Arduino Uno.
const (
	adcRef = 5.0  // Reference voltage.
	adcMax = 1023 // Maximum reading.
)

// DefaultCoefficients are the voltage to temperature coefficients shipped in
// the thermometer firmware.
var DefaultCoefficients = quadfit.Coefficients{-370.26765526, 154.19830290, 28.51526560}

// VoltageSource provides sensor voltages.
type VoltageSource interface {
	Voltage() (float64, error)
}

// TemperatureSource provides reference temperatures in °C.
type TemperatureSource interface {
	Temperature() (float64, error)
}

// ADCVoltage converts a raw ADC reading to volts.
func ADCVoltage(raw int) float64 {
	return adcRef * float64(raw) / adcMax
}

// Thermometer converts sensor voltages to temperatures.
type Thermometer struct {
	src   VoltageSource
	coeff quadfit.Coefficients // Voltage to temperature.
}

// New returns a Thermometer reading from src and converting with the given
// inverse calibration coefficients.
func New(src VoltageSource, c quadfit.Coefficients) *Thermometer {
	return &Thermometer{src: src, coeff: c}
}

// Temperature returns the current temperature in °C.
func (t *Thermometer) Temperature() (float64, error) {
	v, err := t.src.Voltage()
	if err != nil {
		return 0, fmt.Errorf("could not read voltage: %w", err)
	}
	return t.coeff.Eval(v), nil
}

// Pair reads a reference temperature and a sensor voltage and returns them as
// a sample. The forward orientation has temperature as x and voltage as y;
// inverse swaps them.
func Pair(ref TemperatureSource, src VoltageSource, inverse bool) (quadfit.Sample, error) {
	temp, err := ref.Temperature()
	if err != nil {
		return quadfit.Sample{}, fmt.Errorf("could not read reference temperature: %w", err)
	}
	v, err := src.Voltage()
	if err != nil {
		return quadfit.Sample{}, fmt.Errorf("could not read voltage: %w", err)
	}
	if inverse {
		return quadfit.Sample{X: v, Y: temp}, nil
	}
	return quadfit.Sample{X: temp, Y: v}, nil
}
