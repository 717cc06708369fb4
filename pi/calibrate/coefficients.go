/*
DESCRIPTION
  coefficients.go provides storage of fitted coefficients.

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
	"fmt"
	"strconv"

	"github.com/ausocean/utils/filemap"

	"github.com/ausocean/thermocal/pi/quadfit"
)

// Coefficient file keys, in write order.
var coeffKeys = []string{"theta0", "theta1", "theta2"}

// WriteCoefficients writes c to the file at path, one "thetaN value" pair per
// line.
func WriteCoefficients(path string, c quadfit.Coefficients) error {
	m := make(map[string]string, len(c))
	for i, k := range coeffKeys {
		m[k] = strconv.FormatFloat(c[i], 'g', -1, 64)
	}
	err := filemap.WriteTo(path, "\n", " ", m, coeffKeys)
	if err != nil {
		return fmt.Errorf("could not write coefficients: %w", err)
	}
	return nil
}

// ReadCoefficients reads coefficients written by WriteCoefficients.
func ReadCoefficients(path string) (quadfit.Coefficients, error) {
	var c quadfit.Coefficients
	m, err := filemap.ReadFrom(path, "\n", " ")
	if err != nil {
		return c, fmt.Errorf("could not read coefficients: %w", err)
	}
	for i, k := range coeffKeys {
		v, ok := m[k]
		if !ok {
			return c, fmt.Errorf("coefficient file %s is missing %s", path, k)
		}
		c[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("could not parse %s: %w", k, err)
		}
	}
	return c, nil
}
