/*
DESCRIPTION
  ds18b20.go provides the DS18B20 1-Wire reference temperature probe.

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

package thermometer

import (
	"errors"
	"fmt"

	"github.com/yryz/ds18b20"
)

// DS18B20 is a reference probe on the 1-Wire bus.
type DS18B20 struct {
	ID string
}

// FindDS18B20 returns the first DS18B20 connected.
func FindDS18B20() (*DS18B20, error) {
	sensors, err := ds18b20.Sensors()
	if err != nil {
		return nil, fmt.Errorf("could not list DS18B20 sensors: %w", err)
	}
	if len(sensors) < 1 {
		return nil, errors.New("no DS18B20 sensors connected")
	}
	return &DS18B20{ID: sensors[0]}, nil
}

// Temperature returns the probe temperature in °C.
func (d *DS18B20) Temperature() (float64, error) {
	t, err := ds18b20.Temperature(d.ID)
	if err != nil {
		return 0, fmt.Errorf("could not read DS18B20 %s: %w", d.ID, err)
	}
	return t, nil
}
