/*
DESCRIPTION
  hw.go provides parsing of the thermo-logger hardware config.

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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ausocean/utils/filemap"
	"github.com/ausocean/utils/sliceutils"

	"github.com/ausocean/thermocal/pi/thermometer"
)

var hwKeys = []string{"port", "baud"}

type hwConfig struct {
	port string
	baud uint
}

// parseHW parses a comma separated list of key=value hardware settings.
// Missing settings take the thermometer defaults.
func parseHW(s string) (hwConfig, error) {
	cfg := hwConfig{port: thermometer.DefaultPort, baud: thermometer.DefaultBaud}
	if strings.TrimSpace(s) == "" {
		return cfg, nil
	}

	for k, v := range filemap.Split(s, ",", "=") {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !sliceutils.ContainsString(hwKeys, k) {
			return cfg, fmt.Errorf("unknown hardware setting: %s", k)
		}
		switch k {
		case "port":
			if v == "" {
				return cfg, errors.New("empty port")
			}
			cfg.port = v
		case "baud":
			b, err := strconv.ParseUint(v, 10, 32)
			if err != nil || b == 0 {
				return cfg, fmt.Errorf("invalid baud rate: %q", v)
			}
			cfg.baud = uint(b)
		}
	}
	return cfg, nil
}
