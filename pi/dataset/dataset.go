/*
DESCRIPTION
  dataset.go provides reading and writing of two column, whitespace separated
  numeric tables of (x, y) samples.

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

// Package dataset reads and writes sample tables. Each row holds an x and a y
// value separated by whitespace. Blank lines and anything following a '#' are
// ignored, and columns beyond the second are skipped.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ausocean/thermocal/pi/quadfit"
)

const comment = "#"

// ErrEmpty is returned when a table holds no rows.
var ErrEmpty = errors.New("no samples in table")

// Load reads the table in the named file.
func Load(path string) (quadfit.Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open data file: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return s, nil
}

// Read reads a table from r.
func Read(r io.Reader) (quadfit.Samples, error) {
	var s quadfit.Samples
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.Index(text, comment); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", line, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse x: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse y: %w", line, err)
		}
		s = append(s, quadfit.Sample{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not scan table: %w", err)
	}
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// Write writes s to w as a table, one sample per row.
func Write(w io.Writer, s quadfit.Samples) error {
	bw := bufio.NewWriter(w)
	for _, v := range s {
		_, err := fmt.Fprintf(bw, "%s %s\n", format(v.X), format(v.Y))
		if err != nil {
			return fmt.Errorf("could not write sample: %w", err)
		}
	}
	return bw.Flush()
}

// Append adds s to the end of the table in the named file, creating it if
// needed.
func Append(path string, s quadfit.Samples) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open data file: %w", err)
	}
	err = Write(f, s)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
