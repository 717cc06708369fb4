/*
DESCRIPTION
  serial.go provides SerialVoltage, which reads sensor voltages printed one
  per line by an Arduino over a serial connection.

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ausocean/utils/logging"
	"github.com/jacobsa/go-serial/serial"
)

// Serial defaults, matching the Arduino sketch.
const (
	DefaultPort = "/dev/ttyACM0"
	DefaultBaud = 9600
)

// ErrNoReading is returned by Voltage before the first value has been read.
var ErrNoReading = errors.New("no voltage reading yet")

// SerialVoltage keeps the most recent voltage read from a line oriented
// stream of decimal values. Lines that do not parse are skipped.
type SerialVoltage struct {
	voltage float64
	seq     int   // Number of voltages read.
	_err    error // Error that stopped reading, if any.
	mu      sync.Mutex
	in      *bufio.Scanner
	closer  io.Closer
	done    chan struct{} // Closed when reading stops.
	log     logging.Logger
}

// OpenSerial opens the named serial port and returns a SerialVoltage reading
// from it.
func OpenSerial(port string, baud uint, l logging.Logger) (*SerialVoltage, error) {
	rwc, err := serial.Open(serial.OpenOptions{
		PortName:        port,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open serial port %s: %w", port, err)
	}
	l.Info("opened serial port", "port", port, "baud", baud)
	return NewSerialVoltage(rwc, l), nil
}

// NewSerialVoltage returns a SerialVoltage reading from r in the background.
// If r is an io.Closer it is closed by Close, otherwise Close waits for r to
// be exhausted.
func NewSerialVoltage(r io.Reader, l logging.Logger) *SerialVoltage {
	sv := &SerialVoltage{
		in:   bufio.NewScanner(r),
		done: make(chan struct{}),
		log:  l,
	}
	if c, ok := r.(io.Closer); ok {
		sv.closer = c
	}
	go sv.read()
	return sv
}

// read scans voltages until the stream ends.
func (sv *SerialVoltage) read() {
	defer close(sv.done)
	for sv.in.Scan() {
		text := strings.TrimSpace(sv.in.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			sv.log.Debug("could not parse voltage, skipping", "line", text, "error", err)
			continue
		}
		sv.mu.Lock()
		sv.voltage = v
		sv.seq++
		sv.mu.Unlock()
	}

	err := sv.in.Err()
	if err == nil {
		err = io.EOF
	}
	sv.log.Debug("stopped reading voltages", "error", err)
	sv.mu.Lock()
	sv._err = fmt.Errorf("could not scan next value: %w", err)
	sv.mu.Unlock()
}

// Voltage returns the most recent voltage. Concurrency safe.
func (sv *SerialVoltage) Voltage() (float64, error) {
	v, _, err := sv.Latest()
	return v, err
}

// Latest returns the most recent voltage and its sequence number, which
// increases by one for every value read. Once the stream has ended the last
// voltage is still returned along with the error that ended it.
func (sv *SerialVoltage) Latest() (float64, int, error) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.seq == 0 {
		if sv._err != nil {
			return 0, 0, sv._err
		}
		return 0, 0, ErrNoReading
	}
	return sv.voltage, sv.seq, sv._err
}

// Done returns a channel that is closed when reading stops.
func (sv *SerialVoltage) Done() <-chan struct{} {
	return sv.done
}

// Close closes the underlying stream and waits for reading to stop.
func (sv *SerialVoltage) Close() error {
	var err error
	if sv.closer != nil {
		err = sv.closer.Close()
	}
	<-sv.done
	return err
}
