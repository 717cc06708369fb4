/*
NAME
  smartlogger - rolling file logger for the calibration tools

DESCRIPTION
  smartlogger provides a lumberjack backed log file that is rotated by size
  and age, and a constructor for the logging.Logger writing to it.

LICENSE
  smartlogger is Copyright (C) 2017-2026 the Australian Ocean Lab (AusOcean).

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

package smartlogger

import (
	"io"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"
)

// Log file rolling parameters.
const (
	logMaxSize   = 500 // MB.
	logMaxBackup = 10
	logMaxAge    = 28 // Days.
	logSuppress  = true
)

type Smartlogger struct {
	path      string
	LogRoller lumberjack.Logger
}

// New returns a Smartlogger writing to name.log in the directory path.
func New(path, name string) *Smartlogger {
	return &Smartlogger{
		path: path,
		LogRoller: lumberjack.Logger{
			Filename:   filepath.Join(path, name+".log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		},
	}
}

// Filename returns the path of the current log file.
func (s *Smartlogger) Filename() string {
	return s.LogRoller.Filename
}

// Rotate closes the current log file and dates it, followed by opening a new log file
func (s *Smartlogger) Rotate() error {
	return s.LogRoller.Rotate()
}

// Close closes the current log file.
func (s *Smartlogger) Close() error {
	return s.LogRoller.Close()
}

// Logger returns a logger at the given level writing to the log file and any
// extra writers, e.g. os.Stderr. Levels outside logging.Debug to
// logging.Fatal are defaulted to logging.Info, which is reported by the
// returned bool being false.
func (s *Smartlogger) Logger(level int, extra ...io.Writer) (logging.Logger, bool) {
	valid := ValidLevel(level)
	if !valid {
		level = int(logging.Info)
	}
	w := io.MultiWriter(append([]io.Writer{&s.LogRoller}, extra...)...)
	return logging.New(int8(level), w, logSuppress), valid
}

// ValidLevel returns true if level is a logging level.
func ValidLevel(level int) bool {
	return level >= int(logging.Debug) && level <= int(logging.Fatal)
}
