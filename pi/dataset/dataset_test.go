/*
DESCRIPTION
  dataset_test.go provides testing for functionality in dataset.go.

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

package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/ausocean/thermocal/pi/quadfit"
)

// TestRead checks parsing of well formed and malformed tables.
func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    quadfit.Samples
		wantErr bool
	}{
		{
			name: "plain",
			in:   "25 2.7083\n30 2.7545\n",
			want: quadfit.Samples{{X: 25, Y: 2.7083}, {X: 30, Y: 2.7545}},
		},
		{
			name: "mixed whitespace and comments",
			in:   "# temp volt\n\n  25\t2.7083  \n30   2.7545 # warm\n1e1 -5e-1\n",
			want: quadfit.Samples{{X: 25, Y: 2.7083}, {X: 30, Y: 2.7545}, {X: 10, Y: -0.5}},
		},
		{
			name: "extra columns",
			in:   "1 2 3\n4 5 6\n",
			want: quadfit.Samples{{X: 1, Y: 2}, {X: 4, Y: 5}},
		},
		{name: "single column", in: "1 2\n3\n", wantErr: true},
		{name: "bad number", in: "1 2\n3 x\n", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "comments only", in: "# nothing\n\n", wantErr: true},
	}

	for _, test := range tests {
		got, err := Read(strings.NewReader(test.in))
		if (err != nil) != test.wantErr {
			t.Errorf("did not get expected error state for %s. Got: %v, Want error: %v", test.name, err, test.wantErr)
			continue
		}
		if len(got) != len(test.want) {
			t.Errorf("did not get expected samples for %s. Got: %v, Want: %v", test.name, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("did not get expected sample %d for %s. Got: %v, Want: %v", i, test.name, got[i], test.want[i])
			}
		}
	}
}

// TestReadEmpty checks the empty table error is distinguishable.
func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("\n\n"))
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, ErrEmpty)
	}
}

// TestWrite checks tables are written one sample per row.
func TestWrite(t *testing.T) {
	in := quadfit.Samples{{X: 25, Y: 2.7083}, {X: 30.5, Y: -1}, {X: 1e-7, Y: 0}}
	const want = "25 2.7083\n30.5 -1\n1e-07 0\n"

	var buf bytes.Buffer
	err := Write(&buf, in)
	if err != nil {
		t.Fatalf("could not write table: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("did not get expected table.\nDiff:\n%v", diff.LineDiff(want, got))
	}
}

// TestLoadAppend checks a table survives a round trip through a file and that
// appending extends it.
func TestLoadAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training_data.txt")
	first := quadfit.Samples{{X: 20, Y: 2.66}, {X: 25, Y: 2.71}}
	second := quadfit.Samples{{X: 30, Y: 2.75}}

	for _, s := range []quadfit.Samples{first, second} {
		err := Append(path, s)
		if err != nil {
			t.Fatalf("could not append to table: %v", err)
		}
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("could not load table: %v", err)
	}
	want := append(append(quadfit.Samples{}, first...), second...)
	if len(got) != len(want) {
		t.Fatalf("did not get expected samples. Got: %v, Want: %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("did not get expected sample %d. Got: %v, Want: %v", i, got[i], want[i])
		}
	}
}

// TestLoadMissing checks a missing file is reported.
func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("did not get expected error. Got: %v, Want: %v", err, os.ErrNotExist)
	}
}
