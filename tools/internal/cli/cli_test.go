// seehuhn.de/go/fixwidth - make monospaced variants of TrueType/OpenType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		opts    Options
		mode    Mode
		want    uint16
		wantErr bool
	}{
		{Options{Width: "600"}, Batch, 600, false},
		{Options{Width: "65535"}, Batch, 65535, false},
		{Options{}, Batch, 0, true},
		{Options{Width: "0"}, Batch, 0, true},
		{Options{Width: "-5"}, Batch, 0, true},
		{Options{Width: "65536"}, Batch, 0, true},
		{Options{Width: "wide"}, Batch, 0, true},
		{Options{Width: "600", Src: "a.ttf", Dst: "b.ttf"}, Single, 600, false},
		{Options{Width: "600", Src: "a.ttf"}, Single, 0, true},
		{Options{Width: "600", Dst: "b.ttf"}, Single, 0, true},
	}
	for i, c := range cases {
		got, err := c.opts.Validate(c.mode)
		if (err != nil) != c.wantErr {
			t.Errorf("%d: unexpected error %v", i, err)
			continue
		}
		if got != c.want {
			t.Errorf("%d: width %d, want %d", i, got, c.want)
		}
	}
}

func TestDirList(t *testing.T) {
	cases := map[string][]string{
		"":                 nil,
		"fonts":            {"fonts"},
		"out/ttf, out/otf": {"out/ttf", "out/otf"},
		"a,,b,":            {"a", "b"},
	}
	for in, want := range cases {
		opts := &Options{Dirs: in}
		if d := cmp.Diff(want, opts.DirList()); d != "" {
			t.Errorf("%q (-want +got):\n%s", in, d)
		}
	}
}

func TestNewParserDefaults(t *testing.T) {
	opts := &Options{}
	NewParser("mono-test", "test", Single, opts)
	if opts.Suffix != " Mono" {
		t.Errorf("default suffix %q", opts.Suffix)
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		log, err := NewLogger(verbose)
		if err != nil {
			t.Fatal(err)
		}
		if got := log.Desugar().Core().Enabled(zapcore.DebugLevel); got != verbose {
			t.Errorf("verbose=%t: debug enabled %t", verbose, got)
		}
	}
}
