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

package glyf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

func TestLocaRoundTrip(t *testing.T) {
	cases := []struct {
		offs   []int
		format int16
	}{
		{[]int{0, 0}, 0},
		{[]int{0, 12, 12, 40}, 0},
		{[]int{0, 2 * 0xFFFF}, 0},
		{[]int{0, 100, 2*0xFFFF + 2}, 1},
	}
	for _, c := range cases {
		data, format := encodeLoca(c.offs)
		if format != c.format {
			t.Errorf("%v: format %d, want %d", c.offs, format, c.format)
		}
		enc := &Encoded{
			GlyfData:   make([]byte, c.offs[len(c.offs)-1]),
			LocaData:   data,
			LocaFormat: format,
		}
		got, err := decodeLoca(enc)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.offs, got); d != "" {
			t.Errorf("(-want +got):\n%s", d)
		}
	}
}

func TestLocaErrors(t *testing.T) {
	glyfData := make([]byte, 16)
	cases := []struct {
		loca   []byte
		format int16
	}{
		{[]byte{0, 0}, 0},             // one entry only
		{[]byte{0, 0, 0, 4, 0}, 0},    // odd length
		{[]byte{0, 0, 0, 4, 0, 2}, 0}, // decreasing
		{[]byte{0, 0, 0, 9}, 0},       // past the end of glyf
		{[]byte{0, 0, 0, 0, 0, 0}, 1}, // truncated entry
		{[]byte{0, 0, 0, 0}, 2},
	}
	for i, c := range cases {
		enc := &Encoded{GlyfData: glyfData, LocaData: c.loca, LocaFormat: c.format}
		_, err := decodeLoca(enc)
		if c.format == 2 {
			if !fonterror.IsUnsupported(err) {
				t.Errorf("%d: got %v", i, err)
			}
		} else if !fonterror.IsInvalid(err) {
			t.Errorf("%d: got %v", i, err)
		}
	}
}
