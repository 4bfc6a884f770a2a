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

package hmtx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHmtxRoundTrip(t *testing.T) {
	cases := [][]Metric{
		{{Advance: 500, LSB: 10}},
		{{Advance: 500, LSB: 10}, {Advance: 600, LSB: -20}},
		{{Advance: 0, LSB: 0}, {Advance: 600, LSB: 1}, {Advance: 600, LSB: 2}, {Advance: 600, LSB: 3}},
		{{Advance: 600, LSB: 1}, {Advance: 600, LSB: 2}, {Advance: 700, LSB: 3}},
	}
	for i, mm := range cases {
		data, numLong := Encode(mm)
		got, err := Decode(data, int(numLong), len(mm))
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if d := cmp.Diff(mm, got); d != "" {
			t.Errorf("%d: (-want +got):\n%s", i, d)
		}
	}
}

func TestHmtxFold(t *testing.T) {
	mm := []Metric{{Advance: 0}, {Advance: 600}, {Advance: 600}, {Advance: 600}}
	data, numLong := Encode(mm)
	if numLong != 2 {
		t.Errorf("numLong = %d, want 2", numLong)
	}
	if len(data) != 2*4+2*2 {
		t.Errorf("len(data) = %d, want 12", len(data))
	}
}

func TestHmtxDecodeErrors(t *testing.T) {
	data := []byte{0, 100, 0, 0}
	if _, err := Decode(data, 0, 1); err == nil {
		t.Error("numLong=0 accepted")
	}
	if _, err := Decode(data, 2, 1); err == nil {
		t.Error("numLong>numGlyphs accepted")
	}
	if _, err := Decode(data, 1, 3); err == nil {
		t.Error("short table accepted")
	}
}

func TestHheaRoundTrip(t *testing.T) {
	h := &Hhea{
		Version:             0x00010000,
		Ascent:              800,
		Descent:             -200,
		LineGap:             90,
		AdvanceWidthMax:     1200,
		MinLeftSideBearing:  -50,
		MinRightSideBearing: -10,
		XMaxExtent:          1180,
		CaretSlopeRise:      1,
		NumOfLongHorMetrics: 7,
	}
	data := h.Encode()
	if len(data) != hheaLength {
		t.Fatalf("len(data) = %d", len(data))
	}
	got, err := DecodeHhea(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(h, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSummarize(t *testing.T) {
	mm := []Metric{
		{Advance: 600, LSB: 0},   // empty
		{Advance: 600, LSB: 100}, // 100..500
		{Advance: 600, LSB: -20}, // -20..640
	}
	type xr struct {
		xMin, xMax int
		ok         bool
	}
	boxes := []xr{{}, {100, 500, true}, {-20, 640, true}}

	h := &Hhea{}
	h.Summarize(mm, func(i int) (int, int, bool) {
		b := boxes[i]
		return b.xMin, b.xMax, b.ok
	})

	if h.AdvanceWidthMax != 600 {
		t.Errorf("AdvanceWidthMax = %d", h.AdvanceWidthMax)
	}
	if h.MinLeftSideBearing != -20 {
		t.Errorf("MinLeftSideBearing = %d", h.MinLeftSideBearing)
	}
	// rsb for glyph 2: 600 - (-20 + 660) = -40
	if h.MinRightSideBearing != -40 {
		t.Errorf("MinRightSideBearing = %d", h.MinRightSideBearing)
	}
	if h.XMaxExtent != 640 {
		t.Errorf("XMaxExtent = %d", h.XMaxExtent)
	}
}
