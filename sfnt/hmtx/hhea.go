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
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// Hhea is the binary layout of the "hhea" table.
type Hhea struct {
	Version             uint32
	Ascent              int16
	Descent             int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	Reserved            [4]int16
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

const hheaLength = 36

// DecodeHhea reads the "hhea" table.
func DecodeHhea(data []byte) (*Hhea, error) {
	if len(data) < hheaLength {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/hhea",
			Reason:    "table too short",
		}
	}
	h := &Hhea{}
	err := binary.Read(bytes.NewReader(data), binary.BigEndian, h)
	if err != nil {
		return nil, err
	}
	if h.Version>>16 != 1 {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "sfnt/hhea",
			Feature:   fmt.Sprintf("table version %08x", h.Version),
		}
	}
	if h.MetricDataFormat != 0 {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "sfnt/hhea",
			Feature:   fmt.Sprintf("metric data format %d", h.MetricDataFormat),
		}
	}
	return h, nil
}

// Encode returns the binary form of the "hhea" table.
func (h *Hhea) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, hheaLength))
	_ = binary.Write(buf, binary.BigEndian, h)
	return buf.Bytes()
}

// Summarize recomputes the fields advanceWidthMax, minLeftSideBearing,
// minRightSideBearing and xMaxExtent from the glyph metrics.
// The function xRange returns the horizontal extent of glyph i, with ok set
// to false for glyphs which draw nothing.  Only glyphs which draw something
// contribute to the side bearing and extent fields.  If xRange is nil, only
// advanceWidthMax is updated.
func (h *Hhea) Summarize(mm []Metric, xRange func(i int) (xMin, xMax int, ok bool)) {
	var advMax uint16
	for _, m := range mm {
		advMax = max(advMax, m.Advance)
	}
	h.AdvanceWidthMax = advMax
	if xRange == nil {
		return
	}

	minLSB, minRSB, maxExtent := 0, 0, 0
	first := true
	for i, m := range mm {
		xMin, xMax, ok := xRange(i)
		if !ok {
			continue
		}
		lsb := int(m.LSB)
		extent := lsb + xMax - xMin
		rsb := int(m.Advance) - extent
		if first {
			minLSB, minRSB, maxExtent = lsb, rsb, extent
			first = false
			continue
		}
		minLSB = min(minLSB, lsb)
		minRSB = min(minRSB, rsb)
		maxExtent = max(maxExtent, extent)
	}

	h.MinLeftSideBearing = clampInt16(minLSB)
	h.MinRightSideBearing = clampInt16(minRSB)
	h.XMaxExtent = clampInt16(maxExtent)
}

func clampInt16(x int) int16 {
	if x < -32768 {
		return -32768
	} else if x > 32767 {
		return 32767
	}
	return int16(x)
}
