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

// Package hmtx has code for reading and writing the "hhea" and "hmtx" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
package hmtx

// If a glyph has no contours, xMax/xMin are not defined.  The right side
// bearing is always derived using advance width and left side bearing values
// from the "hmtx" table, plus bounding-box information in the glyph
// description:
//
//     rsb = aw - (lsb + xMax - xMin)

import (
	"fmt"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// Metric is the horizontal metric of a single glyph.
type Metric struct {
	Advance uint16
	LSB     int16
}

// Decode extracts the glyph metrics from the "hmtx" table.
// The numLong argument is the numberOfHMetrics value from the "hhea" table.
func Decode(hmtxData []byte, numLong, numGlyphs int) ([]Metric, error) {
	if numLong < 1 || numLong > numGlyphs {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/hmtx",
			Reason:    fmt.Sprintf("invalid numberOfHMetrics %d", numLong),
		}
	}
	need := 4*numLong + 2*(numGlyphs-numLong)
	if len(hmtxData) < need {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/hmtx",
			Reason:    "table too short",
		}
	}

	mm := make([]Metric, numGlyphs)
	var width uint16
	pos := 0
	for i := range mm {
		if i < numLong {
			width = uint16(hmtxData[pos])<<8 | uint16(hmtxData[pos+1])
			pos += 2
		}
		lsb := int16(hmtxData[pos])<<8 | int16(hmtxData[pos+1])
		pos += 2
		mm[i] = Metric{Advance: width, LSB: lsb}
	}
	return mm, nil
}

// Encode creates the "hmtx" table.  Trailing glyphs with the same advance
// width are stored in the short form.  The second return value is the
// number of long metrics, for use in the "hhea" table.
func Encode(mm []Metric) ([]byte, uint16) {
	numGlyphs := len(mm)
	numLong := numGlyphs
	for numLong > 1 && mm[numLong-1].Advance == mm[numLong-2].Advance {
		numLong--
	}

	buf := make([]byte, 0, 4*numLong+2*(numGlyphs-numLong))
	for i, m := range mm {
		if i < numLong {
			buf = append(buf, byte(m.Advance>>8), byte(m.Advance))
		}
		buf = append(buf, byte(m.LSB>>8), byte(m.LSB))
	}
	return buf, uint16(numLong)
}
