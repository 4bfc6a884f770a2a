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
	"fmt"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// locaEntrySize returns the size in bytes of a loca entry, and the factor
// converting an entry into a byte offset into the glyf table.
func locaEntrySize(format int16) (size, scale int, err error) {
	switch format {
	case 0:
		return 2, 2, nil
	case 1:
		return 4, 1, nil
	default:
		return 0, 0, &fonterror.NotSupportedError{
			SubSystem: "sfnt/loca",
			Feature:   fmt.Sprintf("loca table format %d", format),
		}
	}
}

// decodeLoca returns the glyph offsets stored in the loca table.  There is
// one more offset than there are glyphs.  Offsets are non-decreasing and
// point into the glyf table.
func decodeLoca(enc *Encoded) ([]int, error) {
	size, scale, err := locaEntrySize(enc.LocaFormat)
	if err != nil {
		return nil, err
	}
	data := enc.LocaData
	if len(data) < 2*size || len(data)%size != 0 {
		return nil, errLocaLength
	}

	offs := make([]int, len(data)/size)
	prev := 0
	for i := range offs {
		x := 0
		for _, b := range data[i*size : (i+1)*size] {
			x = x<<8 | int(b)
		}
		pos := scale * x
		if pos < prev || pos > len(enc.GlyfData) {
			return nil, &fonterror.InvalidFontError{
				SubSystem: "sfnt/loca",
				Reason:    fmt.Sprintf("invalid offset %d for glyph %d", pos, i),
			}
		}
		offs[i] = pos
		prev = pos
	}
	return offs, nil
}

// encodeLoca returns the loca table for the given offsets, using the short
// format whenever possible.  All offsets must be even.
func encodeLoca(offs []int) ([]byte, int16) {
	var format int16
	if offs[len(offs)-1] > 2*0xFFFF {
		format = 1
	}
	size, scale, _ := locaEntrySize(format)

	data := make([]byte, size*len(offs))
	for i, off := range offs {
		x := off / scale
		entry := data[i*size : (i+1)*size]
		for k := size - 1; k >= 0; k-- {
			entry[k] = byte(x)
			x >>= 8
		}
	}
	return data, format
}

var errLocaLength = &fonterror.InvalidFontError{
	SubSystem: "sfnt/loca",
	Reason:    "invalid table length",
}
