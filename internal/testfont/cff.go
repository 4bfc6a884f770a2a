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

package testfont

import (
	"fmt"
	"strings"

	"seehuhn.de/go/postscript/funit"
)

// makeCFF returns a minimal, name-keyed "CFF " table with one charstring
// per glyph.
func makeCFF(family string, gg []CFFGlyph) []byte {
	nameIdx := cffIndex([][]byte{[]byte(strings.ReplaceAll(family, " ", ""))})

	charset := []byte{0} // format 0
	for _, g := range gg[1:] {
		sid, ok := stdStrings[g.Name]
		if !ok {
			panic(fmt.Sprintf("glyph name %q is not a standard string", g.Name))
		}
		charset = append(charset, byte(sid>>8), byte(sid))
	}

	charStrings := make([][]byte, len(gg))
	for i, g := range gg {
		charStrings[i] = rectCharString(g.Box)
	}
	csIdx := cffIndex(charStrings)

	private := []byte{139, 21} // 0 nominalWidthX

	const topDictLen = 23
	charsetOffs := 4 + len(nameIdx) + (2 + 1 + 2 + topDictLen) + 2 + 2
	charStringsOffs := charsetOffs + len(charset)
	privateOffs := charStringsOffs + len(csIdx)

	var topDict []byte
	topDict = appendInt32(topDict, charsetOffs)
	topDict = append(topDict, 15) // charset
	topDict = appendInt32(topDict, charStringsOffs)
	topDict = append(topDict, 17) // CharStrings
	topDict = appendInt32(topDict, len(private))
	topDict = appendInt32(topDict, privateOffs)
	topDict = append(topDict, 18) // Private
	if len(topDict) != topDictLen {
		panic("top dict length mismatch")
	}

	res := []byte{1, 0, 4, 1} // header
	res = append(res, nameIdx...)
	res = append(res, cffIndex([][]byte{topDict})...)
	res = append(res, 0, 0) // String INDEX
	res = append(res, 0, 0) // Global Subr INDEX
	res = append(res, charset...)
	res = append(res, csIdx...)
	res = append(res, private...)
	return res
}

func rectCharString(box *funit.Rect16) []byte {
	var res []byte
	if box != nil {
		w := int(box.URx) - int(box.LLx)
		h := int(box.URy) - int(box.LLy)
		res = appendInt16(res, int(box.LLx))
		res = appendInt16(res, int(box.LLy))
		res = append(res, 21) // rmoveto
		res = appendInt16(res, w)
		res = append(res, 6) // hlineto
		res = appendInt16(res, h)
		res = append(res, 7) // vlineto
		res = appendInt16(res, -w)
		res = append(res, 6) // hlineto
	}
	return append(res, 14) // endchar
}

func cffIndex(items [][]byte) []byte {
	count := len(items)
	if count == 0 {
		return []byte{0, 0}
	}
	total := 1
	for _, item := range items {
		total += len(item)
	}
	offSize := 1
	if total > 0xFF {
		offSize = 2
	}

	res := []byte{byte(count >> 8), byte(count), byte(offSize)}
	pos := 1
	appendOffs := func(x int) {
		if offSize == 2 {
			res = append(res, byte(x>>8))
		}
		res = append(res, byte(x))
	}
	appendOffs(pos)
	for _, item := range items {
		pos += len(item)
		appendOffs(pos)
	}
	for _, item := range items {
		res = append(res, item...)
	}
	return res
}

// appendInt16 appends a charstring shortint.
func appendInt16(buf []byte, x int) []byte {
	return append(buf, 28, byte(x>>8), byte(x))
}

// appendInt32 appends a DICT longint.
func appendInt32(buf []byte, x int) []byte {
	return append(buf, 29, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
}

// stdStrings lists some of the CFF standard strings.
var stdStrings = map[string]int{
	"space":  1,
	"period": 15,
	"zero":   17,
	"A":      34,
	"B":      35,
	"M":      46,
	"W":      56,
	"Z":      59,
	"a":      66,
	"m":      78,
	"w":      88,
}

// ExampleCFF returns the glyphs of a small CFF-based font, with the same
// geometry as the corresponding glyphs of Example.
func ExampleCFF() []CFFGlyph {
	box := func(x0, y0, x1, y1 funit.Int16) *funit.Rect16 {
		return &funit.Rect16{LLx: x0, LLy: y0, URx: x1, URy: y1}
	}
	return []CFFGlyph{
		{Name: ".notdef", Advance: 500, Box: box(50, 0, 450, 700)},
		{Name: "space", Advance: 250},
		{Name: "A", Advance: 500, Box: box(50, 0, 450, 700)},
		{Name: "W", Advance: 900, Box: box(50, 0, 850, 700)},
		{Name: "M", Advance: 600, Box: box(0, 0, 600, 700)},
	}
}
