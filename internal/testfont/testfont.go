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

// Package testfont builds small fonts for use in unit tests.
package testfont

import (
	"bytes"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/post"

	"seehuhn.de/go/fixwidth/sfnt/glyf"
	"seehuhn.de/go/fixwidth/sfnt/hmtx"
	"seehuhn.de/go/fixwidth/sfnt/name"
)

// Glyph describes one glyph of a test font.
type Glyph struct {
	Name    string
	Advance uint16
	Outline glyf.Outline
}

// GoRegular returns the Go Regular TrueType font.
func GoRegular() []byte {
	return goregular.TTF
}

// Rect returns a simple glyph consisting of a single rectangle.
func Rect(x0, y0, x1, y1 funit.Int16) glyf.Outline {
	o, err := glyf.Pack([]glyf.Contour{{
		{X: x0, Y: y0, OnCurve: true},
		{X: x0, Y: y1, OnCurve: true},
		{X: x1, Y: y1, OnCurve: true},
		{X: x1, Y: y0, OnCurve: true},
	}}, nil)
	if err != nil {
		panic(err)
	}
	return o
}

// Composite returns a composite glyph which places the given glyphs at
// the origin.  The bounding box is stored as given.
func Composite(bbox funit.Rect16, gids ...glyph.ID) glyf.Outline {
	res := &glyf.Composite{Rect16: bbox}
	for _, gid := range gids {
		res.Components = append(res.Components, glyf.Component{
			Flags:      0x0003, // ARG_1_AND_2_ARE_WORDS | ARGS_ARE_XY_VALUES
			GlyphIndex: gid,
			Args:       []byte{0, 0, 0, 0},
		})
	}
	return res
}

// Example returns the glyphs of a small TrueType font:
//
//	.notdef  advance 500, box  50..450
//	space    advance 250, empty
//	A        advance 500, box  50..450 (drawn width 400)
//	W        advance 900, box  50..850 (drawn width 800)
//	M        advance 600, box   0..600 (drawn width 600)
//	Aring    advance 500, composite of A
func Example() []Glyph {
	return []Glyph{
		{Name: ".notdef", Advance: 500, Outline: Rect(50, 0, 450, 700)},
		{Name: "space", Advance: 250, Outline: glyf.Empty{}},
		{Name: "A", Advance: 500, Outline: Rect(50, 0, 450, 700)},
		{Name: "W", Advance: 900, Outline: Rect(50, 0, 850, 700)},
		{Name: "M", Advance: 600, Outline: Rect(0, 0, 600, 700)},
		{Name: "Aring", Advance: 500, Outline: Composite(funit.Rect16{LLx: 50, URx: 450, URy: 900}, 2)},
	}
}

// TrueType returns the binary form of a TrueType font with the given
// family name and glyphs.
func TrueType(family string, gg []Glyph) []byte {
	outlines := make([]glyf.Outline, len(gg))
	for i, g := range gg {
		outlines[i] = g.Outline
	}
	enc, err := glyf.Encode(outlines)
	if err != nil {
		panic(err)
	}

	tables := commonTables(family, gg, func(i int) (funit.Rect16, bool) {
		return glyf.Bounds(gg[i].Outline)
	})
	tables["glyf"] = enc.GlyfData
	tables["loca"] = enc.LocaData
	putUint16(tables["head"][50:], uint16(enc.LocaFormat))

	maxp := make([]byte, 32)
	putUint16(maxp[0:], 1) // version 1.0
	putUint16(maxp[4:], uint16(len(gg)))
	var maxPoints, maxContours uint16
	for _, o := range outlines {
		if g, ok := o.(*glyf.Simple); ok {
			maxPoints = max(maxPoints, uint16(g.NumPoints()))
			maxContours = max(maxContours, uint16(g.NumContours))
		}
	}
	putUint16(maxp[6:], maxPoints)
	putUint16(maxp[8:], maxContours)
	putUint16(maxp[14:], 2) // maxZones
	tables["maxp"] = maxp

	return writeFont(0x00010000, tables)
}

// CFFGlyph describes one glyph of a CFF-based test font.
// Glyph names must be CFF standard strings.
type CFFGlyph struct {
	Name    string
	Advance uint16
	Box     *funit.Rect16 // nil for an empty glyph
}

// OpenType returns the binary form of an OpenType font with CFF outlines.
func OpenType(family string, gg []CFFGlyph) []byte {
	tg := make([]Glyph, len(gg))
	for i, g := range gg {
		tg[i] = Glyph{Name: g.Name, Advance: g.Advance}
	}
	tables := commonTables(family, tg, func(i int) (funit.Rect16, bool) {
		if gg[i].Box == nil {
			return funit.Rect16{}, false
		}
		return *gg[i].Box, true
	})
	tables["CFF "] = makeCFF(family, gg)

	maxp := make([]byte, 6)
	putUint16(maxp[2:], 0x5000) // version 0.5
	putUint16(maxp[4:], uint16(len(gg)))
	tables["maxp"] = maxp

	return writeFont(0x4F54544F, tables) // "OTTO"
}

func commonTables(family string, gg []Glyph, bounds func(int) (funit.Rect16, bool)) map[string][]byte {
	names := make([]string, len(gg))
	metrics := make([]hmtx.Metric, len(gg))
	var fontBBox funit.Rect16
	first := true
	for i, g := range gg {
		names[i] = g.Name
		metrics[i].Advance = g.Advance
		if bbox, ok := bounds(i); ok {
			metrics[i].LSB = int16(bbox.LLx)
			if first {
				fontBBox = bbox
				first = false
			} else {
				fontBBox.LLx = min(fontBBox.LLx, bbox.LLx)
				fontBBox.LLy = min(fontBBox.LLy, bbox.LLy)
				fontBBox.URx = max(fontBBox.URx, bbox.URx)
				fontBBox.URy = max(fontBBox.URy, bbox.URy)
			}
		}
	}

	head := make([]byte, 54)
	putUint16(head[0:], 1)       // version 1.0
	putUint16(head[4:], 1)       // fontRevision 1.0
	putUint16(head[12:], 0x5F0F) // magicNumber
	putUint16(head[14:], 0x3CF5)
	putUint16(head[16:], 0x0003) // flags
	putUint16(head[18:], 1000)   // unitsPerEm
	putUint16(head[36:], uint16(fontBBox.LLx))
	putUint16(head[38:], uint16(fontBBox.LLy))
	putUint16(head[40:], uint16(fontBBox.URx))
	putUint16(head[42:], uint16(fontBBox.URy))
	putUint16(head[46:], 8) // lowestRecPPEM
	putUint16(head[48:], 2) // fontDirectionHint

	hmtxData, numLong := hmtx.Encode(metrics)
	hhea := &hmtx.Hhea{
		Version:             0x00010000,
		Ascent:              800,
		Descent:             -200,
		CaretSlopeRise:      1,
		NumOfLongHorMetrics: numLong,
	}
	hhea.Summarize(metrics, func(i int) (int, int, bool) {
		bbox, ok := bounds(i)
		return int(bbox.LLx), int(bbox.URx), ok
	})

	postInfo := &post.Info{
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		Names:              names,
	}

	nameTable := &name.Table{}
	for id, val := range map[sfnt.NameID]string{
		sfnt.NameIDFamily:     family,
		sfnt.NameIDSubfamily:  "Regular",
		sfnt.NameIDFull:       family + " Regular",
		sfnt.NameIDPostScript: family + "-Regular",
	} {
		if err := nameTable.Set(name.WindowsEnglish(id), val); err != nil {
			panic(err)
		}
	}
	nameData, err := nameTable.Encode()
	if err != nil {
		panic(err)
	}

	return map[string][]byte{
		"head": head,
		"hhea": hhea.Encode(),
		"hmtx": hmtxData,
		"post": postInfo.Encode(),
		"name": nameData,
		"cmap": emptyCmap,
	}
}

func writeFont(scalerType uint32, tables map[string][]byte) []byte {
	buf := &bytes.Buffer{}
	_, err := header.Write(buf, scalerType, tables)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// emptyCmap is a "cmap" table with a single format 4 subtable which maps
// no characters.
var emptyCmap = []byte{
	0, 0, // version
	0, 1, // numTables
	0, 3, 0, 1, 0, 0, 0, 12, // Windows, Unicode BMP, offset 12

	0, 4, // format
	0, 24, // length
	0, 0, // language
	0, 2, // segCountX2
	0, 2, // searchRange
	0, 0, // entrySelector
	0, 0, // rangeShift
	0xFF, 0xFF, // endCode
	0, 0, // reservedPad
	0xFF, 0xFF, // startCode
	0, 1, // idDelta
	0, 0, // idRangeOffset
}

func putUint16(buf []byte, x uint16) {
	buf[0] = byte(x >> 8)
	buf[1] = byte(x)
}
