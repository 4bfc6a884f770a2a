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

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// Encoded holds the binary data of the "glyf" and "loca" tables.
type Encoded struct {
	GlyfData   []byte
	LocaData   []byte
	LocaFormat int16 // indexToLocFormat from the "head" table
}

// Decode converts the data from the "glyf" and "loca" tables into a slice
// of outlines, indexed by glyph ID.
// The returned outlines retain sub-slices of enc.GlyfData.
func Decode(enc *Encoded) ([]Outline, error) {
	offs, err := decodeLoca(enc)
	if err != nil {
		return nil, err
	}

	numGlyphs := len(offs) - 1
	gg := make([]Outline, numGlyphs)
	for i := range gg {
		g, err := decodeGlyph(enc.GlyfData[offs[i]:offs[i+1]])
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		gg[i] = g
	}
	return gg, nil
}

// Encode converts the outlines into "glyf" and "loca" table data.
func Encode(gg []Outline) (*Encoded, error) {
	n := len(gg)

	offs := make([]int, n+1)
	for i, g := range gg {
		l, err := encodeLen(g)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		offs[i+1] = offs[i] + l
	}
	locaData, locaFormat := encodeLoca(offs)

	glyfData := make([]byte, 0, offs[n])
	for _, g := range gg {
		glyfData = appendGlyph(glyfData, g)
	}

	enc := &Encoded{
		GlyfData:   glyfData,
		LocaData:   locaData,
		LocaFormat: locaFormat,
	}
	return enc, nil
}

// decodeGlyph decodes a single glyph.  The result retains sub-slices of data.
func decodeGlyph(data []byte) (Outline, error) {
	if len(data) == 0 {
		return Empty{}, nil
	} else if len(data) < 10 {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/glyf",
			Reason:    "incomplete glyph header",
		}
	}

	numCont := int16(data[0])<<8 | int16(data[1])
	bbox := funit.Rect16{
		LLx: funit.Int16(data[2])<<8 | funit.Int16(data[3]),
		LLy: funit.Int16(data[4])<<8 | funit.Int16(data[5]),
		URx: funit.Int16(data[6])<<8 | funit.Int16(data[7]),
		URy: funit.Int16(data[8])<<8 | funit.Int16(data[9]),
	}

	if numCont >= 0 {
		tail := data[10:]
		l, err := simpleLength(numCont, tail)
		if err != nil {
			return nil, err
		}
		return &Simple{
			Rect16:      bbox,
			NumContours: numCont,
			Tail:        tail[:l],
		}, nil
	}

	comp, err := decodeComposite(data[10:])
	if err != nil {
		return nil, err
	}
	comp.Rect16 = bbox
	return comp, nil
}

func decodeComposite(data []byte) (*Composite, error) {
	var components []Component
	done := false
	weHaveInstructions := false
	for !done {
		if len(data) < 4 {
			return nil, errIncompleteGlyph
		}

		flags := uint16(data[0])<<8 | uint16(data[1])
		glyphIndex := uint16(data[2])<<8 | uint16(data[3])
		data = data[4:]

		if flags&flagWeHaveInstructions != 0 {
			weHaveInstructions = true
		}

		skip := 0
		if flags&flagArg1And2AreWords != 0 {
			skip += 4
		} else {
			skip += 2
		}
		if flags&flagWeHaveAScale != 0 {
			skip += 2
		} else if flags&flagWeHaveAnXAndYScale != 0 {
			skip += 4
		} else if flags&flagWeHaveATwoByTwo != 0 {
			skip += 8
		}
		if len(data) < skip {
			return nil, errIncompleteGlyph
		}
		args := data[:skip]
		data = data[skip:]

		components = append(components, Component{
			Flags:      flags,
			GlyphIndex: glyph.ID(glyphIndex),
			Args:       args,
		})

		done = flags&flagMoreComponents == 0
	}

	var instructions []byte
	if weHaveInstructions && len(data) >= 2 {
		L := int(data[0])<<8 | int(data[1])
		data = data[2:]
		if len(data) > L {
			data = data[:L]
		}
		instructions = data
	}

	// The MORE_COMPONENTS flags are recomputed on encode.  Only the last
	// component carries WE_HAVE_INSTRUCTIONS, and only if instructions
	// are present.
	for i := range components {
		components[i].Flags &^= flagMoreComponents | flagWeHaveInstructions
	}
	if instructions != nil {
		components[len(components)-1].Flags |= flagWeHaveInstructions
	}

	return &Composite{
		Components:   components,
		Instructions: instructions,
	}, nil
}

func encodeLen(g Outline) (int, error) {
	total := 10
	switch g := g.(type) {
	case Empty:
		return 0, nil
	case *Simple:
		total += len(g.Tail)
	case *Composite:
		for _, comp := range g.Components {
			total += 4 + len(comp.Args)
		}
		if g.Instructions != nil {
			total += 2 + len(g.Instructions)
		}
	case nil:
		return 0, errNilOutline
	default:
		return 0, &fonterror.NotSupportedError{
			SubSystem: "sfnt/glyf",
			Feature:   fmt.Sprintf("encoding %T outlines", g),
		}
	}
	for total%glyfAlign != 0 {
		total++
	}
	return total, nil
}

// appendGlyph appends the binary encoding of g to buf.
// The outline must have passed encodeLen without error.
func appendGlyph(buf []byte, g Outline) []byte {
	var numContours int16
	var bbox funit.Rect16
	switch g := g.(type) {
	case *Simple:
		numContours = g.NumContours
		bbox = g.Rect16
	case *Composite:
		numContours = -1
		bbox = g.Rect16
	default:
		return buf
	}

	buf = append(buf,
		byte(numContours>>8), byte(numContours),
		byte(bbox.LLx>>8), byte(bbox.LLx),
		byte(bbox.LLy>>8), byte(bbox.LLy),
		byte(bbox.URx>>8), byte(bbox.URx),
		byte(bbox.URy>>8), byte(bbox.URy))

	switch g := g.(type) {
	case *Simple:
		buf = append(buf, g.Tail...)
	case *Composite:
		for i, comp := range g.Components {
			flags := comp.Flags &^ (flagMoreComponents | flagWeHaveInstructions)
			if i < len(g.Components)-1 {
				flags |= flagMoreComponents
			}
			if i == len(g.Components)-1 && g.Instructions != nil {
				flags |= flagWeHaveInstructions
			}
			buf = append(buf,
				byte(flags>>8), byte(flags),
				byte(comp.GlyphIndex>>8), byte(comp.GlyphIndex))
			buf = append(buf, comp.Args...)
		}
		if g.Instructions != nil {
			L := len(g.Instructions)
			buf = append(buf, byte(L>>8), byte(L))
			buf = append(buf, g.Instructions...)
		}
	}

	for len(buf)%glyfAlign != 0 {
		buf = append(buf, 0)
	}
	return buf
}

// flags used in composite glyph descriptions
const (
	flagArg1And2AreWords   = 0x0001
	flagWeHaveAScale       = 0x0008
	flagMoreComponents     = 0x0020
	flagWeHaveAnXAndYScale = 0x0040
	flagWeHaveATwoByTwo    = 0x0080
	flagWeHaveInstructions = 0x0100
)

const glyfAlign = 2

var (
	errIncompleteGlyph = &fonterror.InvalidFontError{
		SubSystem: "sfnt/glyf",
		Reason:    "incomplete glyph",
	}
	errNilOutline = &fonterror.InvalidFontError{
		SubSystem: "sfnt/glyf",
		Reason:    "missing outline",
	}
)
