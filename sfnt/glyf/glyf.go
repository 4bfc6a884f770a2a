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

// Package glyf implements reading and writing the "glyf" and "loca" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package glyf

import (
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Outline is the outline of a single glyph.
// The concrete type is one of Empty, *Simple, *Composite or Extent.
type Outline interface {
	isOutline()
}

// Empty is the outline of a glyph which has no contours.
type Empty struct{}

// Simple is a glyph described by its own contours.
type Simple struct {
	funit.Rect16
	NumContours int16

	// Tail holds the encoded glyph data following the glyph header:
	// endPtsOfContours, instructions, flags and coordinates.
	Tail []byte
}

// Composite is a glyph assembled from transformed copies of other glyphs.
type Composite struct {
	funit.Rect16
	Components   []Component
	Instructions []byte
}

// Component is a single component of a composite glyph.
type Component struct {
	Flags      uint16
	GlyphIndex glyph.ID
	Args       []byte
}

// Extent describes a glyph for which only the bounding box is known, for
// example a glyph stored as a CFF charstring.  Glyphs of this type cannot
// be encoded into a "glyf" table.
type Extent struct {
	funit.Rect16
}

func (Empty) isOutline()      {}
func (*Simple) isOutline()    {}
func (*Composite) isOutline() {}
func (Extent) isOutline()     {}

// Bounds returns the bounding box of a glyph outline.  The second return
// value is false if the outline draws nothing, in which case the bounding
// box is undefined.
func Bounds(o Outline) (funit.Rect16, bool) {
	switch o := o.(type) {
	case *Simple:
		if o == nil || o.NumContours == 0 {
			return funit.Rect16{}, false
		}
		return o.Rect16, true
	case *Composite:
		if o == nil || len(o.Components) == 0 {
			return funit.Rect16{}, false
		}
		return o.Rect16, true
	case Extent:
		if o.LLx == 0 && o.LLy == 0 && o.URx == 0 && o.URy == 0 {
			return funit.Rect16{}, false
		}
		return o.Rect16, true
	default:
		return funit.Rect16{}, false
	}
}

// Width returns the horizontal extent xMax-xMin of the glyph outline.
// The second return value is false if the outline has no bounding box.
func Width(o Outline) (int, bool) {
	bbox, ok := Bounds(o)
	if !ok {
		return 0, false
	}
	return int(bbox.URx) - int(bbox.LLx), true
}

// IsComposite reports whether o is a composite glyph.
func IsComposite(o Outline) bool {
	_, ok := o.(*Composite)
	return ok
}
