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

// Package sfnt holds the in-memory representation of a TrueType or
// OpenType font, as needed to change horizontal metrics, glyph outlines
// and font names.
//
// Tables which are not managed by this package are kept as raw bytes and
// written back unchanged.
package sfnt

import (
	"errors"
	"io"
	"time"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
	"seehuhn.de/go/fixwidth/sfnt/glyf"
	"seehuhn.de/go/fixwidth/sfnt/hmtx"
	"seehuhn.de/go/fixwidth/sfnt/name"
)

// Font is a TrueType or OpenType font.
//
// Glyphs are addressed by name.  The glyph order is fixed when the font is
// read.
type Font struct {
	// ScalerType is the sfnt version tag of the font file.
	ScalerType uint32

	tables map[string][]byte

	glyphOrder []string
	index      map[string]glyph.ID

	metrics []hmtx.Metric
	hhea    *hmtx.Hhea

	// outlines is nil if the font has neither a "glyf" nor a "CFF " table.
	outlines        []glyf.Outline
	isCFF           bool
	outlinesChanged bool

	names *name.Table

	closer io.Closer

	// now returns the time stored in head.modified on write.
	now func() time.Time
}

// The error types used by this package.
type (
	InvalidFontError  = fonterror.InvalidFontError
	NotSupportedError = fonterror.NotSupportedError
)

// ErrUnknownGlyph is returned when a glyph name is not in the glyph order.
var ErrUnknownGlyph = errors.New("sfnt: unknown glyph")

// Close releases the file the font was loaded from, if any.
func (f *Font) Close() error {
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphOrder)
}

// GlyphOrder returns the glyph names, in glyph ID order.
// The returned slice must not be modified.
func (f *Font) GlyphOrder() []string {
	return f.glyphOrder
}

// GlyphID returns the glyph ID of the named glyph.
func (f *Font) GlyphID(glyphName string) (glyph.ID, bool) {
	gid, ok := f.index[glyphName]
	return gid, ok
}

// HasOutlines reports whether the font has glyph outlines, either in a
// "glyf" or in a "CFF " table.
func (f *Font) HasOutlines() bool {
	return f.outlines != nil
}

// CanRedraw reports whether glyph outlines can be replaced.
// This is only the case for fonts with TrueType outlines.
func (f *Font) CanRedraw() bool {
	return f.outlines != nil && !f.isCFF
}

// IsCFF reports whether the font has CFF-based outlines.
func (f *Font) IsCFF() bool {
	return f.isCFF
}

// Outline returns the outline of the named glyph.
// The second return value is false if the font has no outlines or if the
// glyph does not exist.
func (f *Font) Outline(glyphName string) (glyf.Outline, bool) {
	gid, ok := f.index[glyphName]
	if !ok || f.outlines == nil {
		return nil, false
	}
	return f.outlines[gid], true
}

// SetOutline replaces the outline of the named glyph.
func (f *Font) SetOutline(glyphName string, o glyf.Outline) error {
	if !f.CanRedraw() {
		return &NotSupportedError{
			SubSystem: "sfnt",
			Feature:   "replacing outlines of CFF-based fonts",
		}
	}
	if o == nil {
		return errors.New("sfnt: nil outline")
	}
	gid, ok := f.index[glyphName]
	if !ok {
		return ErrUnknownGlyph
	}
	f.outlines[gid] = o
	f.outlinesChanged = true
	return nil
}

// Metric returns the horizontal metric of the named glyph.
func (f *Font) Metric(glyphName string) (hmtx.Metric, bool) {
	gid, ok := f.index[glyphName]
	if !ok {
		return hmtx.Metric{}, false
	}
	return f.metrics[gid], true
}

// SetMetric replaces the horizontal metric of the named glyph.
func (f *Font) SetMetric(glyphName string, m hmtx.Metric) error {
	gid, ok := f.index[glyphName]
	if !ok {
		return ErrUnknownGlyph
	}
	f.metrics[gid] = m
	return nil
}

// Names returns the "name" table of the font.  Changes to the returned
// table are written when the font is saved.
func (f *Font) Names() *name.Table {
	return f.names
}

// UnitsPerEm returns the unitsPerEm value from the "head" table.
func (f *Font) UnitsPerEm() uint16 {
	head := f.tables["head"]
	return uint16(head[18])<<8 | uint16(head[19])
}
