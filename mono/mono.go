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

// Package mono computes monospaced variants of fonts.
//
// A width policy inspects a font through the read-only View interface and
// returns a Plan, which lists the new horizontal metrics and outlines.  The
// plan is then applied to the font.  Three policies are available: Center,
// LeftAlign and Stretch.
package mono

import (
	"errors"

	"seehuhn.de/go/fixwidth/sfnt/glyf"
	"seehuhn.de/go/fixwidth/sfnt/hmtx"
)

// View gives read-only access to the glyphs of a font.
type View interface {
	GlyphOrder() []string
	Metric(glyphName string) (hmtx.Metric, bool)
	Outline(glyphName string) (glyf.Outline, bool)
	HasOutlines() bool
	CanRedraw() bool
	IsCFF() bool
}

// Font is a font which can be modified by applying a Plan.
type Font interface {
	View
	SetMetric(glyphName string, m hmtx.Metric) error
	SetOutline(glyphName string, o glyf.Outline) error
}

// Policy computes the changes needed to give every glyph of a font the
// advance width w.  Policies do not modify the font.
type Policy func(v View, w uint16) (*Plan, error)

// Plan holds the changes computed by a Policy.
type Plan struct {
	Metrics  map[string]hmtx.Metric
	Outlines map[string]glyf.Outline

	// Skipped lists, in glyph order, the glyphs which were left unchanged
	// because they cannot be fitted into the new width.
	Skipped []string

	// Composites lists the composite glyphs which were left unchanged
	// without being reported as skipped.
	Composites []string
}

func newPlan() *Plan {
	return &Plan{
		Metrics:  make(map[string]hmtx.Metric),
		Outlines: make(map[string]glyf.Outline),
	}
}

// Apply writes the planned changes into f.
func (p *Plan) Apply(f Font) error {
	for _, glyphName := range f.GlyphOrder() {
		if o, ok := p.Outlines[glyphName]; ok {
			if err := f.SetOutline(glyphName, o); err != nil {
				return err
			}
		}
		if m, ok := p.Metrics[glyphName]; ok {
			if err := f.SetMetric(glyphName, m); err != nil {
				return err
			}
		}
	}
	return nil
}

// ErrNoOutlines is returned by policies which need glyph outlines, when
// the font has neither a "glyf" nor a "CFF " table.
var ErrNoOutlines = errors.New("mono: font has no glyph outlines")
