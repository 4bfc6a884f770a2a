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

package mono

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fixwidth/outline"
	"seehuhn.de/go/fixwidth/sfnt/fonterror"
	"seehuhn.de/go/fixwidth/sfnt/glyf"
	"seehuhn.de/go/fixwidth/sfnt/hmtx"
)

// Center keeps all outlines and centers every glyph in the new advance
// width by changing its left side bearing.  Glyphs without a bounding box
// are treated as if they covered their current advance width.
// No glyph is skipped.
func Center(v View, w uint16) (*Plan, error) {
	p := newPlan()
	for _, glyphName := range v.GlyphOrder() {
		m, _ := v.Metric(glyphName)
		drawn := int(m.Advance)
		if o, ok := v.Outline(glyphName); ok {
			if width, ok := glyf.Width(o); ok {
				drawn = max(width, 0)
			}
		}
		p.Metrics[glyphName] = hmtx.Metric{
			Advance: w,
			LSB:     centerLSB(int(w), drawn),
		}
	}
	return p, nil
}

// centerLSB returns (w-drawn)/2, rounded half to even and clamped to the
// range 0, ..., 32767.
func centerLSB(w, drawn int) int16 {
	lsb := math.RoundToEven(float64(w-drawn) / 2)
	if lsb < 0 {
		return 0
	} else if lsb > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(lsb)
}

// LeftAlign keeps all outlines and places every glyph at the left edge of
// the new advance width.  Composite glyphs and glyphs wider than w are left
// unchanged and listed in the Skipped field of the plan.
func LeftAlign(v View, w uint16) (*Plan, error) {
	if !v.HasOutlines() {
		return nil, ErrNoOutlines
	}

	p := newPlan()
	for _, glyphName := range v.GlyphOrder() {
		o, _ := v.Outline(glyphName)
		if glyf.IsComposite(o) {
			p.Skipped = append(p.Skipped, glyphName)
			continue
		}
		drawn, ok := glyf.Width(o)
		if ok && drawn > int(w) {
			p.Skipped = append(p.Skipped, glyphName)
			continue
		}
		p.Metrics[glyphName] = hmtx.Metric{Advance: w}
	}
	return p, nil
}

// Stretch scales every simple glyph horizontally so that its bounding box
// has width w, and sets the left side bearing to 0.  TrueType instructions
// of the redrawn glyphs are dropped.  Composite glyphs are left unchanged
// and are listed in the Composites field of the plan.
func Stretch(v View, w uint16) (*Plan, error) {
	if v.IsCFF() {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "mono",
			Feature:   "stretching CFF outlines",
		}
	}
	if !v.CanRedraw() {
		return nil, ErrNoOutlines
	}

	p := newPlan()
	for _, glyphName := range v.GlyphOrder() {
		o, _ := v.Outline(glyphName)
		if glyf.IsComposite(o) {
			p.Composites = append(p.Composites, glyphName)
			continue
		}

		if g, ok := o.(*glyf.Simple); ok {
			if drawn, ok := glyf.Width(g); ok && drawn > 0 {
				scaled, err := scaleX(g, float64(w)/float64(drawn))
				if err != nil {
					return nil, fmt.Errorf("glyph %q: %w", glyphName, err)
				}
				p.Outlines[glyphName] = scaled
			}
		}
		p.Metrics[glyphName] = hmtx.Metric{Advance: w}
	}
	return p, nil
}

func scaleX(g *glyf.Simple, s float64) (glyf.Outline, error) {
	pen := &outline.GlyphPen{}
	tp := &outline.TransformPen{
		M:    matrix.Matrix{s, 0, 0, 1, 0, 0},
		Next: pen,
	}
	if err := outline.Draw(g, tp); err != nil {
		return nil, err
	}
	return pen.Glyph()
}
