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

package outline

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
	"seehuhn.de/go/fixwidth/sfnt/glyf"
)

// GlyphPen records the segments drawn into it and builds a simple glyph.
// Coordinates are rounded to the nearest integer, with halves rounded up.
// If a coordinate does not fit into the glyf coordinate range, Glyph
// returns an error.
type GlyphPen struct {
	contours []glyf.Contour
	cur      glyf.Contour

	// bad is the first point which is out of range.
	bad    vec.Vec2
	hasBad bool
}

// MoveTo implements the Pen interface.
func (p *GlyphPen) MoveTo(pt vec.Vec2) {
	p.flush()
	p.cur = append(p.cur, p.toPoint(pt, true))
}

// LineTo implements the Pen interface.
func (p *GlyphPen) LineTo(pt vec.Vec2) {
	p.cur = append(p.cur, p.toPoint(pt, true))
}

// QCurveTo implements the Pen interface.
func (p *GlyphPen) QCurveTo(pts ...vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	for _, pt := range pts[:len(pts)-1] {
		p.cur = append(p.cur, p.toPoint(pt, false))
	}
	p.cur = append(p.cur, p.toPoint(pts[len(pts)-1], true))
}

// ClosePath implements the Pen interface.
func (p *GlyphPen) ClosePath() {
	p.flush()
}

// flush ends the current contour.  A final on-curve point which repeats
// the start point is dropped, since contours in the "glyf" table are
// implicitly closed.
func (p *GlyphPen) flush() {
	c := p.cur
	p.cur = nil
	if n := len(c); n > 1 && c[n-1].OnCurve && c[0].OnCurve &&
		c[n-1].X == c[0].X && c[n-1].Y == c[0].Y {
		c = c[:n-1]
	}
	if len(c) > 0 {
		p.contours = append(p.contours, c)
	}
}

// Glyph returns the glyph built from the recorded contours.
// The glyph has no TrueType instructions.
func (p *GlyphPen) Glyph() (glyf.Outline, error) {
	p.flush()
	if p.hasBad {
		reason := fmt.Sprintf("point (%g, %g) outside the coordinate range",
			p.bad.X, p.bad.Y)
		return nil, &fonterror.InvalidFontError{SubSystem: "outline", Reason: reason}
	}
	return glyf.Pack(p.contours, nil)
}

func (p *GlyphPen) toPoint(pt vec.Vec2, onCurve bool) glyf.Point {
	x, xOK := round16(pt.X)
	y, yOK := round16(pt.Y)
	if !(xOK && yOK) && !p.hasBad {
		p.bad = pt
		p.hasBad = true
	}
	return glyf.Point{
		X:       funit.Int16(x),
		Y:       funit.Int16(y),
		OnCurve: onCurve,
	}
}

// round16 rounds x to the nearest integer, with halves rounded up.
// The second return value is false if the result does not fit into an
// int16.
func round16(x float64) (int16, bool) {
	x = math.Floor(x + 0.5)
	if x < math.MinInt16 || x > math.MaxInt16 || math.IsNaN(x) {
		return 0, false
	}
	return int16(x), true
}
