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

// Package outline draws TrueType glyph outlines into pens.
//
// A pen receives the segments of an outline.  TransformPen applies an
// affine transformation and forwards the segments to another pen, while
// GlyphPen assembles the segments into a new glyph.
package outline

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fixwidth/sfnt/glyf"
)

// Pen receives the segments of a glyph outline.
type Pen interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)

	// QCurveTo draws a sequence of quadratic Bézier curves.  All points
	// except the last are off-curve control points; between two
	// consecutive control points an on-curve point is implied at the
	// midpoint.  The last point is on the curve.
	QCurveTo(pts ...vec.Vec2)

	ClosePath()
}

// Draw draws the contours of a simple glyph into pen.
// Each contour starts with MoveTo and ends with a segment returning to the
// start point, followed by ClosePath.
func Draw(g *glyf.Simple, pen Pen) error {
	cc, _, err := g.Unpack()
	if err != nil {
		return err
	}
	for _, c := range cc {
		drawContour(c, pen)
	}
	return nil
}

func drawContour(c glyf.Contour, pen Pen) {
	n := len(c)
	if n == 0 {
		return
	}

	start := -1
	for i, p := range c {
		if p.OnCurve {
			start = i
			break
		}
	}

	if start < 0 {
		// There are no on-curve points.  The contour starts at the implied
		// point between the last and the first control point.
		first, last := toVec(c[0]), toVec(c[n-1])
		mid := vec.Vec2{X: (first.X + last.X) / 2, Y: (first.Y + last.Y) / 2}
		pts := make([]vec.Vec2, 0, n+1)
		for _, p := range c {
			pts = append(pts, toVec(p))
		}
		pen.MoveTo(mid)
		pen.QCurveTo(append(pts, mid)...)
		pen.ClosePath()
		return
	}

	pen.MoveTo(toVec(c[start]))
	var pending []vec.Vec2
	for k := 1; k <= n; k++ {
		p := c[(start+k)%n]
		if !p.OnCurve {
			pending = append(pending, toVec(p))
			continue
		}
		if len(pending) == 0 {
			pen.LineTo(toVec(p))
		} else {
			pen.QCurveTo(append(pending, toVec(p))...)
			pending = nil
		}
	}
	pen.ClosePath()
}

func toVec(p glyf.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// TransformPen applies the transformation M to all points and forwards the
// segments to Next.
type TransformPen struct {
	M    matrix.Matrix
	Next Pen
}

// MoveTo implements the Pen interface.
func (p *TransformPen) MoveTo(pt vec.Vec2) {
	p.Next.MoveTo(p.apply(pt))
}

// LineTo implements the Pen interface.
func (p *TransformPen) LineTo(pt vec.Vec2) {
	p.Next.LineTo(p.apply(pt))
}

// QCurveTo implements the Pen interface.
func (p *TransformPen) QCurveTo(pts ...vec.Vec2) {
	out := make([]vec.Vec2, len(pts))
	for i, pt := range pts {
		out[i] = p.apply(pt)
	}
	p.Next.QCurveTo(out...)
}

// ClosePath implements the Pen interface.
func (p *TransformPen) ClosePath() {
	p.Next.ClosePath()
}

func (p *TransformPen) apply(pt vec.Vec2) vec.Vec2 {
	x, y := p.M.Apply(pt.X, pt.Y)
	return vec.Vec2{X: x, Y: y}
}
