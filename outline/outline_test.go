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
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fixwidth/internal/testfont"
	"seehuhn.de/go/fixwidth/sfnt"
	"seehuhn.de/go/fixwidth/sfnt/fonterror"
	"seehuhn.de/go/fixwidth/sfnt/glyf"
)

type recorder struct {
	cmds []string
}

func (r *recorder) MoveTo(p vec.Vec2) {
	r.cmds = append(r.cmds, fmt.Sprintf("M %g %g", p.X, p.Y))
}

func (r *recorder) LineTo(p vec.Vec2) {
	r.cmds = append(r.cmds, fmt.Sprintf("L %g %g", p.X, p.Y))
}

func (r *recorder) QCurveTo(pts ...vec.Vec2) {
	var parts []string
	for _, p := range pts {
		parts = append(parts, fmt.Sprintf("%g %g", p.X, p.Y))
	}
	r.cmds = append(r.cmds, "Q "+strings.Join(parts, " "))
}

func (r *recorder) ClosePath() {
	r.cmds = append(r.cmds, "Z")
}

func pack(t *testing.T, cc ...glyf.Contour) *glyf.Simple {
	t.Helper()
	o, err := glyf.Pack(cc, nil)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := o.(*glyf.Simple)
	if !ok {
		t.Fatalf("got %T", o)
	}
	return g
}

func TestDraw(t *testing.T) {
	cases := []struct {
		contour glyf.Contour
		want    []string
	}{
		{ // rectangle
			glyf.Contour{
				{X: 0, Y: 0, OnCurve: true},
				{X: 0, Y: 10, OnCurve: true},
				{X: 10, Y: 10, OnCurve: true},
				{X: 10, Y: 0, OnCurve: true},
			},
			[]string{"M 0 0", "L 0 10", "L 10 10", "L 10 0", "L 0 0", "Z"},
		},
		{ // starts with a control point
			glyf.Contour{
				{X: 5, Y: 10, OnCurve: false},
				{X: 10, Y: 0, OnCurve: true},
				{X: 0, Y: 0, OnCurve: true},
			},
			[]string{"M 10 0", "L 0 0", "Q 5 10 10 0", "Z"},
		},
		{ // consecutive control points
			glyf.Contour{
				{X: 0, Y: 0, OnCurve: true},
				{X: 0, Y: 10, OnCurve: false},
				{X: 10, Y: 10, OnCurve: false},
				{X: 10, Y: 0, OnCurve: true},
			},
			[]string{"M 0 0", "Q 0 10 10 10 10 0", "L 0 0", "Z"},
		},
		{ // only control points
			glyf.Contour{
				{X: 0, Y: 0, OnCurve: false},
				{X: 10, Y: 0, OnCurve: false},
				{X: 10, Y: 10, OnCurve: false},
				{X: 0, Y: 10, OnCurve: false},
			},
			[]string{"M 0 5", "Q 0 0 10 0 10 10 0 10 0 5", "Z"},
		},
	}
	for i, c := range cases {
		r := &recorder{}
		if err := Draw(pack(t, c.contour), r); err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, r.cmds); d != "" {
			t.Errorf("%d: (-want +got):\n%s", i, d)
		}
	}
}

func TestGlyphPenIdentity(t *testing.T) {
	in := []glyf.Contour{
		{
			{X: 0, Y: 0, OnCurve: true},
			{X: 0, Y: 700, OnCurve: false},
			{X: 400, Y: 700, OnCurve: false},
			{X: 400, Y: 0, OnCurve: true},
		},
		{
			{X: 100, Y: 100, OnCurve: true},
			{X: 300, Y: 100, OnCurve: true},
			{X: 200, Y: 300, OnCurve: true},
		},
	}
	g := pack(t, in...)

	pen := &GlyphPen{}
	if err := Draw(g, pen); err != nil {
		t.Fatal(err)
	}
	out, err := pen.Glyph()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(glyf.Outline(g), out); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestStretch(t *testing.T) {
	g := pack(t, glyf.Contour{
		{X: 50, Y: 0, OnCurve: true},
		{X: 50, Y: 700, OnCurve: true},
		{X: 450, Y: 700, OnCurve: true},
		{X: 450, Y: 0, OnCurve: true},
	})

	cases := []struct {
		scale      float64
		xMin, xMax funit.Int16
	}{
		{1.5, 75, 675},
		{0.75, 38, 338}, // 37.5 rounds up
		{1, 50, 450},
	}
	for _, c := range cases {
		pen := &GlyphPen{}
		tp := &TransformPen{M: matrix.Matrix{c.scale, 0, 0, 1, 0, 0}, Next: pen}
		if err := Draw(g, tp); err != nil {
			t.Fatal(err)
		}
		out, err := pen.Glyph()
		if err != nil {
			t.Fatal(err)
		}
		bbox, ok := glyf.Bounds(out)
		if !ok {
			t.Fatalf("scale %g: no bounds", c.scale)
		}
		if bbox.LLx != c.xMin || bbox.URx != c.xMax {
			t.Errorf("scale %g: x range %d..%d, want %d..%d",
				c.scale, bbox.LLx, bbox.URx, c.xMin, c.xMax)
		}
		if bbox.LLy != 0 || bbox.URy != 700 {
			t.Errorf("scale %g: y range %d..%d", c.scale, bbox.LLy, bbox.URy)
		}
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want int16
		ok   bool
	}{
		{0.5, 1, true},
		{-0.5, 0, true},
		{2.5, 3, true},
		{-1.6, -2, true},
		{32767.4, 32767, true},
		{-32768.5, -32768, true},
		{32767.5, 0, false},
		{1e6, 0, false},
		{-1e6, 0, false},
	}
	for _, c := range cases {
		got, ok := round16(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("round16(%g) = %d, %t, want %d, %t", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestGlyphPenRange(t *testing.T) {
	// a narrow glyph far from the origin, scaled by a large factor
	g := pack(t, glyf.Contour{
		{X: 400, Y: 0, OnCurve: true},
		{X: 400, Y: 700, OnCurve: true},
		{X: 410, Y: 700, OnCurve: true},
		{X: 410, Y: 0, OnCurve: true},
	})
	pen := &GlyphPen{}
	tp := &TransformPen{M: matrix.Matrix{100, 0, 0, 1, 0, 0}, Next: pen}
	if err := Draw(g, tp); err != nil {
		t.Fatal(err)
	}
	out, err := pen.Glyph()
	if !fonterror.IsInvalid(err) {
		t.Errorf("got %v, %v", out, err)
	}
}

func TestTransformPen(t *testing.T) {
	rec := &recorder{}
	tp := &TransformPen{M: matrix.Matrix{2, 0, 0, 3, 10, 20}, Next: rec}
	tp.MoveTo(vec.Vec2{X: 1, Y: 1})
	tp.LineTo(vec.Vec2{X: 2, Y: 0})
	tp.QCurveTo(vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 2})
	tp.ClosePath()

	want := []string{"M 12 23", "L 14 20", "Q 10 23 12 26", "Z"}
	if d := cmp.Diff(want, rec.cmds); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEmptyPen(t *testing.T) {
	pen := &GlyphPen{}
	out, err := pen.Glyph()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := out.(glyf.Empty); !ok {
		t.Errorf("got %T", out)
	}
}

func TestGoRegular(t *testing.T) {
	f, err := sfnt.Read(bytes.NewReader(testfont.GoRegular()))
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, glyphName := range f.GlyphOrder() {
		o, _ := f.Outline(glyphName)
		g, ok := o.(*glyf.Simple)
		if !ok || g.NumContours == 0 {
			continue
		}
		count++

		pen := &GlyphPen{}
		err := Draw(g, &TransformPen{M: matrix.Identity, Next: pen})
		if err != nil {
			t.Fatalf("%s: %v", glyphName, err)
		}
		out, err := pen.Glyph()
		if err != nil {
			t.Fatalf("%s: %v", glyphName, err)
		}
		want, _ := glyf.Bounds(g)
		got, _ := glyf.Bounds(out)
		if want != got {
			t.Errorf("%s: bbox %v, want %v", glyphName, got, want)
		}
	}
	if count == 0 {
		t.Error("no simple glyphs found")
	}
}
