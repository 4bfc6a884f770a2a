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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"
)

func square(x0, y0, x1, y1 funit.Int16) Contour {
	return Contour{
		{X: x0, Y: y0, OnCurve: true},
		{X: x1, Y: y0, OnCurve: true},
		{X: x1, Y: y1, OnCurve: true},
		{X: x0, Y: y1, OnCurve: true},
	}
}

func TestPackUnpack(t *testing.T) {
	cases := [][]Contour{
		{square(0, 0, 100, 100)},
		{square(-300, -20, 4000, 700), square(10, 10, 20, 20)},
		{{
			{X: 0, Y: 0, OnCurve: true},
			{X: 250, Y: 600, OnCurve: false},
			{X: 500, Y: 0, OnCurve: true},
			{X: 250, Y: -1, OnCurve: false},
		}},
		{{
			{X: 5, Y: 5, OnCurve: false},
			{X: 5, Y: 5, OnCurve: false},
			{X: 5, Y: 5, OnCurve: false},
		}},
	}
	for i, cc := range cases {
		o, err := Pack(cc, []byte{1, 2, 3})
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		g, ok := o.(*Simple)
		if !ok {
			t.Fatalf("%d: got %T, want *Simple", i, o)
		}
		if int(g.NumContours) != len(cc) {
			t.Errorf("%d: NumContours = %d, want %d", i, g.NumContours, len(cc))
		}
		cc2, instr, err := g.Unpack()
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if d := cmp.Diff(cc, cc2); d != "" {
			t.Errorf("%d: contours differ (-want +got):\n%s", i, d)
		}
		if d := cmp.Diff([]byte{1, 2, 3}, instr); d != "" {
			t.Errorf("%d: instructions differ (-want +got):\n%s", i, d)
		}

		l, err := simpleLength(g.NumContours, g.Tail)
		if err != nil {
			t.Fatal(err)
		}
		if l != len(g.Tail) {
			t.Errorf("%d: simpleLength = %d, want %d", i, l, len(g.Tail))
		}
	}
}

func TestPackBounds(t *testing.T) {
	o, err := Pack([]Contour{square(-50, -200, 450, 700), square(100, 800, 120, 820)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	bbox, ok := Bounds(o)
	if !ok {
		t.Fatal("packed glyph has no bounds")
	}
	want := funit.Rect16{LLx: -50, LLy: -200, URx: 450, URy: 820}
	if bbox != want {
		t.Errorf("bounds = %v, want %v", bbox, want)
	}
	if w, _ := Width(o); w != 500 {
		t.Errorf("width = %d, want 500", w)
	}
}

func TestPackEmpty(t *testing.T) {
	o, err := Pack([]Contour{{}, nil}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := o.(Empty); !ok {
		t.Errorf("got %T, want Empty", o)
	}
}

func TestBounds(t *testing.T) {
	box := funit.Rect16{LLx: 10, LLy: 0, URx: 410, URy: 700}
	cases := []struct {
		name  string
		o     Outline
		ok    bool
		width int
	}{
		{"empty", Empty{}, false, 0},
		{"nil", nil, false, 0},
		{"simple", &Simple{Rect16: box, NumContours: 1}, true, 400},
		{"no contours", &Simple{Rect16: box}, false, 0},
		{"composite", &Composite{Rect16: box, Components: []Component{{GlyphIndex: 1}}}, true, 400},
		{"extent", Extent{Rect16: box}, true, 400},
		{"zero extent", Extent{}, false, 0},
		{"inverted", &Simple{Rect16: funit.Rect16{LLx: 50, URx: 20}, NumContours: 1}, true, -30},
	}
	for _, c := range cases {
		w, ok := Width(c.o)
		if ok != c.ok || w != c.width {
			t.Errorf("%s: Width = %d, %t; want %d, %t", c.name, w, ok, c.width, c.ok)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	simple, err := Pack([]Contour{square(0, 0, 500, 700)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	composite := &Composite{
		Rect16: funit.Rect16{LLx: 0, LLy: 0, URx: 500, URy: 900},
		Components: []Component{
			{Flags: flagArg1And2AreWords, GlyphIndex: 1, Args: []byte{0, 0, 0, 0}},
			{Flags: 0, GlyphIndex: 3, Args: []byte{10, 20}},
		},
	}
	in := []Outline{Empty{}, simple, composite, Empty{}}

	enc, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}

	if len(out) != len(in) {
		t.Fatalf("got %d glyphs, want %d", len(out), len(in))
	}
	if _, ok := out[0].(Empty); !ok {
		t.Errorf("glyph 0: got %T, want Empty", out[0])
	}
	if d := cmp.Diff(simple, out[1]); d != "" {
		t.Errorf("glyph 1 differs (-want +got):\n%s", d)
	}
	c, ok := out[2].(*Composite)
	if !ok {
		t.Fatalf("glyph 2: got %T, want *Composite", out[2])
	}
	if d := cmp.Diff(composite.Components, c.Components); d != "" {
		t.Errorf("components differ (-want +got):\n%s", d)
	}
	if c.Rect16 != composite.Rect16 {
		t.Errorf("composite bbox = %v, want %v", c.Rect16, composite.Rect16)
	}
}

func TestEncodeExtent(t *testing.T) {
	_, err := Encode([]Outline{Extent{}})
	if err == nil {
		t.Error("encoding an Extent outline succeeded")
	}
}

func FuzzGlyf(f *testing.F) {
	simple, _ := Pack([]Contour{square(0, 0, 500, 700)}, []byte{0xB0, 1})
	enc, _ := Encode([]Outline{Empty{}, simple, &Composite{
		Components: []Component{{GlyphIndex: 1, Args: []byte{1, 2}}},
	}})
	f.Add(enc.GlyfData, enc.LocaData, enc.LocaFormat)

	f.Fuzz(func(t *testing.T, glyfData, locaData []byte, locaFormat int16) {
		enc := &Encoded{
			GlyfData:   glyfData,
			LocaData:   locaData,
			LocaFormat: locaFormat,
		}
		gg, err := Decode(enc)
		if err != nil {
			return
		}

		enc2, err := Encode(gg)
		if err != nil {
			t.Fatal(err)
		}
		gg2, err := Decode(enc2)
		if err != nil {
			t.Fatal(err)
		}

		if d := cmp.Diff(gg, gg2); d != "" {
			t.Errorf("round trip failed (-before +after):\n%s", d)
		}
	})
}
