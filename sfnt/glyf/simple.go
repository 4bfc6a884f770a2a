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
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// A Point is a point in a glyph outline.
type Point struct {
	X, Y    funit.Int16
	OnCurve bool
}

// A Contour describes a connected part of a glyph outline.
type Contour []Point

// flags used in simple glyph descriptions
const (
	flagOnCurve     = 0x01
	flagXShort      = 0x02
	flagYShort      = 0x04
	flagRepeat      = 0x08
	flagXSameOrPlus = 0x10
	flagYSameOrPlus = 0x20
)

// simpleLength returns the number of bytes used by the glyph data following
// the header of a simple glyph, excluding any padding.
func simpleLength(numContours int16, tail []byte) (int, error) {
	if numContours == 0 {
		// some fonts store instructions for glyphs without contours
		if len(tail) < 2 {
			return 0, nil
		}
		L := int(tail[0])<<8 | int(tail[1])
		if len(tail) < 2+L {
			return 0, errInvalidGlyphData
		}
		return 2 + L, nil
	}

	n := int(numContours)
	if len(tail) < 2*n+2 {
		return 0, errInvalidGlyphData
	}
	numPoints := int(tail[2*n-2])<<8 | int(tail[2*n-1]) + 1
	pos := 2 * n
	L := int(tail[pos])<<8 | int(tail[pos+1])
	pos += 2 + L
	if pos > len(tail) {
		return 0, errInvalidGlyphData
	}

	xBytes, yBytes := 0, 0
	for i := 0; i < numPoints; {
		if pos >= len(tail) {
			return 0, errInvalidGlyphData
		}
		flags := tail[pos]
		pos++
		count := 1
		if flags&flagRepeat != 0 {
			if pos >= len(tail) {
				return 0, errInvalidGlyphData
			}
			count += int(tail[pos])
			pos++
		}
		if i+count > numPoints {
			count = numPoints - i
		}
		i += count

		if flags&flagXShort != 0 {
			xBytes += count
		} else if flags&flagXSameOrPlus == 0 {
			xBytes += 2 * count
		}
		if flags&flagYShort != 0 {
			yBytes += count
		} else if flags&flagYSameOrPlus == 0 {
			yBytes += 2 * count
		}
	}
	pos += xBytes + yBytes
	if pos > len(tail) {
		return 0, errInvalidGlyphData
	}
	return pos, nil
}

// Unpack decodes the contours and the TrueType instructions of a simple
// glyph.
func (g *Simple) Unpack() ([]Contour, []byte, error) {
	buf := g.Tail

	numContours := int(g.NumContours)
	if numContours == 0 {
		return nil, nil, nil
	}
	if len(buf) < 2*numContours+2 {
		return nil, nil, errInvalidGlyphData
	}
	endPtsOfContours := make([]int, numContours)
	prev := -1
	for i := 0; i < numContours; i++ {
		end := int(buf[2*i])<<8 | int(buf[2*i+1])
		if end < prev {
			return nil, nil, errInvalidGlyphData
		}
		endPtsOfContours[i] = end
		prev = end
	}
	buf = buf[2*numContours:]
	numPoints := endPtsOfContours[numContours-1] + 1

	instructionLength := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+instructionLength {
		return nil, nil, errInvalidGlyphData
	}
	instructions := buf[2 : 2+instructionLength]
	buf = buf[2+instructionLength:]

	// decode the flags
	ff := make([]byte, numPoints)
	i := 0
	for i < numPoints {
		if len(buf) < 1 {
			return nil, nil, errInvalidGlyphData
		}
		flags := buf[0]
		buf = buf[1:]
		ff[i] = flags
		i++
		if flags&flagRepeat != 0 {
			if len(buf) < 1 {
				return nil, nil, errInvalidGlyphData
			}
			count := buf[0]
			buf = buf[1:]
			for count > 0 && i < numPoints {
				ff[i] = flags
				i++
				count--
			}
		}
	}

	// decode the x-coordinates
	xx := make([]funit.Int16, numPoints)
	var x funit.Int16
	for i, flags := range ff {
		if flags&flagXShort != 0 {
			if len(buf) < 1 {
				return nil, nil, errInvalidGlyphData
			}
			dx := funit.Int16(buf[0])
			buf = buf[1:]
			if flags&flagXSameOrPlus != 0 {
				x += dx
			} else {
				x -= dx
			}
		} else if flags&flagXSameOrPlus == 0 {
			if len(buf) < 2 {
				return nil, nil, errInvalidGlyphData
			}
			dx := funit.Int16(buf[0])<<8 | funit.Int16(buf[1])
			buf = buf[2:]
			x += dx
		}
		xx[i] = x
	}

	// decode the y-coordinates
	yy := make([]funit.Int16, numPoints)
	var y funit.Int16
	for i, flags := range ff {
		if flags&flagYShort != 0 {
			if len(buf) < 1 {
				return nil, nil, errInvalidGlyphData
			}
			dy := funit.Int16(buf[0])
			buf = buf[1:]
			if flags&flagYSameOrPlus != 0 {
				y += dy
			} else {
				y -= dy
			}
		} else if flags&flagYSameOrPlus == 0 {
			if len(buf) < 2 {
				return nil, nil, errInvalidGlyphData
			}
			dy := funit.Int16(buf[0])<<8 | funit.Int16(buf[1])
			buf = buf[2:]
			y += dy
		}
		yy[i] = y
	}

	cc := make([]Contour, numContours)
	start := 0
	for i := 0; i < numContours; i++ {
		end := endPtsOfContours[i] + 1
		pp := make(Contour, end-start)
		for j := start; j < end; j++ {
			pp[j-start] = Point{xx[j], yy[j], ff[j]&flagOnCurve != 0}
		}
		start = end
		cc[i] = pp
	}

	return cc, instructions, nil
}

// Pack encodes contours and instructions as a glyph outline.  The bounding
// box is computed from the points.  Contours without points are dropped, and
// if no points remain the result is Empty.
func Pack(cc []Contour, instructions []byte) (Outline, error) {
	var numPoints int
	var endPts []int
	for _, c := range cc {
		if len(c) == 0 {
			continue
		}
		numPoints += len(c)
		endPts = append(endPts, numPoints-1)
	}
	if numPoints == 0 {
		return Empty{}, nil
	}
	if len(endPts) > 0x7FFF || numPoints > 0xFFFF {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "sfnt/glyf",
			Feature:   "glyphs with more than 65535 points",
		}
	}
	if len(instructions) > 0xFFFF {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/glyf",
			Reason:    "too many instructions",
		}
	}

	var bbox funit.Rect16
	first := true
	ff := make([]byte, 0, numPoints)
	var xData, yData []byte
	var prevX, prevY int
	for _, c := range cc {
		for _, p := range c {
			if first {
				bbox = funit.Rect16{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
				first = false
			} else {
				bbox.LLx = min(bbox.LLx, p.X)
				bbox.LLy = min(bbox.LLy, p.Y)
				bbox.URx = max(bbox.URx, p.X)
				bbox.URy = max(bbox.URy, p.Y)
			}

			var flags byte
			if p.OnCurve {
				flags |= flagOnCurve
			}

			dx := int(p.X) - prevX
			switch {
			case dx == 0:
				flags |= flagXSameOrPlus
			case dx > -256 && dx < 256:
				flags |= flagXShort
				if dx > 0 {
					flags |= flagXSameOrPlus
				} else {
					dx = -dx
				}
				xData = append(xData, byte(dx))
			default:
				xData = append(xData, byte(dx>>8), byte(dx))
			}

			dy := int(p.Y) - prevY
			switch {
			case dy == 0:
				flags |= flagYSameOrPlus
			case dy > -256 && dy < 256:
				flags |= flagYShort
				if dy > 0 {
					flags |= flagYSameOrPlus
				} else {
					dy = -dy
				}
				yData = append(yData, byte(dy))
			default:
				yData = append(yData, byte(dy>>8), byte(dy))
			}

			ff = append(ff, flags)
			prevX, prevY = int(p.X), int(p.Y)
		}
	}

	tail := make([]byte, 0, 2*len(endPts)+2+len(instructions)+len(ff)+len(xData)+len(yData))
	for _, end := range endPts {
		tail = append(tail, byte(end>>8), byte(end))
	}
	L := len(instructions)
	tail = append(tail, byte(L>>8), byte(L))
	tail = append(tail, instructions...)

	// flags, with runs of equal flags compressed
	for i := 0; i < len(ff); {
		flags := ff[i]
		run := 1
		for i+run < len(ff) && ff[i+run] == flags && run < 256 {
			run++
		}
		if run > 1 {
			tail = append(tail, flags|flagRepeat, byte(run-1))
		} else {
			tail = append(tail, flags)
		}
		i += run
	}
	tail = append(tail, xData...)
	tail = append(tail, yData...)

	g := &Simple{
		Rect16:      bbox,
		NumContours: int16(len(endPts)),
		Tail:        tail,
	}
	return g, nil
}

var errInvalidGlyphData = &fonterror.InvalidFontError{
	SubSystem: "sfnt/glyf",
	Reason:    "invalid glyph data",
}

// NumPoints returns the number of points in the contours of the glyph.
func (g *Simple) NumPoints() int {
	n := int(g.NumContours)
	if n <= 0 || len(g.Tail) < 2*n {
		return 0
	}
	return int(g.Tail[2*n-2])<<8 | int(g.Tail[2*n-1]) + 1
}
