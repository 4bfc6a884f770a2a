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

package sfnt

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/fixwidth/sfnt/glyf"
	"seehuhn.de/go/fixwidth/sfnt/hmtx"
)

// Save writes the font to a file.  The data is first written to a
// temporary file in the same directory, which then replaces fname.
func (f *Font) Save(fname string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	_, err = f.Write(tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Chmod(0o644)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}

// Write writes the font in sfnt format to w.
func (f *Font) Write(w io.Writer) (int64, error) {
	tables, err := f.encodeTables()
	if err != nil {
		return 0, err
	}
	return header.Write(w, f.ScalerType, tables)
}

func (f *Font) encodeTables() (map[string][]byte, error) {
	tables := make(map[string][]byte, len(f.tables))
	for tag, data := range f.tables {
		tables[tag] = data
	}

	// The header package overwrites head.checkSumAdjustment.
	head := clone(f.tables["head"])
	tables["head"] = head

	if f.outlinesChanged {
		enc, err := glyf.Encode(f.outlines)
		if err != nil {
			return nil, err
		}
		tables["glyf"] = enc.GlyfData
		tables["loca"] = enc.LocaData
		putInt16(head[50:], enc.LocaFormat)

		if bbox, ok := f.fontBBox(); ok {
			putInt16(head[36:], int16(bbox.LLx))
			putInt16(head[38:], int16(bbox.LLy))
			putInt16(head[40:], int16(bbox.URx))
			putInt16(head[42:], int16(bbox.URy))
		}

		maxp := tables["maxp"]
		if len(maxp) >= 32 && maxp[0] == 0 && maxp[1] == 1 {
			maxp = clone(maxp)
			maxPoints, maxContours := f.simpleGlyphLimits()
			putUint16(maxp[6:], maxPoints)
			putUint16(maxp[8:], maxContours)
			tables["maxp"] = maxp
		}
	}

	now := time.Now
	if f.now != nil {
		now = f.now
	}
	putInt64(head[28:], toLongDateTime(now()))

	hmtxData, numLong := hmtx.Encode(f.metrics)
	tables["hmtx"] = hmtxData
	hhea := *f.hhea
	hhea.NumOfLongHorMetrics = numLong
	if f.outlines != nil {
		hhea.Summarize(f.metrics, f.xRange)
	} else {
		hhea.Summarize(f.metrics, nil)
	}
	tables["hhea"] = hhea.Encode()

	if postData := tables["post"]; len(postData) >= 32 {
		postData = clone(postData)
		var isFixedPitch uint32
		if f.isFixedPitch() {
			isFixedPitch = 1
		}
		putUint32(postData[12:], isFixedPitch)
		tables["post"] = postData
	}

	nameData, err := f.names.Encode()
	if err != nil {
		return nil, err
	}
	tables["name"] = nameData

	return tables, nil
}

func (f *Font) xRange(i int) (int, int, bool) {
	bbox, ok := glyf.Bounds(f.outlines[i])
	if !ok {
		return 0, 0, false
	}
	return int(bbox.LLx), int(bbox.URx), true
}

// fontBBox returns the union of all glyph bounding boxes.
func (f *Font) fontBBox() (funit.Rect16, bool) {
	var res funit.Rect16
	found := false
	for _, o := range f.outlines {
		bbox, ok := glyf.Bounds(o)
		if !ok {
			continue
		}
		if !found {
			res = bbox
			found = true
			continue
		}
		res.LLx = min(res.LLx, bbox.LLx)
		res.LLy = min(res.LLy, bbox.LLy)
		res.URx = max(res.URx, bbox.URx)
		res.URy = max(res.URy, bbox.URy)
	}
	return res, found
}

// simpleGlyphLimits returns the maximum number of points and of contours
// over all simple glyphs.
func (f *Font) simpleGlyphLimits() (maxPoints, maxContours uint16) {
	for _, o := range f.outlines {
		g, ok := o.(*glyf.Simple)
		if !ok || g.NumContours <= 0 {
			continue
		}
		maxPoints = max(maxPoints, uint16(g.NumPoints()))
		maxContours = max(maxContours, uint16(g.NumContours))
	}
	return maxPoints, maxContours
}

// isFixedPitch reports whether all glyphs have the same advance width.
func (f *Font) isFixedPitch() bool {
	for _, m := range f.metrics[1:] {
		if m.Advance != f.metrics[0].Advance {
			return false
		}
	}
	return true
}

// toLongDateTime converts t to the number of seconds since
// 1904-01-01 00:00 UTC.
func toLongDateTime(t time.Time) int64 {
	epoch := time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
	return int64(t.Sub(epoch) / time.Second)
}

func clone(data []byte) []byte {
	res := make([]byte, len(data))
	copy(res, data)
	return res
}

func putInt16(buf []byte, x int16) {
	putUint16(buf, uint16(x))
}

func putUint16(buf []byte, x uint16) {
	buf[0] = byte(x >> 8)
	buf[1] = byte(x)
}

func putUint32(buf []byte, x uint32) {
	buf[0] = byte(x >> 24)
	buf[1] = byte(x >> 16)
	buf[2] = byte(x >> 8)
	buf[3] = byte(x)
}

func putInt64(buf []byte, x int64) {
	putUint32(buf, uint32(x>>32))
	putUint32(buf[4:], uint32(x))
}
