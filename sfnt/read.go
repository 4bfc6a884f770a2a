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
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/post"

	"seehuhn.de/go/fixwidth/sfnt/glyf"
	"seehuhn.de/go/fixwidth/sfnt/hmtx"
	"seehuhn.de/go/fixwidth/sfnt/name"
)

// Load reads a font from a file.
// The file stays open until the font is closed.
func Load(fname string) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	f, err := Read(fd)
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	f.closer = fd
	return f, nil
}

// Read reads a TrueType or OpenType font.
func Read(r io.ReaderAt) (*Font, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	tables := make(map[string][]byte, len(info.Toc))
	for tag := range info.Toc {
		data, err := info.ReadTableBytes(r, tag)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", tag, err)
		}
		tables[tag] = data
	}
	for _, tag := range []string{"head", "hhea", "hmtx", "maxp"} {
		if _, ok := tables[tag]; !ok {
			return nil, &InvalidFontError{
				SubSystem: "sfnt",
				Reason:    fmt.Sprintf("missing %q table", tag),
			}
		}
	}
	if len(tables["head"]) < 54 {
		return nil, &InvalidFontError{SubSystem: "sfnt/head", Reason: "table too short"}
	}
	maxpData := tables["maxp"]
	if len(maxpData) < 6 {
		return nil, &InvalidFontError{SubSystem: "sfnt/maxp", Reason: "table too short"}
	}
	numGlyphs := int(maxpData[4])<<8 | int(maxpData[5])
	if numGlyphs == 0 {
		return nil, &InvalidFontError{SubSystem: "sfnt/maxp", Reason: "no glyphs"}
	}

	f := &Font{
		ScalerType: info.ScalerType,
		tables:     tables,
	}

	f.hhea, err = hmtx.DecodeHhea(tables["hhea"])
	if err != nil {
		return nil, err
	}
	f.metrics, err = hmtx.Decode(tables["hmtx"], int(f.hhea.NumOfLongHorMetrics), numGlyphs)
	if err != nil {
		return nil, err
	}

	var glyphNames []string
	if data, ok := tables["post"]; ok {
		postInfo, err := post.Read(bytes.NewReader(data))
		if err == nil && len(postInfo.Names) == numGlyphs {
			glyphNames = postInfo.Names
		}
	}

	if glyfData, ok := tables["glyf"]; ok {
		head := tables["head"]
		enc := &glyf.Encoded{
			GlyfData:   glyfData,
			LocaData:   tables["loca"],
			LocaFormat: int16(head[50])<<8 | int16(head[51]),
		}
		outlines, err := glyf.Decode(enc)
		if err != nil {
			return nil, err
		}
		if len(outlines) < numGlyphs {
			return nil, &InvalidFontError{
				SubSystem: "sfnt/loca",
				Reason:    fmt.Sprintf("%d glyphs, expected %d", len(outlines), numGlyphs),
			}
		}
		f.outlines = outlines[:numGlyphs]
	} else if cffData, ok := tables["CFF "]; ok {
		cffFont, err := cff.Read(bytes.NewReader(cffData))
		if err != nil {
			return nil, fmt.Errorf("CFF table: %w", err)
		}
		if len(cffFont.Glyphs) != numGlyphs {
			return nil, &InvalidFontError{
				SubSystem: "sfnt/cff",
				Reason:    fmt.Sprintf("%d glyphs, expected %d", len(cffFont.Glyphs), numGlyphs),
			}
		}
		f.outlines = make([]glyf.Outline, numGlyphs)
		cffNames := make([]string, numGlyphs)
		for i, g := range cffFont.Glyphs {
			f.outlines[i] = glyf.Extent{Rect16: g.Extent()}
			cffNames[i] = g.Name
		}
		f.isCFF = true
		if glyphNames == nil && cffNames[numGlyphs-1] != "" {
			glyphNames = cffNames
		}
	}

	f.setGlyphOrder(glyphNames, numGlyphs)

	if data, ok := tables["name"]; ok {
		f.names, err = name.Decode(data)
		if err != nil {
			return nil, err
		}
	} else {
		f.names = &name.Table{}
	}

	return f, nil
}

// setGlyphOrder installs the glyph names.  Missing names are synthesized,
// and duplicate names are made unique by appending "#1", "#2", ...
func (f *Font) setGlyphOrder(glyphNames []string, numGlyphs int) {
	f.glyphOrder = make([]string, numGlyphs)
	f.index = make(map[string]glyph.ID, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		var base string
		if i < len(glyphNames) {
			base = glyphNames[i]
		}
		if base == "" {
			if i == 0 {
				base = ".notdef"
			} else {
				base = fmt.Sprintf("glyph%05d", i)
			}
		}

		glyphName := base
		for k := 1; ; k++ {
			if _, taken := f.index[glyphName]; !taken {
				break
			}
			glyphName = base + "#" + strconv.Itoa(k)
		}
		f.glyphOrder[i] = glyphName
		f.index[glyphName] = glyph.ID(i)
	}
}
