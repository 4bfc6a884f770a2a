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
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxReported is the number of glyph names shown in a skip report.
const maxReported = 50

const skipHeader = "Warning: Skipped glyphs that don't fit in the fixed width:"

// WriteSkipReport writes the list of skipped glyphs to w.  At most 50
// names are shown.  If wrap is positive, the list is broken into lines of
// at most wrap characters where possible.  Nothing is written if the list
// is empty.
func WriteSkipReport(w io.Writer, skipped []string, wrap int) error {
	if len(skipped) == 0 {
		return nil
	}

	shown := skipped
	if len(shown) > maxReported {
		shown = shown[:maxReported]
	}
	words := make([]string, 0, len(shown)+1)
	for i, glyphName := range shown {
		if i < len(shown)-1 {
			glyphName += ","
		}
		words = append(words, glyphName)
	}
	if len(skipped) > maxReported {
		words = append(words, "...")
	}

	b := &strings.Builder{}
	b.WriteString(skipHeader)
	b.WriteString("\n  ")
	lineLen := 2
	for i, word := range words {
		if i > 0 {
			if wrap > 0 && lineLen+1+len(word) > wrap {
				b.WriteString("\n  ")
				lineLen = 2
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// TerminalWidth returns the width of the terminal connected to f, or 0 if
// f is not a terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
