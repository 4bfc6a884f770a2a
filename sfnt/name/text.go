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

package name

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// textEncoding returns the character encoding used for records with the
// given key.
func textEncoding(key Key) (encoding.Encoding, error) {
	switch key.PlatformID {
	case 0: // Unicode
		return utf16be, nil
	case 1: // Macintosh
		if key.EncodingID == 0 {
			return charmap.Macintosh, nil
		}
	case 3: // Windows
		switch key.EncodingID {
		case 0, 1, 10: // Symbol, Unicode BMP, Unicode full
			return utf16be, nil
		}
	}
	return nil, &fonterror.NotSupportedError{
		SubSystem: "sfnt/name",
		Feature:   fmt.Sprintf("encoding %d/%d", key.PlatformID, key.EncodingID),
	}
}

func decodeText(key Key, data []byte) (string, error) {
	enc, err := textEncoding(key)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("name %s: %w", key, err)
	}
	return string(out), nil
}

func encodeText(key Key, val string) ([]byte, error) {
	enc, err := textEncoding(key)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(val))
	if err != nil {
		return nil, fmt.Errorf("name %s: %w", key, err)
	}
	return out, nil
}
