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
	"strings"

	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fixwidth/sfnt/name"
)

// DefaultSuffix is appended to the family name of the new font if no other
// suffix is given.
const DefaultSuffix = " Mono"

// fallbackFamily is used when a font has no readable English family name.
const fallbackFamily = "Font"

// Names holds the names of a monospaced font variant.
type Names struct {
	Family         string
	FullName       string
	PostScriptName string
}

// NormalizeSuffix makes sure that the suffix starts with a space.
func NormalizeSuffix(suffix string) string {
	if !strings.HasPrefix(suffix, " ") {
		return " " + suffix
	}
	return suffix
}

// DeriveNames returns the names of the font variant with the given base
// family name.  The PostScript name is the family name with all spaces
// removed.
func DeriveNames(baseFamily, suffix string) Names {
	family := baseFamily + NormalizeSuffix(suffix)
	return Names{
		Family:         family,
		FullName:       family,
		PostScriptName: strings.ReplaceAll(family, " ", ""),
	}
}

// FamilyName returns the English family name of a font, as stored in the
// Windows Unicode BMP record with language 0x0409.
func FamilyName(t *name.Table) (string, error) {
	return t.Lookup(name.WindowsEnglish(sfnt.NameIDFamily))
}

func familyOrDefault(t *name.Table) string {
	family, err := FamilyName(t)
	if err != nil {
		return fallbackFamily
	}
	return family
}

// UpdateNames stores the family, full and PostScript names in the
// English Windows records of the name table.
func UpdateNames(t *name.Table, n Names) error {
	records := []struct {
		id  sfnt.NameID
		val string
	}{
		{sfnt.NameIDFamily, n.Family},
		{sfnt.NameIDFull, n.FullName},
		{sfnt.NameIDPostScript, n.PostScriptName},
	}
	for _, rec := range records {
		if err := t.Set(name.WindowsEnglish(rec.id), rec.val); err != nil {
			return err
		}
	}
	return nil
}

// Rename derives the names of the monospaced variant from the family name
// of t and stores them in t.  If t has no readable family name, "Font" is
// used as the base name.
func Rename(t *name.Table, suffix string) (Names, error) {
	n := DeriveNames(familyOrDefault(t), suffix)
	err := UpdateNames(t, n)
	return n, err
}
