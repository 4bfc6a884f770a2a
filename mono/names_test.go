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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fixwidth/sfnt/name"
)

func TestNormalizeSuffix(t *testing.T) {
	cases := map[string]string{
		"Mono":   " Mono",
		" Mono":  " Mono",
		"  Mono": "  Mono",
		"":       " ",
	}
	for in, want := range cases {
		if got := NormalizeSuffix(in); got != want {
			t.Errorf("NormalizeSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDeriveNames(t *testing.T) {
	cases := []struct {
		base, suffix string
		want         Names
	}{
		{"Example", "Mono", Names{"Example Mono", "Example Mono", "ExampleMono"}},
		{"Example", " Mono", Names{"Example Mono", "Example Mono", "ExampleMono"}},
		{"Noto Sans", " Fixed Width", Names{"Noto Sans Fixed Width", "Noto Sans Fixed Width", "NotoSansFixedWidth"}},
		{"Font", "", Names{"Font ", "Font ", "Font"}},
	}
	for _, c := range cases {
		got := DeriveNames(c.base, c.suffix)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q+%q (-want +got):\n%s", c.base, c.suffix, d)
		}
		if strings.Contains(got.PostScriptName, " ") {
			t.Errorf("PostScript name %q contains a space", got.PostScriptName)
		}
	}
}

func TestRename(t *testing.T) {
	tab := &name.Table{}
	if err := tab.Set(name.WindowsEnglish(sfnt.NameIDFamily), "Example"); err != nil {
		t.Fatal(err)
	}
	if err := tab.Set(name.WindowsEnglish(sfnt.NameIDFull), "Example Regular"); err != nil {
		t.Fatal(err)
	}

	n, err := Rename(tab, DefaultSuffix)
	if err != nil {
		t.Fatal(err)
	}
	if n.PostScriptName != "ExampleMono" {
		t.Errorf("PostScript name = %q", n.PostScriptName)
	}
	want := map[sfnt.NameID]string{
		sfnt.NameIDFamily:     "Example Mono",
		sfnt.NameIDFull:       "Example Mono",
		sfnt.NameIDPostScript: "ExampleMono",
	}
	for id, val := range want {
		got, err := tab.Lookup(name.WindowsEnglish(id))
		if err != nil || got != val {
			t.Errorf("name %d = %q, %v", id, got, err)
		}
	}
	if len(tab.Records) != 3 {
		t.Errorf("%d records, want 3", len(tab.Records))
	}
}

func TestRenameFallback(t *testing.T) {
	tab := &name.Table{}
	// only a Macintosh family name, which is not used
	if err := tab.Set(name.Key{PlatformID: 1, NameID: sfnt.NameIDFamily}, "Example"); err != nil {
		t.Fatal(err)
	}
	n, err := Rename(tab, "Mono")
	if err != nil {
		t.Fatal(err)
	}
	if n != (Names{"Font Mono", "Font Mono", "FontMono"}) {
		t.Errorf("got %v", n)
	}
}
