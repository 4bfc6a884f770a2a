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
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSkipReport(t *testing.T) {
	names := func(n int) []string {
		res := make([]string, n)
		for i := range res {
			res[i] = fmt.Sprintf("g%d", i)
		}
		return res
	}

	b := &strings.Builder{}
	if err := WriteSkipReport(b, nil, 0); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Errorf("empty report wrote %q", b.String())
	}

	b.Reset()
	WriteSkipReport(b, []string{"W", "Aring"}, 0)
	want := "Warning: Skipped glyphs that don't fit in the fixed width:\n  W, Aring\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}

	b.Reset()
	WriteSkipReport(b, names(50), 0)
	lines := strings.Split(b.String(), "\n")
	if len(lines) != 3 || strings.HasSuffix(lines[1], "...") {
		t.Errorf("50 names: %q", b.String())
	}

	b.Reset()
	WriteSkipReport(b, names(51), 0)
	lines = strings.Split(b.String(), "\n")
	if !strings.HasSuffix(lines[1], "g49 ...") {
		t.Errorf("51 names: line %q", lines[1])
	}
	if strings.Contains(lines[1], "g50") {
		t.Error("more than 50 names shown")
	}
}

func TestSkipReportWrap(t *testing.T) {
	skipped := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	b := &strings.Builder{}
	WriteSkipReport(b, skipped, 16)
	want := "Warning: Skipped glyphs that don't fit in the fixed width:\n" +
		"  alpha, beta,\n" +
		"  gamma, delta,\n" +
		"  epsilon\n"
	if d := cmp.Diff(want, b.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// unwrapped and wrapped output differ only in line breaks
	b1 := &strings.Builder{}
	b2 := &strings.Builder{}
	WriteSkipReport(b1, skipped, 0)
	WriteSkipReport(b2, skipped, 20)
	norm := func(s string) string {
		return strings.ReplaceAll(s, "\n  ", " ")
	}
	if norm(b1.String()) != norm(b2.String()) {
		t.Errorf("%q != %q", b1.String(), b2.String())
	}
}
