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

// Mono-left makes a monospaced variant of a font by moving every glyph to
// the left edge of a fixed advance width.  Glyphs which are too wide for the
// new width are left unchanged and are listed on stderr.
package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/fixwidth/driver"
	"seehuhn.de/go/fixwidth/mono"
	"seehuhn.de/go/fixwidth/tools/internal/buildinfo"
	"seehuhn.de/go/fixwidth/tools/internal/cli"
)

const toolName = "mono-left"

func main() {
	os.Exit(run())
}

func run() int {
	opts := &cli.Options{}
	op := cli.NewParser(toolName,
		"mono-left - left-align all glyphs in a fixed advance width",
		cli.Single, opts)
	if err := op.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		op.Help()
		return cli.ExitUsage
	}
	if opts.ShowVersion {
		fmt.Println(buildinfo.Short(toolName))
		return 0
	}
	width, err := opts.Validate(cli.Single)
	if err == nil && len(op.Extra) > 0 {
		err = fmt.Errorf("unexpected argument %q", op.Extra[0])
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		op.Help()
		return cli.ExitUsage
	}

	log, err := cli.NewLogger(opts.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer log.Sync()

	report := func(glyphNames []string) {
		err := mono.WriteSkipReport(os.Stderr, glyphNames, mono.TerminalWidth(os.Stderr))
		if err != nil {
			log.Error(err)
		}
	}
	cfg := &driver.Config{
		Width:   width,
		Suffix:  opts.Suffix,
		Logger:  log,
		Skipped: report,
	}
	_, err = driver.Single(opts.Src, opts.Dst, mono.LeftAlign, cfg)
	if err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
