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

// Mono-stretch makes a monospaced variant of a font by scaling every glyph
// horizontally so that it fills a fixed advance width.
package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/fixwidth/driver"
	"seehuhn.de/go/fixwidth/mono"
	"seehuhn.de/go/fixwidth/tools/internal/buildinfo"
	"seehuhn.de/go/fixwidth/tools/internal/cli"
)

const toolName = "mono-stretch"

func main() {
	os.Exit(run())
}

func run() int {
	opts := &cli.Options{}
	op := cli.NewParser(toolName,
		"mono-stretch - stretch all glyphs to a fixed advance width",
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

	cfg := &driver.Config{
		Width:  width,
		Suffix: opts.Suffix,
		Logger: log,
	}
	res, err := driver.Single(opts.Src, opts.Dst, mono.Stretch, cfg)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Debugf("new family name %q", res.Names.Family)
	return 0
}
