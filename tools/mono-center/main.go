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

// Mono-center makes monospaced variants of all fonts in a set of
// directories.  Every glyph gets the same advance width, and the drawn
// part of each glyph is centered within the new width.
package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/fixwidth/driver"
	"seehuhn.de/go/fixwidth/mono"
	"seehuhn.de/go/fixwidth/tools/internal/buildinfo"
	"seehuhn.de/go/fixwidth/tools/internal/cli"
	"seehuhn.de/go/fixwidth/tools/internal/profile"
)

const toolName = "mono-center"

func main() {
	os.Exit(run())
}

func run() int {
	opts := &cli.Options{}
	op := cli.NewParser(toolName,
		"mono-center - center all glyphs in a fixed advance width",
		cli.Batch, opts)
	if err := op.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		op.Help()
		return cli.ExitUsage
	}
	if opts.ShowVersion {
		fmt.Println(buildinfo.Short(toolName))
		return 0
	}
	width, err := opts.Validate(cli.Batch)
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

	stop, err := profile.Start(opts.CPUProfile, opts.MemProfile, log)
	if err != nil {
		log.Error(err)
		return 1
	}
	defer stop()

	b := &driver.Batch{
		Config: driver.Config{
			Width:  width,
			Suffix: opts.Suffix,
			Logger: log,
		},
		Dirs:   opts.DirList(),
		Policy: mono.Center,
	}
	if _, err := b.Run(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
