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

// Package driver runs the width policies on font files.
//
// Single converts one explicitly named font file.  Batch converts all
// TrueType and OpenType files in a list of directories, writing each
// result next to its source file.
package driver

import (
	"fmt"

	"go.uber.org/zap"
	xsfnt "golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fixwidth/mono"
	"seehuhn.de/go/fixwidth/sfnt"
)

// Config holds the settings shared by all conversions.
type Config struct {
	// Width is the new advance width of all glyphs, in font design units.
	Width uint16

	// Suffix is appended to the family name.  A leading space is added if
	// missing.
	Suffix string

	// Logger receives progress messages.  If nil, nothing is logged.
	Logger *zap.SugaredLogger

	// Skipped, if set, is called with the list of skipped glyphs after the
	// policy has run and before the font is saved.
	Skipped func(glyphNames []string)
}

func (cfg *Config) logger() *zap.SugaredLogger {
	if cfg.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return cfg.Logger
}

// Result describes a converted font.
type Result struct {
	Names mono.Names

	// Skipped lists the glyphs which the policy could not fit into the new
	// width.
	Skipped []string
}

// Single converts the font file src using the given policy and writes the
// result to dst.
func Single(src, dst string, policy mono.Policy, cfg *Config) (*Result, error) {
	f, err := sfnt.Load(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := convert(f, policy, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	err = f.Save(dst)
	if err != nil {
		return nil, err
	}
	cfg.logger().Infof("wrote %s", dst)
	return res, nil
}

// convert applies the policy to f and renames the font.
func convert(f *sfnt.Font, policy mono.Policy, cfg *Config) (*Result, error) {
	log := cfg.logger()

	plan, err := policy(f, cfg.Width)
	if err != nil {
		return nil, err
	}
	if len(plan.Composites) > 0 {
		log.Debugf("%d composite glyphs left unchanged", len(plan.Composites))
	}
	log.Debugf("%d metrics and %d outlines changed, %d glyphs skipped",
		len(plan.Metrics), len(plan.Outlines), len(plan.Skipped))

	err = plan.Apply(f)
	if err != nil {
		return nil, err
	}

	names, err := mono.Rename(f.Names(), cfg.Suffix)
	if err != nil {
		return nil, err
	}
	log.Debugf("new family name %q, PostScript name %q", names.Family, names.PostScriptName)
	for _, rec := range f.Names().Records {
		if rec.NameID == xsfnt.NameIDFamily || rec.NameID == xsfnt.NameIDFull ||
			rec.NameID == xsfnt.NameIDPostScript {
			log.Debug(rec)
		}
	}

	if cfg.Skipped != nil {
		cfg.Skipped(plan.Skipped)
	}

	res := &Result{
		Names:   names,
		Skipped: plan.Skipped,
	}
	return res, nil
}
