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

// Package cli holds the command line handling shared by the mono-* tools.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/speedata/optionparser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/fixwidth/mono"
)

// Mode selects the command line options of a tool.
type Mode int

const (
	// Batch tools convert all fonts in a list of directories.
	Batch Mode = iota

	// Single tools convert one source file into one destination file.
	Single
)

// ExitUsage is the exit status for invalid command lines.
const ExitUsage = 2

// Options holds the command line values of a tool.
type Options struct {
	Width  string
	Suffix string

	Src string
	Dst string

	Dirs       string
	CPUProfile string
	MemProfile string

	Verbose     bool
	ShowVersion bool
}

// NewParser returns a parser which stores the command line values in opts.
func NewParser(toolName, description string, mode Mode, opts *Options) *optionparser.OptionParser {
	opts.Suffix = mono.DefaultSuffix

	op := optionparser.NewOptionParser()
	op.Banner = description + "\n\nUsage: " + toolName + " [options]"
	op.On("--width UNITS", "fixed advance width in font design units (required)", &opts.Width)
	op.On("--mono-suffix SUFFIX", "suffix for the family name (default \" Mono\")", &opts.Suffix)
	switch mode {
	case Single:
		op.On("--src FILE", "source font file (required)", &opts.Src)
		op.On("--dst FILE", "output font file (required)", &opts.Dst)
	case Batch:
		op.On("--dirs DIRS", "comma-separated font directories (default \"out/ttf,out/otf\")", &opts.Dirs)
		op.On("--cpuprofile FILE", "write a CPU profile to FILE", &opts.CPUProfile)
		op.On("--memprofile FILE", "write a memory profile to FILE", &opts.MemProfile)
	}
	op.On("-v", "--verbose", "show debug messages", &opts.Verbose)
	op.On("--version", "show version information and exit", &opts.ShowVersion)
	return op
}

// Validate checks the command line values and returns the advance width.
func (opts *Options) Validate(mode Mode) (uint16, error) {
	if opts.Width == "" {
		return 0, errors.New("missing required option --width")
	}
	width, err := strconv.ParseUint(opts.Width, 10, 16)
	if err != nil || width == 0 {
		return 0, fmt.Errorf("invalid width %q: need an integer between 1 and 65535", opts.Width)
	}

	if mode == Single {
		if opts.Src == "" {
			return 0, errors.New("missing required option --src")
		}
		if opts.Dst == "" {
			return 0, errors.New("missing required option --dst")
		}
	}
	return uint16(width), nil
}

// DirList returns the directories given with --dirs, or nil if the option
// was not used.
func (opts *Options) DirList() []string {
	var dirs []string
	for _, dir := range strings.Split(opts.Dirs, ",") {
		dir = strings.TrimSpace(dir)
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// NewLogger returns a console logger writing to stderr.
// Debug messages are only shown in verbose mode.
func NewLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
