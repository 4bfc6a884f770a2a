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

package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"seehuhn.de/go/fixwidth/mono"
	"seehuhn.de/go/fixwidth/sfnt"
	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// DefaultDirs are the directories processed by a Batch without Dirs.
var DefaultDirs = []string{"out/ttf", "out/otf"}

// ErrNotDir is returned by Batch.Run if one of the directories does not
// exist or is not a directory.
var ErrNotDir = errors.New("directory not found")

// ErrSameFile is reported for a font whose output name equals its own file
// name.  Such fonts are not converted, so that the source is preserved.
var ErrSameFile = errors.New("output would replace the source file")

// Batch converts all font files in a list of directories.
type Batch struct {
	Config

	// Dirs lists the directories to process.  If empty, DefaultDirs is
	// used.
	Dirs []string

	// Policy is the width policy.  If nil, mono.Center is used.
	Policy mono.Policy
}

// Summary describes the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int

	// Err combines the errors of all failed files.
	Err error
}

// Run converts every file with extension ".ttf" or ".otf" (in any case)
// in the directories of the batch.  Files are processed in lexical order.
// The output for a file is written to the same directory, with the name
// "<PostScriptName>-Mono<ext>".
//
// All directories are checked before any file is processed.  An error is
// returned only if a directory is missing.  Failures of individual files
// are logged, and are recorded in the summary.
func (b *Batch) Run() (*Summary, error) {
	log := b.logger()

	dirs := b.Dirs
	if len(dirs) == 0 {
		dirs = DefaultDirs
	}
	for _, dir := range dirs {
		fi, err := os.Stat(dir)
		if err != nil || !fi.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
		}
	}

	policy := b.Policy
	if policy == nil {
		policy = mono.Center
	}

	summary := &Summary{}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return summary, err
		}
		for _, entry := range entries {
			fname := filepath.Join(dir, entry.Name())
			log.Debug(fname)
			if !isFontFile(fname) {
				continue
			}

			log.Infof("Processing %s", fname)
			outName, err := b.convertFile(fname, policy)
			if err != nil {
				log.Errorw(fmt.Sprintf("Failed to process %s: %v", fname, err),
					"cause", failureCause(err))
				summary.Failed++
				summary.Err = multierr.Append(summary.Err, fmt.Errorf("%s: %w", fname, err))
				continue
			}
			log.Infof("wrote %s", outName)
			summary.Processed++
		}
	}

	log.Infof("%d fonts processed, %d failed", summary.Processed, summary.Failed)
	return summary, nil
}

func (b *Batch) convertFile(fname string, policy mono.Policy) (string, error) {
	f, err := sfnt.Load(fname)
	if err != nil {
		return "", err
	}
	defer f.Close()

	res, err := convert(f, policy, &b.Config)
	if err != nil {
		return "", err
	}

	outName := OutputName(fname, res.Names.PostScriptName)
	if sameFile(fname, outName) {
		return "", fmt.Errorf("%w: %s", ErrSameFile, outName)
	}
	err = f.Save(outName)
	if err != nil {
		return "", err
	}
	return outName, nil
}

// OutputName returns the path of the converted version of the font file
// fname.
func OutputName(fname, postScriptName string) string {
	ext := filepath.Ext(fname)
	return filepath.Join(filepath.Dir(fname), postScriptName+"-Mono"+ext)
}

// isFontFile reports whether fname is a regular file (possibly via a
// symbolic link) with a TrueType or OpenType extension.
func isFontFile(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".ttf", ".otf":
	default:
		return false
	}
	fi, err := os.Stat(fname)
	return err == nil && fi.Mode().IsRegular()
}

func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

// failureCause classifies the error of a failed file for the log.
func failureCause(err error) string {
	switch {
	case fonterror.IsInvalid(err):
		return "invalid font"
	case fonterror.IsUnsupported(err):
		return "unsupported font"
	case errors.Is(err, ErrSameFile):
		return "name clash"
	default:
		return "other"
	}
}
