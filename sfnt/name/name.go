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

// Package name has code for reading and writing OpenType "name" tables.
// These tables contain localized strings associated with a font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/fixwidth/sfnt/fonterror"
)

// Key identifies a name record.
type Key struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     sfnt.NameID
}

// WindowsEnglish returns the key of the Windows/Unicode BMP/en-US record
// for the given name ID.
func WindowsEnglish(id sfnt.NameID) Key {
	return Key{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: id}
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%d/0x%04x #%d", k.PlatformID, k.EncodingID, k.LanguageID, k.NameID)
}

func compareKeys(a, b Key) int {
	switch {
	case a.PlatformID != b.PlatformID:
		return int(a.PlatformID) - int(b.PlatformID)
	case a.EncodingID != b.EncodingID:
		return int(a.EncodingID) - int(b.EncodingID)
	case a.LanguageID != b.LanguageID:
		return int(a.LanguageID) - int(b.LanguageID)
	default:
		return int(a.NameID) - int(b.NameID)
	}
}

// Record is a single entry of the "name" table.  Data holds the string in
// the encoding given by the platform and encoding IDs of the key.
type Record struct {
	Key
	Data []byte
}

// Text decodes the string stored in the record.
func (r Record) Text() (string, error) {
	return decodeText(r.Key, r.Data)
}

func (r Record) String() string {
	val, err := r.Text()
	if err != nil {
		return fmt.Sprintf("%s [%s]: <%d bytes>", r.Key, r.Language(), len(r.Data))
	}
	return fmt.Sprintf("%s [%s]: %q", r.Key, r.Language(), val)
}

// Table is the contents of a "name" table.  Records with encodings which
// cannot be decoded are kept as raw bytes and are written back unchanged.
type Table struct {
	Version uint16
	Records []Record

	// LangTags holds the UTF-16BE language tag strings of a version 1
	// table.  Records with LanguageID >= 0x8000 refer to these.
	LangTags [][]byte
}

// ErrNotFound is returned by Lookup if no record with the given key exists.
var ErrNotFound = errors.New("name: record not found")

// Decode extracts the name records from a "name" table.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, errMalformedNames
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	numRec := int(data[2])<<8 | int(data[3])
	storageOffset := int(data[4])<<8 | int(data[5])

	if version > 1 {
		return nil, &fonterror.NotSupportedError{
			SubSystem: "sfnt/name",
			Feature:   fmt.Sprintf("table version %d", version),
		}
	}

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, errMalformedNames
	}

	t := &Table{Version: version}

	if version > 0 {
		if endOfHeader+2 > len(data) {
			return nil, errMalformedNames
		}
		numLang := int(data[endOfHeader])<<8 | int(data[endOfHeader+1])
		langBase := endOfHeader + 2
		endOfHeader = langBase + numLang*4
		if endOfHeader > len(data) {
			return nil, errMalformedNames
		}
		for i := 0; i < numLang; i++ {
			pos := langBase + 4*i
			tagLen := int(data[pos])<<8 | int(data[pos+1])
			tagOffset := int(data[pos+2])<<8 | int(data[pos+3])
			tag, err := storageSlice(data, storageOffset, tagOffset, tagLen)
			if err != nil {
				return nil, err
			}
			t.LangTags = append(t.LangTags, tag)
		}
	}
	if storageOffset < endOfHeader || storageOffset > len(data) {
		return nil, errMalformedNames
	}

	seen := make(map[Key]bool, numRec)
	t.Records = make([]Record, 0, numRec)
	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		key := Key{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     sfnt.NameID(data[pos+6])<<8 | sfnt.NameID(data[pos+7]),
		}
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		if seen[key] {
			// keep the first of several records with the same key
			continue
		}
		seen[key] = true

		val, err := storageSlice(data, storageOffset, nameOffset, nameLen)
		if err != nil {
			return nil, err
		}
		t.Records = append(t.Records, Record{Key: key, Data: val})
	}

	return t, nil
}

func storageSlice(data []byte, storageOffset, offset, length int) ([]byte, error) {
	start := storageOffset + offset
	if start+length > len(data) {
		return nil, errMalformedNames
	}
	return slices.Clone(data[start : start+length]), nil
}

// Encode converts the table into its binary form.
// Records are written in the order required by the OpenType specification.
func (t *Table) Encode() ([]byte, error) {
	records := slices.Clone(t.Records)
	slices.SortFunc(records, func(a, b Record) int {
		return compareKeys(a.Key, b.Key)
	})

	version := t.Version
	if len(t.LangTags) > 0 {
		version = 1
	}

	type loc struct {
		offset, length uint16
	}
	b := newNameBuilder()
	recLocs := make([]loc, len(records))
	for i, rec := range records {
		offs, length, err := b.Add(rec.Data)
		if err != nil {
			return nil, err
		}
		recLocs[i] = loc{offs, length}
	}
	var tagLocs []loc
	if version > 0 {
		tagLocs = make([]loc, len(t.LangTags))
		for i, tag := range t.LangTags {
			offs, length, err := b.Add(tag)
			if err != nil {
				return nil, err
			}
			tagLocs[i] = loc{offs, length}
		}
	}

	numRec := len(records)
	startOfStrings := 6 + numRec*12
	if version > 0 {
		startOfStrings += 2 + 4*len(tagLocs)
	}
	if numRec > 0xFFFF || startOfStrings > 0xFFFF {
		return nil, errTooManyRecords
	}
	res := make([]byte, startOfStrings+len(b.data))

	res[0] = byte(version >> 8)
	res[1] = byte(version)
	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i, rec := range records {
		base := 6 + i*12
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(recLocs[i].length >> 8)
		res[base+9] = byte(recLocs[i].length)
		res[base+10] = byte(recLocs[i].offset >> 8)
		res[base+11] = byte(recLocs[i].offset)
	}
	if version > 0 {
		base := 6 + numRec*12
		res[base] = byte(len(tagLocs) >> 8)
		res[base+1] = byte(len(tagLocs))
		for i, l := range tagLocs {
			pos := base + 2 + 4*i
			res[pos] = byte(l.length >> 8)
			res[pos+1] = byte(l.length)
			res[pos+2] = byte(l.offset >> 8)
			res[pos+3] = byte(l.offset)
		}
	}
	copy(res[startOfStrings:], b.data)

	return res, nil
}

// Lookup returns the decoded string stored under the given key.
// If no such record exists, ErrNotFound is returned.
func (t *Table) Lookup(key Key) (string, error) {
	for _, rec := range t.Records {
		if rec.Key == key {
			return rec.Text()
		}
	}
	return "", ErrNotFound
}

// Set stores val under the given key, replacing an existing record or
// adding a new one.
func (t *Table) Set(key Key, val string) error {
	data, err := encodeText(key, val)
	if err != nil {
		return err
	}
	for i := range t.Records {
		if t.Records[i].Key == key {
			t.Records[i].Data = data
			return nil
		}
	}
	t.Records = append(t.Records, Record{Key: key, Data: data})
	return nil
}

type nameBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{
		idx: make(map[string]uint16),
	}
}

func (nb *nameBuilder) Add(b []byte) (offs, length uint16, err error) {
	if len(b) > 0xFFFF {
		return 0, 0, errTooLong
	}
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, uint16(len(b)), nil
	}
	if len(nb.data) > 0xFFFF {
		return 0, 0, errTooLong
	}
	idx := uint16(len(nb.data))
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, uint16(len(b)), nil
}

var (
	errMalformedNames = &fonterror.InvalidFontError{
		SubSystem: "sfnt/name",
		Reason:    "malformed name table",
	}
	errTooManyRecords = errors.New("name: too many records")
	errTooLong        = errors.New("name: string storage exceeds 64kB")
)
