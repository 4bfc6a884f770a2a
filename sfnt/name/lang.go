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

package name

import "golang.org/x/text/language"

// Language returns the language of the record, or language.Und if the
// language ID is not known.  Language tags of version 1 tables are not
// resolved.
func (k Key) Language() language.Tag {
	var bcp string
	switch k.PlatformID {
	case 1:
		bcp = appleBCP[k.LanguageID]
	case 3:
		bcp = msBCP[k.LanguageID]
	}
	if bcp == "" {
		return language.Und
	}
	return language.MustParse(bcp)
}

// Selected Macintosh language codes
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#macintosh-language-ids
var appleBCP = map[uint16]string{
	0:  "en",
	1:  "fr",
	2:  "de",
	3:  "it",
	4:  "nl",
	5:  "sv",
	6:  "es",
	7:  "da",
	8:  "pt",
	9:  "no",
	11: "ja",
	12: "ar",
	13: "fi",
	14: "el",
	17: "tr",
	19: "zh-Hant",
	23: "ko",
	25: "pl",
	32: "ru",
	33: "zh-Hans",
}

// Selected Windows language codes
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#windows-language-ids
var msBCP = map[uint16]string{
	0x0401: "ar-SA",
	0x0404: "zh-TW",
	0x0405: "cs-CZ",
	0x0406: "da-DK",
	0x0407: "de-DE",
	0x0408: "el-GR",
	0x0409: "en-US",
	0x040A: "es-ES",
	0x040B: "fi-FI",
	0x040C: "fr-FR",
	0x0410: "it-IT",
	0x0411: "ja-JP",
	0x0412: "ko-KR",
	0x0413: "nl-NL",
	0x0414: "nb-NO",
	0x0415: "pl-PL",
	0x0416: "pt-BR",
	0x0419: "ru-RU",
	0x041D: "sv-SE",
	0x041F: "tr-TR",
	0x0804: "zh-CN",
	0x0807: "de-CH",
	0x0809: "en-GB",
	0x080C: "fr-BE",
	0x0816: "pt-PT",
	0x0C07: "de-AT",
	0x0C09: "en-AU",
	0x0C0A: "es-ES",
	0x0C0C: "fr-CA",
	0x1009: "en-CA",
}
