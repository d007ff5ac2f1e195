// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// Codepage identifies the single-byte code page used to decode
// extended-ASCII strings embedded in a shell item (volume names,
// network-location strings, pre-XP secondary file names, and so on).
// UTF-16LE strings never consult the code page.
type Codepage uint32

// Recognized code pages. Zero in ItemListOptions selects CodepageASCII;
// any other value passed to ParseItemList is rejected with
// ErrUnsupportedCodepage.
const (
	CodepageASCII Codepage = 20127

	CodepageISO8859_1  Codepage = 28591
	CodepageISO8859_2  Codepage = 28592
	CodepageISO8859_3  Codepage = 28593
	CodepageISO8859_4  Codepage = 28594
	CodepageISO8859_5  Codepage = 28595
	CodepageISO8859_6  Codepage = 28596
	CodepageISO8859_7  Codepage = 28597
	CodepageISO8859_8  Codepage = 28598
	CodepageISO8859_9  Codepage = 28599
	CodepageISO8859_10 Codepage = 28600
	CodepageISO8859_11 Codepage = 28601
	// 28602 has no assigned ISO-8859 part and is not recognized.
	CodepageISO8859_13 Codepage = 28603
	CodepageISO8859_14 Codepage = 28604
	CodepageISO8859_15 Codepage = 28605
	CodepageISO8859_16 Codepage = 28606

	CodepageKOI8R Codepage = 20866
	CodepageKOI8U Codepage = 21866

	CodepageWindows874  Codepage = 874
	CodepageWindows932  Codepage = 932
	CodepageWindows936  Codepage = 936
	CodepageWindows949  Codepage = 949
	CodepageWindows950  Codepage = 950
	CodepageWindows1250 Codepage = 1250
	CodepageWindows1251 Codepage = 1251
	CodepageWindows1252 Codepage = 1252
	CodepageWindows1253 Codepage = 1253
	CodepageWindows1254 Codepage = 1254
	CodepageWindows1255 Codepage = 1255
	CodepageWindows1256 Codepage = 1256
	CodepageWindows1257 Codepage = 1257
	CodepageWindows1258 Codepage = 1258
)

// supportedCodepages enumerates every Codepage value ParseItemList accepts.
var supportedCodepages = map[Codepage]bool{
	CodepageASCII:       true,
	CodepageISO8859_1:   true,
	CodepageISO8859_2:   true,
	CodepageISO8859_3:   true,
	CodepageISO8859_4:   true,
	CodepageISO8859_5:   true,
	CodepageISO8859_6:   true,
	CodepageISO8859_7:   true,
	CodepageISO8859_8:   true,
	CodepageISO8859_9:   true,
	CodepageISO8859_10:  true,
	CodepageISO8859_11:  true,
	CodepageISO8859_13:  true,
	CodepageISO8859_14:  true,
	CodepageISO8859_15:  true,
	CodepageISO8859_16:  true,
	CodepageKOI8R:       true,
	CodepageKOI8U:       true,
	CodepageWindows874:  true,
	CodepageWindows932:  true,
	CodepageWindows936:  true,
	CodepageWindows949:  true,
	CodepageWindows950:  true,
	CodepageWindows1250: true,
	CodepageWindows1251: true,
	CodepageWindows1252: true,
	CodepageWindows1253: true,
	CodepageWindows1254: true,
	CodepageWindows1255: true,
	CodepageWindows1256: true,
	CodepageWindows1257: true,
	CodepageWindows1258: true,
}

// Valid reports whether c is one of the recognized code pages.
func (c Codepage) Valid() bool {
	return supportedCodepages[c]
}
