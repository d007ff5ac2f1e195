// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Strings is the text-decoding collaborator: decode_single_byte(bytes,
// codepage) -> string and decode_utf16le(bytes) -> string. The variant
// decoders call it through DefaultStrings; ItemListOptions.Strings does
// not replace that implementation.
type Strings interface {
	// DecodeSingleByte decodes data (no embedded NUL) using the given code
	// page into the caller's preferred Go string (UTF-8).
	DecodeSingleByte(data []byte, cp Codepage) (string, error)

	// DecodeUTF16LE decodes data (an even number of bytes, no embedded
	// double-NUL) from UTF-16LE into UTF-8.
	DecodeUTF16LE(data []byte) (string, error)
}

// textStrings is the default Strings implementation, built on
// golang.org/x/text/encoding, the same package saferwall/pe's
// DecodeUTF16String (helper.go) already uses for its own UTF-16 fields.
type textStrings struct{}

// DefaultStrings is the Strings implementation every variant decoder
// uses.
var DefaultStrings Strings = textStrings{}

func (textStrings) DecodeSingleByte(data []byte, cp Codepage) (string, error) {
	enc, err := singleByteEncoding(cp)
	if err != nil {
		return "", err
	}
	if enc == nil {
		// ASCII: every byte is already its own code point.
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (textStrings) DecodeUTF16LE(data []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// singleByteEncoding maps a recognized Codepage to its x/text encoding.
// A nil, nil return means "plain ASCII", which x/text has no dedicated
// transcoder for since it's a strict subset of every single-byte page.
func singleByteEncoding(cp Codepage) (encoding.Encoding, error) {
	switch cp {
	case CodepageASCII:
		return nil, nil
	case CodepageISO8859_1:
		return charmap.ISO8859_1, nil
	case CodepageISO8859_2:
		return charmap.ISO8859_2, nil
	case CodepageISO8859_3:
		return charmap.ISO8859_3, nil
	case CodepageISO8859_4:
		return charmap.ISO8859_4, nil
	case CodepageISO8859_5:
		return charmap.ISO8859_5, nil
	case CodepageISO8859_6:
		return charmap.ISO8859_6, nil
	case CodepageISO8859_7:
		return charmap.ISO8859_7, nil
	case CodepageISO8859_8:
		return charmap.ISO8859_8, nil
	case CodepageISO8859_9:
		return charmap.ISO8859_9, nil
	case CodepageISO8859_10:
		return charmap.ISO8859_10, nil
	case CodepageISO8859_11:
		// ISO-8859-11 is TIS-620 plus a non-breaking space at 0xA0;
		// Windows874 is the closest x/text encoding.
		return charmap.Windows874, nil
	case CodepageISO8859_13:
		return charmap.ISO8859_13, nil
	case CodepageISO8859_14:
		return charmap.ISO8859_14, nil
	case CodepageISO8859_15:
		return charmap.ISO8859_15, nil
	case CodepageISO8859_16:
		return charmap.ISO8859_16, nil
	case CodepageKOI8R:
		return charmap.KOI8R, nil
	case CodepageKOI8U:
		return charmap.KOI8U, nil
	case CodepageWindows874:
		return charmap.Windows874, nil
	case CodepageWindows1250:
		return charmap.Windows1250, nil
	case CodepageWindows1251:
		return charmap.Windows1251, nil
	case CodepageWindows1252:
		return charmap.Windows1252, nil
	case CodepageWindows1253:
		return charmap.Windows1253, nil
	case CodepageWindows1254:
		return charmap.Windows1254, nil
	case CodepageWindows1255:
		return charmap.Windows1255, nil
	case CodepageWindows1256:
		return charmap.Windows1256, nil
	case CodepageWindows1257:
		return charmap.Windows1257, nil
	case CodepageWindows1258:
		return charmap.Windows1258, nil
	case CodepageWindows932:
		return japanese.ShiftJIS, nil
	case CodepageWindows936:
		return simplifiedchinese.GBK, nil
	case CodepageWindows949:
		return korean.EUCKR, nil
	case CodepageWindows950:
		return traditionalchinese.Big5, nil
	default:
		return nil, ErrUnsupportedCodepage
	}
}

// --- NUL-terminated field scanning ---------------------------------------
//
// Every variant decoder that reads a string first has to find where it
// ends: file-entry primary names, network-location strings, CPL strings
// and URI strings are all NUL-terminated. These two helpers are shared by
// every variant decoder in this package.

// scanSingleByteString finds the NUL terminator for a single-byte string
// starting at offset. It returns the string bytes (excluding the NUL) and
// the total length consumed (including the NUL), or ok=false if no NUL
// appears before the end of data.
func scanSingleByteString(data []byte, offset int) (str []byte, consumed int, ok bool) {
	for i := offset; i < len(data); i++ {
		if data[i] == 0 {
			return data[offset:i], i - offset + 1, true
		}
	}
	return nil, 0, false
}

// scanUTF16String finds the UTF-16LE NUL terminator (a zero code unit,
// i.e. two zero bytes aligned on a 2-byte boundary relative to offset)
// starting at offset. It returns the string bytes (excluding the
// terminating code unit) and the total length consumed in bytes
// (including the 2-byte terminator), or ok=false if none is found.
func scanUTF16String(data []byte, offset int) (str []byte, consumed int, ok bool) {
	for i := offset; i+2 <= len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return data[offset:i], i - offset + 2, true
		}
	}
	return nil, 0, false
}
