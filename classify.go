// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// classifyItem determines an item's Kind from its bytes and its preceding
// sibling's Kind, mirroring libfwsi's classify_item dispatch order. item is
// the full on-wire item byte slice (length == data_size, including the
// 2-byte size prefix); offsets below are counted from its first byte.
//
// Classification is pure and total: it always returns a Kind, falling
// back to KindUnknown when nothing fires.
func classifyItem(item []byte, parentKind Kind) Kind {
	size := len(item)

	if size >= 6 {
		if sig, err := readU32At(item, 2, ""); err == nil && sig == 0xACB16752 {
			return KindAcronisTIB
		}
	}

	if size >= 8 {
		if sig, err := readU32At(item, 4, ""); err == nil {
			switch sig {
			case 0x39DE2184:
				return KindControlPanelCategory
			case 0x4D677541:
				return KindCDBurn
			case 0x49534647:
				return KindGameFolder
			case 0xC001B000:
				return KindWebSite
			case 0xFFFFFF38:
				return KindControlPanelCPLFile
			}
		}
	}

	if size >= 10 {
		if sig, err := readU32At(item, 6, ""); err == nil {
			switch sig {
			case 0x07192006:
				return KindMTPFileEntry
			case 0x10312005:
				return KindMTPVolume
			case 0x10141981, 0x23A3DFD5, 0x23FEBBEE, 0x3B93AFBB, 0x49505241, 0xBEEBEE00:
				return KindUsersPropertyView
			}
		}
	}

	if probeCompressedFolder(item) {
		return KindCompressedFolder
	}

	if size >= 3 {
		classType := item[2]
		switch classType & 0x70 {
		case 0x10:
			if classType == 0x1F {
				return KindRootFolder
			}
		case 0x20:
			return KindVolume
		case 0x30:
			return KindFileEntry
		case 0x40:
			return KindNetworkLocation
		case 0x60:
			if classType == 0x61 {
				return KindURI
			}
		case 0x70:
			if classType == 0x71 {
				return KindControlPanelItem
			}
		}
	}

	switch parentKind {
	case KindCompressedFolder:
		return KindCompressedFolder
	case KindURI:
		return KindURISubValues
	}

	return KindUnknown
}

// probeCompressedFolder recognizes the XP-style and Windows-10-style
// scaffolds that mark a compressed-folder item, grounded on
// libfwsi_compressed_folder_values.c's
// libfwsi_compressed_folder_values_read_data, which checks exactly these
// separator positions before trusting the rest of the fixed header.
func probeCompressedFolder(item []byte) bool {
	size := len(item)

	if size >= 56 {
		pattern := []struct {
			offset int
			lo, hi byte
		}{
			{28, '/', 0}, {34, '/', 0}, {40, ' ', 0}, {42, ' ', 0}, {48, ':', 0}, {54, 0, 0},
		}
		ok := true
		for _, p := range pattern {
			if offset := p.offset; offset+2 <= size {
				if item[offset] != p.lo || item[offset+1] != p.hi {
					ok = false
					break
				}
			} else {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	if size >= 78 {
		if size >= 39 && string(decodeUTF16Literal(item[36:44])) == "N/A" {
			return true
		}
	}

	return false
}

// decodeUTF16Literal decodes a fixed run of UTF-16LE code units for
// literal-pattern comparison (the compressed-folder scaffold probes),
// trimming the trailing NUL padding so the "N/A" comparison doesn't need
// to special-case block width.
func decodeUTF16Literal(b []byte) []byte {
	out := make([]byte, 0, len(b)/2)
	for i := 0; i+2 <= len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			break
		}
		if b[i+1] == 0 {
			out = append(out, b[i])
		}
	}
	return out
}
