// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// URI is the value for KindURI, grounded on libfwsi_uri_values.c. Class
// type is always 0x61.
type URI struct {
	Flags byte

	// ItemDataSize is the u16 at offset 4, libfwsi's own internal length
	// field for everything from offset 6 onward (distinct from the item's
	// outer 2-byte size prefix).
	ItemDataSize uint16

	// HasPreamble reports whether ItemDataSize >= 36 and the 36-byte fixed
	// preamble was parsed. Blob1..Blob3 are then read in order; reading
	// stops at the first one that does not fit, leaving it and the rest
	// empty.
	HasPreamble bool
	Unknown1    uint32
	Unknown2    uint32
	FileTime    FileTime
	Unknown4    uint32
	Unknown5    [12]byte
	Unknown6    uint32
	Blob1       []byte
	Blob2       []byte
	Blob3       []byte

	// URIString is the terminating URI, UTF-16LE if Flags&0x80 else the
	// list's single-byte code page.
	URIString string
}

func decodeURI(item []byte, cp Codepage) (*URI, error) {
	flags, err := readU8At(item, 3, "uri flags")
	if err != nil {
		return nil, err
	}
	itemDataSize, err := readU16At(item, 4, "uri item data size")
	if err != nil {
		return nil, err
	}
	u := &URI{Flags: flags, ItemDataSize: itemDataSize}

	offset := 6
	if itemDataSize >= 36 {
		u1, err := readU32At(item, offset, "uri unknown1")
		if err != nil {
			return nil, err
		}
		u2, err := readU32At(item, offset+4, "uri unknown2")
		if err != nil {
			return nil, err
		}
		ft, err := readU64At(item, offset+8, "uri filetime")
		if err != nil {
			return nil, err
		}
		u4, err := readU32At(item, offset+16, "uri unknown4")
		if err != nil {
			return nil, err
		}
		unknown5, err := sliceAt(item, offset+20, 12, "uri unknown5")
		if err != nil {
			return nil, err
		}
		u6, err := readU32At(item, offset+32, "uri unknown6")
		if err != nil {
			return nil, err
		}
		preambleEnd := offset + 36 // == 42

		u.HasPreamble = true
		u.Unknown1 = u1
		u.Unknown2 = u2
		u.FileTime = FileTime(ft)
		u.Unknown4 = u4
		copy(u.Unknown5[:], unknown5)
		u.Unknown6 = u6

		cur := preambleEnd
		for _, dst := range []*[]byte{&u.Blob1, &u.Blob2, &u.Blob3} {
			n, err := readU32At(item, cur, "uri sub-blob length")
			if err != nil {
				return u, nil
			}
			cur += 4
			blob, err := sliceAt(item, cur, int(n), "uri sub-blob")
			if err != nil {
				return u, nil
			}
			*dst = blob
			cur += int(n)
		}
		offset = cur
	} else if itemDataSize > 0 {
		// No preamble: the bytes from offset 6 through ItemDataSize are
		// opaque and precede the URI string rather than being part of it.
		offset += int(itemDataSize)
	}

	var strBytes []byte
	var ok bool
	if flags&0x80 != 0 {
		strBytes, _, ok = scanUTF16String(item, offset)
		if ok {
			if s, err := DefaultStrings.DecodeUTF16LE(strBytes); err == nil {
				u.URIString = s
			}
		}
	} else {
		strBytes, _, ok = scanSingleByteString(item, offset)
		if ok {
			if s, err := DefaultStrings.DecodeSingleByte(strBytes, cp); err == nil {
				u.URIString = s
			}
		}
	}

	return u, nil
}

// URISubValues is the value for KindURISubValues, inferred purely by
// parent context (classify_item rule 6): a pair of
// length-prefixed single-byte strings, URL and an optional title.
type URISubValues struct {
	URL string

	HasTitle bool
	Title    string
}

func decodeURISubValues(item []byte, cp Codepage) (*URISubValues, error) {
	c := newCursor(item)
	if err := c.advance(4); err != nil {
		return nil, err
	}

	urlLen, err := c.readU32("uri-sub url length")
	if err != nil {
		return nil, err
	}
	urlBytes, err := c.slice(int(urlLen), "uri-sub url")
	if err != nil {
		return nil, err
	}
	url, err := DefaultStrings.DecodeSingleByte(urlBytes, cp)
	if err != nil {
		return nil, err
	}
	sub := &URISubValues{URL: url}

	if c.remaining() >= 4 {
		titleLen, err := c.readU32("uri-sub title length")
		if err == nil {
			if titleBytes, err := c.slice(int(titleLen), "uri-sub title"); err == nil {
				if title, err := DefaultStrings.DecodeSingleByte(titleBytes, cp); err == nil {
					sub.HasTitle = true
					sub.Title = title
				}
			}
		}
	}

	return sub, nil
}
