// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// NetworkLocation is the value for KindNetworkLocation, grounded on
// libfwsi_network_location_values.c's accessor surface (get_utf8_location,
// get_utf8_description, get_utf8_comments): three NUL-terminated,
// single-byte-encoded strings — computer/share location, description,
// comments — each optional, read sequentially starting at offset 4, the
// position every other single-byte-encoded field in this format begins at
// once its 1-byte class/flags prefix (offset 2-3) is past.
type NetworkLocation struct {
	HasLocation bool
	Location    string

	HasDescription bool
	Description    string

	HasComments bool
	Comments    string
}

func decodeNetworkLocation(item []byte, cp Codepage) (*NetworkLocation, error) {
	nl := &NetworkLocation{}
	offset := 4

	if b, consumed, ok := scanSingleByteString(item, offset); ok {
		s, err := DefaultStrings.DecodeSingleByte(b, cp)
		if err != nil {
			return nil, err
		}
		nl.HasLocation = true
		nl.Location = s
		offset += consumed
	} else {
		return nl, nil
	}

	if b, consumed, ok := scanSingleByteString(item, offset); ok {
		s, err := DefaultStrings.DecodeSingleByte(b, cp)
		if err != nil {
			return nil, err
		}
		nl.HasDescription = true
		nl.Description = s
		offset += consumed
	} else {
		return nl, nil
	}

	if b, _, ok := scanSingleByteString(item, offset); ok {
		s, err := DefaultStrings.DecodeSingleByte(b, cp)
		if err != nil {
			return nil, err
		}
		nl.HasComments = true
		nl.Comments = s
	}

	return nl, nil
}
