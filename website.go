// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// WebSite is the value for KindWebSite (signature 0xC001B000 at offset
// 4), grounded on libfwsi_uri_values.c's web-site sibling decoder: two
// length-prefixed opaque blobs separated by a 16-byte padding/record, then
// a small trailer.
type WebSite struct {
	Signature uint32
	Blob1     []byte
	Padding   []byte
	Blob2     []byte
	Trailer   []byte
}

func decodeWebSite(item []byte) (*WebSite, error) {
	sig, err := readU32At(item, 4, "web-site signature")
	if err != nil {
		return nil, err
	}

	c := newCursor(item)
	if err := c.advance(8); err != nil {
		return nil, err
	}

	w := &WebSite{Signature: sig}

	n1, err := c.readU32("web-site blob1 length")
	if err != nil {
		return w, nil
	}
	blob1, err := c.slice(int(n1), "web-site blob1")
	if err != nil {
		return w, nil
	}
	w.Blob1 = blob1

	padding, err := c.slice(16, "web-site padding")
	if err != nil {
		return w, nil
	}
	w.Padding = padding

	n2, err := c.readU32("web-site blob2 length")
	if err != nil {
		return w, nil
	}
	blob2, err := c.slice(int(n2), "web-site blob2")
	if err != nil {
		return w, nil
	}
	w.Blob2 = blob2

	if c.remaining() > 0 {
		w.Trailer = item[c.pos:]
	}

	return w, nil
}
