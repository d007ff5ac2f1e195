// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import "encoding/binary"

// cursor is a thin, bounds-checked little-endian view over a byte slice.
// It plays the same role as the ReadUint8/16/32/64 family on saferwall/pe's
// File in helper.go, except it walks a single item's (or list's) bytes
// instead of a whole mapped executable, and it advances as it reads rather
// than taking an absolute offset every time — the natural shape for the
// list builder and extension-block chain walker, both of which consume
// fields strictly left to right.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// advance skips n bytes without reading them.
func (c *cursor) advance(n int) error {
	if n < 0 || n > c.remaining() {
		return truncated("advance", n, c.remaining())
	}
	c.pos += n
	return nil
}

// slice returns the next n bytes and advances past them; callers that need
// a peek should use peek.
func (c *cursor) slice(n int, context string) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, truncated(context, n, c.remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// peek returns the next n bytes without advancing the cursor.
func (c *cursor) peek(n int, context string) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, truncated(context, n, c.remaining())
	}
	return c.data[c.pos : c.pos+n], nil
}

func (c *cursor) readU8(context string) (uint8, error) {
	b, err := c.slice(1, context)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readU16(context string) (uint16, error) {
	b, err := c.slice(2, context)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readU32(context string) (uint32, error) {
	b, err := c.slice(4, context)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readU64(context string) (uint64, error) {
	b, err := c.slice(8, context)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// --- Offset-based (random access) readers -------------------------------
//
// Most variant decoders work against fixed byte offsets into one item's
// body ("at offset 4, 16-byte GUID"; "u16 at data_size - 2"), not as a
// left-to-right field stream. These free
// functions are the offset-addressed equivalent of cursor's sequential
// reads, the same way helper.go's pe.ReadUint32(offset) complements
// structUnpack's sequential decode for one-off field lookups.

func readU8At(data []byte, offset int, context string) (uint8, error) {
	if offset < 0 || offset+1 > len(data) {
		return 0, truncated(context, offset+1, len(data))
	}
	return data[offset], nil
}

func readU16At(data []byte, offset int, context string) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, truncated(context, offset+2, len(data))
	}
	return binary.LittleEndian.Uint16(data[offset:]), nil
}

func readU32At(data []byte, offset int, context string) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, truncated(context, offset+4, len(data))
	}
	return binary.LittleEndian.Uint32(data[offset:]), nil
}

func readU64At(data []byte, offset int, context string) (uint64, error) {
	if offset < 0 || offset+8 > len(data) {
		return 0, truncated(context, offset+8, len(data))
	}
	return binary.LittleEndian.Uint64(data[offset:]), nil
}

func sliceAt(data []byte, offset, n int, context string) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > len(data) {
		return nil, truncated(context, offset+n, len(data))
	}
	return data[offset : offset+n], nil
}

// withinBounds reports whether [offset, offset+n) lies inside data without
// allocating an error, for call sites that treat an out-of-range offset as
// "feature absent" rather than as malformed input (for example the
// extension-block chain's first-block offset).
func withinBounds(data []byte, offset, n int) bool {
	return offset >= 0 && n >= 0 && offset+n <= len(data)
}
