// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSingleByteString(t *testing.T) {
	data := []byte("hello\x00world")
	s, consumed, ok := scanSingleByteString(data, 0)
	require.True(t, ok)
	assert.Equal(t, "hello", string(s))
	assert.Equal(t, 6, consumed)

	_, _, ok = scanSingleByteString([]byte("no terminator"), 0)
	assert.False(t, ok)
}

func TestScanUTF16String(t *testing.T) {
	data := append([]byte{0x68, 0x00, 0x69, 0x00, 0x00, 0x00}, 0xFF)
	s, consumed, ok := scanUTF16String(data, 0)
	require.True(t, ok)
	assert.Equal(t, []byte{0x68, 0x00, 0x69, 0x00}, s)
	assert.Equal(t, 6, consumed)

	_, _, ok = scanUTF16String([]byte{0x68, 0x00, 0x69, 0x00}, 0)
	assert.False(t, ok)
}

func TestDecodeSingleByteASCII(t *testing.T) {
	s, err := DefaultStrings.DecodeSingleByte([]byte("plain text"), CodepageASCII)
	require.NoError(t, err)
	assert.Equal(t, "plain text", s)
}

func TestDecodeSingleByteUnsupportedCodepage(t *testing.T) {
	_, err := DefaultStrings.DecodeSingleByte([]byte("x"), Codepage(1))
	assert.ErrorIs(t, err, ErrUnsupportedCodepage)
}

func TestDecodeUTF16LE(t *testing.T) {
	s, err := DefaultStrings.DecodeUTF16LE([]byte{0x68, 0x00, 0x69, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestDecodeSingleByteWindows1252(t *testing.T) {
	// 0xE9 in Windows-1252 is "é".
	s, err := DefaultStrings.DecodeSingleByte([]byte{0xE9}, CodepageWindows1252)
	require.NoError(t, err)
	assert.Equal(t, "é", s)
}
