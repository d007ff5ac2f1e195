// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fwsiTestFileEntryValuesData1 is fwsi_test_file_entry_values_data1 from
// the libfwsi test corpus: a non-Unicode "wordpad.exe" file entry with a
// trailing version-3 0xBEEF0004 extension block.
var fwsiTestFileEntryValuesData1 = []byte{
	0x48, 0x00, 0x32, 0x00, 0x00, 0x46, 0x03, 0x00, 0x04, 0x31, 0x00, 0x68, 0x20, 0x00, 0x77, 0x6f,
	0x72, 0x64, 0x70, 0x61, 0x64, 0x2e, 0x65, 0x78, 0x65, 0x00, 0x2e, 0x00, 0x03, 0x00, 0x04, 0x00,
	0xef, 0xbe, 0x0a, 0x31, 0xc9, 0x7e, 0x09, 0x31, 0x00, 0xb8, 0x14, 0x00, 0x00, 0x00, 0x77, 0x00,
	0x6f, 0x00, 0x72, 0x00, 0x64, 0x00, 0x70, 0x00, 0x61, 0x00, 0x64, 0x00, 0x2e, 0x00, 0x65, 0x00,
	0x78, 0x00, 0x65, 0x00, 0x00, 0x00, 0x1a, 0x00,
}

func TestClassifyFileEntry(t *testing.T) {
	assert.Equal(t, 72, len(fwsiTestFileEntryValuesData1))
	kind := classifyItem(fwsiTestFileEntryValuesData1, KindUnknown)
	assert.Equal(t, KindFileEntry, kind)
}

func TestDecodeFileEntryNonUnicode(t *testing.T) {
	classType := fwsiTestFileEntryValuesData1[2]
	require.Equal(t, byte(0x32), classType)

	fe, err := decodeFileEntry(fwsiTestFileEntryValuesData1, classType, CodepageASCII)
	require.NoError(t, err)

	assert.False(t, fe.IsUnicode)
	assert.False(t, fe.HasWatermark)
	assert.Equal(t, uint32(0x00034600), fe.FileSize)
	assert.Equal(t, FatTime(0x68003104), fe.FatModificationTime)
	assert.Equal(t, uint16(0x0020), fe.FileAttributeFlags)
	assert.Equal(t, "wordpad.exe", fe.PrimaryName)
	assert.False(t, fe.IsPreXP)
	assert.False(t, fe.HasSecondaryName)
}

func TestDecodeExtensionChainFileEntryV3(t *testing.T) {
	firstOffset, err := readU16At(fwsiTestFileEntryValuesData1, len(fwsiTestFileEntryValuesData1)-2, "")
	require.NoError(t, err)
	assert.Equal(t, uint16(26), firstOffset)

	blocks, err := decodeExtensionChain(fwsiTestFileEntryValuesData1, int(firstOffset), CodepageASCII)
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	block := blocks[0]
	assert.Equal(t, 46, block.DataSize)
	assert.Equal(t, uint16(3), block.Version)
	assert.Equal(t, uint32(0xBEEF0004), block.Signature)

	fee, ok := block.AsFileEntryExtension()
	require.True(t, ok)
	assert.Equal(t, FatTime(0x7ec9310a), fee.CreationFatTime)
	assert.Equal(t, FatTime(0xb8003109), fee.AccessFatTime)
	assert.False(t, fee.HasFileReference)
	assert.Equal(t, "wordpad.exe", fee.LongName)
	assert.False(t, fee.HasLocalizedName)
}
