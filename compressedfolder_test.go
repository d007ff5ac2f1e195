// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCompressedFolderWindowsXPForm(t *testing.T) {
	item := make([]byte, 68)
	copy(item[60:64], []byte{0x0A, 0x00, 0x00, 0x00})
	copy(item[64:68], []byte{0x14, 0x00, 0x00, 0x00})

	cf, err := decodeCompressedFolder(item)
	require.NoError(t, err)

	assert.False(t, cf.IsWindows10Form)
	assert.Equal(t, uint32(10), cf.StringDataSize1)
	assert.Equal(t, uint32(20), cf.StringDataSize2)
	assert.Equal(t, item, cf.Raw)
}

func TestDecodeCompressedFolderWindows10Form(t *testing.T) {
	item := make([]byte, 40)

	cf, err := decodeCompressedFolder(item)
	require.NoError(t, err)

	assert.True(t, cf.IsWindows10Form)
	assert.Equal(t, uint32(0), cf.StringDataSize1)
	assert.Equal(t, uint32(0), cf.StringDataSize2)
}

func TestClassifyCompressedFolderXPScaffold(t *testing.T) {
	item := make([]byte, 56)
	item[28], item[29] = '/', 0
	item[34], item[35] = '/', 0
	item[40], item[41] = ' ', 0
	item[42], item[43] = ' ', 0
	item[48], item[49] = ':', 0
	item[54], item[55] = 0, 0

	assert.Equal(t, KindCompressedFolder, classifyItem(item, KindUnknown))
}
