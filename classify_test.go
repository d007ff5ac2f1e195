// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRootFolder(t *testing.T) {
	item := make([]byte, 20)
	item[2] = 0x1F
	copy(item[4:], []byte{
		0xe0, 0x4f, 0xd0, 0x20, 0xea, 0x3a, 0x69, 0x10,
		0xa2, 0xd8, 0x08, 0x00, 0x2b, 0x30, 0x30, 0x9d,
	})
	assert.Equal(t, KindRootFolder, classifyItem(item, KindUnknown))
}

func TestClassifyRootFolderWrongClassTypeFallsThrough(t *testing.T) {
	item := make([]byte, 20)
	item[2] = 0x14 // shares the 0x10 high nibble but isn't 0x1F
	assert.Equal(t, KindUnknown, classifyItem(item, KindUnknown))
}

func TestClassifyVolume(t *testing.T) {
	item := make([]byte, 24)
	item[2] = 0x2F
	assert.Equal(t, KindVolume, classifyItem(item, KindUnknown))
}

func TestClassifyFileEntryByHighNibble(t *testing.T) {
	item := make([]byte, 16)
	item[2] = 0x31
	assert.Equal(t, KindFileEntry, classifyItem(item, KindUnknown))
}

func TestClassifyNetworkLocation(t *testing.T) {
	item := make([]byte, 16)
	item[2] = 0x41
	assert.Equal(t, KindNetworkLocation, classifyItem(item, KindUnknown))
}

func TestClassifyURI(t *testing.T) {
	item := make([]byte, 16)
	item[2] = 0x61
	assert.Equal(t, KindURI, classifyItem(item, KindUnknown))
}

func TestClassifyControlPanelItem(t *testing.T) {
	item := make([]byte, 30)
	item[2] = 0x71
	assert.Equal(t, KindControlPanelItem, classifyItem(item, KindUnknown))
}

func TestClassifyUnknownChildOfURIBecomesSubValues(t *testing.T) {
	item := make([]byte, 16)
	assert.Equal(t, KindURISubValues, classifyItem(item, KindURI))
}

func TestClassifyUnknownChildOfCompressedFolderInherits(t *testing.T) {
	item := make([]byte, 16)
	assert.Equal(t, KindCompressedFolder, classifyItem(item, KindCompressedFolder))
}

func TestClassifyAcronisTIB(t *testing.T) {
	item := make([]byte, 16)
	copy(item[2:6], []byte{0x52, 0x67, 0xb1, 0xac}) // LE 0xACB16752
	assert.Equal(t, KindAcronisTIB, classifyItem(item, KindUnknown))
}

func TestClassifyGameFolder(t *testing.T) {
	item := make([]byte, 16)
	copy(item[4:8], []byte{0x47, 0x46, 0x53, 0x49}) // LE 0x49534647
	assert.Equal(t, KindGameFolder, classifyItem(item, KindUnknown))
}

func TestClassifyEmptyItemIsUnknown(t *testing.T) {
	assert.Equal(t, KindUnknown, classifyItem(nil, KindUnknown))
}
