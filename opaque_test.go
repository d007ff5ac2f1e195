// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGameFolder(t *testing.T) {
	body := []byte{0x01, 0x02, 0x03, 0x04}
	gf, err := decodeGameFolder(body, 0x49534647)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x49534647), gf.Signature)
	assert.Equal(t, body, gf.Raw)
}

func TestDecodeCDBurn(t *testing.T) {
	body := []byte{0x0A}
	cb, err := decodeCDBurn(body, 0x4D677541)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x4D677541), cb.Signature)
	assert.Equal(t, body, cb.Raw)
}

func TestDecodeAcronisTIB(t *testing.T) {
	body := []byte{}
	at, err := decodeAcronisTIB(body, 0xACB16752)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xACB16752), at.Signature)
	assert.Empty(t, at.Raw)
}

func TestClassifyGameFolderCDBurnAcronisBySignature(t *testing.T) {
	gf := make([]byte, 16)
	copy(gf[4:8], []byte{0x47, 0x46, 0x53, 0x49})
	assert.Equal(t, KindGameFolder, classifyItem(gf, KindUnknown))

	cb := make([]byte, 16)
	copy(cb[4:8], []byte{0x41, 0x75, 0x67, 0x4D})
	assert.Equal(t, KindCDBurn, classifyItem(cb, KindUnknown))

	at := make([]byte, 16)
	copy(at[2:6], []byte{0x52, 0x67, 0xB1, 0xAC})
	assert.Equal(t, KindAcronisTIB, classifyItem(at, KindUnknown))
}
