// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVolumeRemovableForm(t *testing.T) {
	item := make([]byte, 20)
	item[2] = 0x2E
	copy(item[4:20], []byte{
		0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab,
		0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab,
	})

	v, err := decodeVolume(item, 0x2E, CodepageASCII)
	require.NoError(t, err)

	assert.False(t, v.HasName)
	require.NotNil(t, v.ShellFolderID)
	assert.Equal(t, "{ABABABAB-ABAB-ABAB-ABAB-ABABABABABAB}", v.ShellFolderID.String())
}

func TestDecodeVolumeNamedWithTrailingGUID(t *testing.T) {
	item := make([]byte, 41)
	item[2] = 0x23
	copy(item[3:], []byte("C:\\"))
	copy(item[25:41], []byte{
		0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd,
		0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd,
	})

	v, err := decodeVolume(item, 0x23, CodepageASCII)
	require.NoError(t, err)

	assert.True(t, v.HasName)
	assert.Equal(t, `C:\`, v.Name)
	require.NotNil(t, v.ShellFolderID)
	assert.Equal(t, "{CDCDCDCD-CDCD-CDCD-CDCD-CDCDCDCDCDCD}", v.ShellFolderID.String())
}

func TestDecodeVolumeNamedWithoutTrailingGUID(t *testing.T) {
	item := make([]byte, 25)
	item[2] = 0x23
	copy(item[3:], []byte("D:\\"))

	v, err := decodeVolume(item, 0x23, CodepageASCII)
	require.NoError(t, err)

	assert.True(t, v.HasName)
	assert.Equal(t, `D:\`, v.Name)
	assert.Nil(t, v.ShellFolderID)
}
