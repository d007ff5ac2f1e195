// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fwsiTestDelegateValuesData1 is fwsi_test_delegate_values_data1 from the
// libfwsi test corpus: a 50-byte delegate wrapper around the users-files
// folder delegate identifier, no trailing extension blocks.
var fwsiTestDelegateValuesData1 = []byte{
	0x32, 0x00, 0x2e, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x74, 0x1a, 0x59, 0x5e, 0x96, 0xdf, 0xd3, 0x48, 0x8d, 0x67, 0x17, 0x33, 0xbc, 0xee,
	0x28, 0xba, 0x47, 0x1a, 0x03, 0x59, 0x72, 0x3f, 0xa7, 0x44, 0x89, 0xc5, 0x55, 0x95, 0xfe, 0x6b,
	0x30, 0xee,
}

func TestUnwrapDelegateUsersFilesFolder(t *testing.T) {
	folderID, rest := unwrapDelegate(fwsiTestDelegateValuesData1)

	require.NotNil(t, folderID)
	assert.Equal(t, "{59031A47-3F72-44A7-89C5-5595FE6B30EE}", folderID.String())

	// inner_data is item[6:18] (12 zero bytes here); re-sliced by
	// inner_bytes[4:] for the users-files-folder identifier, leaving 8
	// trailing zero bytes as the continuation slice.
	assert.Equal(t, 8, len(rest))
	for _, b := range rest {
		assert.Equal(t, byte(0), b)
	}
}

func TestUnwrapDelegateNotAWrapper(t *testing.T) {
	item := make([]byte, 40)
	folderID, rest := unwrapDelegate(item)
	assert.Nil(t, folderID)
	assert.Equal(t, item, rest)
}

func TestUnwrapDelegateTooShort(t *testing.T) {
	item := make([]byte, 10)
	folderID, rest := unwrapDelegate(item)
	assert.Nil(t, folderID)
	assert.Equal(t, item, rest)
}
