// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNetworkLocationItem(location, description, comments string) []byte {
	item := []byte{0x00, 0x00, 0x41, 0x00}
	item = append(item, []byte(location)...)
	item = append(item, 0x00)
	item = append(item, []byte(description)...)
	item = append(item, 0x00)
	item = append(item, []byte(comments)...)
	item = append(item, 0x00)
	return item
}

func TestDecodeNetworkLocationAllFields(t *testing.T) {
	item := buildNetworkLocationItem(`\\SERVER\SHARE`, "a network share", "no comment")

	nl, err := decodeNetworkLocation(item, CodepageASCII)
	require.NoError(t, err)

	assert.True(t, nl.HasLocation)
	assert.Equal(t, `\\SERVER\SHARE`, nl.Location)
	assert.True(t, nl.HasDescription)
	assert.Equal(t, "a network share", nl.Description)
	assert.True(t, nl.HasComments)
	assert.Equal(t, "no comment", nl.Comments)
}

func TestDecodeNetworkLocationLocationOnly(t *testing.T) {
	item := []byte{0x00, 0x00, 0x41, 0x00}
	item = append(item, []byte(`\\SERVER`)...)
	item = append(item, 0x00)
	// no terminator after this: the description scan runs off the end.

	nl, err := decodeNetworkLocation(item, CodepageASCII)
	require.NoError(t, err)
	assert.True(t, nl.HasLocation)
	assert.Equal(t, `\\SERVER`, nl.Location)
	assert.False(t, nl.HasDescription)
	assert.False(t, nl.HasComments)
}

func TestDecodeNetworkLocationEmpty(t *testing.T) {
	item := []byte{0x00, 0x00, 0x41, 0x00}

	nl, err := decodeNetworkLocation(item, CodepageASCII)
	require.NoError(t, err)
	assert.False(t, nl.HasLocation)
}
