// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fwsiTestControlPanelCPLFileValuesData1 is
// fwsi_test_control_panel_cpl_file_values_data1 from the libfwsi test
// corpus: a Brazilian-Portuguese "Contas de usuário" CPL-file item.
var fwsiTestControlPanelCPLFileValuesData1 = buildCPLFileFixture()

func buildCPLFileFixture() []byte {
	b := []byte{
		0x44, 0x01, 0x00, 0x00, 0x38, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x6a, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x32, 0x00, 0x43, 0x00, 0x3a, 0x00, 0x5c, 0x00, 0x57, 0x00,
		0x49, 0x00, 0x4e, 0x00, 0x44, 0x00, 0x4f, 0x00, 0x57, 0x00, 0x53, 0x00, 0x5c, 0x00, 0x73, 0x00,
		0x79, 0x00, 0x73, 0x00, 0x74, 0x00, 0x65, 0x00, 0x6d, 0x00, 0x33, 0x00, 0x32, 0x00, 0x5c, 0x00,
		0x6e, 0x00, 0x75, 0x00, 0x73, 0x00, 0x72, 0x00, 0x6d, 0x00, 0x67, 0x00, 0x72, 0x00, 0x2e, 0x00,
		0x63, 0x00, 0x70, 0x00, 0x6c, 0x00, 0x00, 0x00, 0x43, 0x00, 0x6f, 0x00, 0x6e, 0x00, 0x74, 0x00,
		0x61, 0x00, 0x73, 0x00, 0x20, 0x00, 0x64, 0x00, 0x65, 0x00, 0x20, 0x00, 0x75, 0x00, 0x73, 0x00,
		0x75, 0x00, 0xe1, 0x00, 0x72, 0x00, 0x69, 0x00, 0x6f, 0x00, 0x00, 0x00, 0x41, 0x00, 0x6c, 0x00,
		0x74, 0x00, 0x65, 0x00, 0x72, 0x00, 0x61, 0x00, 0x72, 0x00, 0x20, 0x00, 0x63, 0x00, 0x6f, 0x00,
		0x6e, 0x00, 0x66, 0x00, 0x69, 0x00, 0x67, 0x00, 0x75, 0x00, 0x72, 0x00, 0x61, 0x00, 0xe7, 0x00,
		0xf5, 0x00, 0x65, 0x00, 0x73, 0x00, 0x20, 0x00, 0x64, 0x00, 0x65, 0x00, 0x20, 0x00, 0x63, 0x00,
		0x6f, 0x00, 0x6e, 0x00, 0x74, 0x00, 0x61, 0x00, 0x73, 0x00, 0x20, 0x00, 0x64, 0x00, 0x65, 0x00,
		0x20, 0x00, 0x75, 0x00, 0x73, 0x00, 0x75, 0x00, 0xe1, 0x00, 0x72, 0x00, 0x69, 0x00, 0x6f, 0x00,
		0x20, 0x00, 0x65, 0x00, 0x20, 0x00, 0x73, 0x00, 0x65, 0x00, 0x6e, 0x00, 0x68, 0x00, 0x61, 0x00,
		0x73, 0x00, 0x20, 0x00, 0x64, 0x00, 0x61, 0x00, 0x73, 0x00, 0x20, 0x00, 0x70, 0x00, 0x65, 0x00,
		0x73, 0x00, 0x73, 0x00, 0x6f, 0x00, 0x61, 0x00, 0x73, 0x00, 0x20, 0x00, 0x71, 0x00, 0x75, 0x00,
		0x65, 0x00, 0x20, 0x00, 0x63, 0x00, 0x6f, 0x00, 0x6d, 0x00, 0x70, 0x00, 0x61, 0x00, 0x72, 0x00,
		0x74, 0x00, 0x69, 0x00, 0x6c, 0x00, 0x68, 0x00, 0x61, 0x00, 0x72, 0x00, 0x65, 0x00, 0x6d, 0x00,
		0x20, 0x00, 0x65, 0x00, 0x73, 0x00, 0x74, 0x00, 0x65, 0x00, 0x20, 0x00, 0x63, 0x00, 0x6f, 0x00,
		0x6d, 0x00, 0x70, 0x00, 0x75, 0x00, 0x74, 0x00, 0x61, 0x00, 0x64, 0x00, 0x6f, 0x00, 0x72, 0x00,
		0x2e, 0x00, 0x00, 0x00,
	}
	return b
}

func TestClassifyControlPanelCPLFile(t *testing.T) {
	assert.Equal(t, 324, len(fwsiTestControlPanelCPLFileValuesData1))
	kind := classifyItem(fwsiTestControlPanelCPLFileValuesData1, KindUnknown)
	assert.Equal(t, KindControlPanelCPLFile, kind)
}

func TestDecodeControlPanelCPLFile(t *testing.T) {
	v, err := decodeControlPanelCPLFile(fwsiTestControlPanelCPLFileValuesData1, CodepageASCII)
	require.NoError(t, err)

	assert.Equal(t, uint32(0xFFFFFF38), v.Signature)
	assert.Equal(t, `C:\WINDOWS\system32\nusrmgr.cpl`, v.CPLFilePath)
	assert.Equal(t, "Contas de usuário", v.DisplayName)
	assert.Equal(t, "Alterar configurações de contas de usuário e senhas das pessoas que compartilharem este computador.", v.Comments)
}

func TestDecodeControlPanelCategory(t *testing.T) {
	item := make([]byte, 8)
	item[4], item[5], item[6], item[7] = 0x05, 0x00, 0x00, 0x00

	c, err := decodeControlPanelCategory(item)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), c.Identifier)
}

func TestDecodeControlPanelItem(t *testing.T) {
	item := make([]byte, 30)
	item[2] = 0x71
	copy(item[14:30], []byte{
		0x24, 0x4d, 0x97, 0xde, 0xc6, 0xd9, 0x3e, 0x4d,
		0xbf, 0x91, 0xf4, 0x45, 0x51, 0x20, 0xb9, 0x17,
	})

	cpi, err := decodeControlPanelItem(item, DefaultKnownFolders)
	require.NoError(t, err)
	assert.Equal(t, "{DE974D24-D9C6-4D3E-BF91-F4455120B917}", cpi.Identifier.String())
	assert.Equal(t, "Common Files", cpi.Name(DefaultKnownFolders))
	assert.Equal(t, cpi.Identifier.String(), cpi.Name(NoIdentifierNames))
}
