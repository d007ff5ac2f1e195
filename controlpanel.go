// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// ControlPanelCategory is the value for KindControlPanelCategory, grounded
// on libfwsi_control_panel_category_values.c.
type ControlPanelCategory struct {
	// Identifier is the category enum read at offset 4.
	Identifier uint32
}

func decodeControlPanelCategory(item []byte) (*ControlPanelCategory, error) {
	id, err := readU32At(item, 4, "control-panel-category identifier")
	if err != nil {
		return nil, err
	}
	return &ControlPanelCategory{Identifier: id}, nil
}

// ControlPanelItem is the value for KindControlPanelItem, grounded on
// libfwsi_control_panel_item_values.c. Class type is always 0x71.
type ControlPanelItem struct {
	Identifier Guid
}

func decodeControlPanelItem(item []byte, names IdentifierNameResolver) (*ControlPanelItem, error) {
	id, err := guidAt(item, 14, "control-panel-item identifier")
	if err != nil {
		return nil, err
	}
	return &ControlPanelItem{Identifier: id}, nil
}

// Name resolves Identifier through names, falling back to its GUID form.
func (c *ControlPanelItem) Name(names IdentifierNameResolver) string {
	if names != nil {
		if n, ok := names.IdentifierName(c.Identifier); ok {
			return n
		}
	}
	return c.Identifier.String()
}

// ControlPanelCPLFile is the value for KindControlPanelCPLFile, grounded on
// libfwsi_cpl_file_values.c and confirmed against
// fwsi_test_control_panel_cpl_file_values_data1 (the three UTF-16LE
// strings begin at item offset 24, right after the 24-byte opaque header
// that itself starts at item offset 0 and embeds the 0xFFFFFF38 signature
// at offset 4).
type ControlPanelCPLFile struct {
	Signature uint32

	CPLFilePath string
	DisplayName string
	Comments    string
}

func decodeControlPanelCPLFile(item []byte, cp Codepage) (*ControlPanelCPLFile, error) {
	sig, err := readU32At(item, 4, "cpl-file signature")
	if err != nil {
		return nil, err
	}

	offset := 24
	values := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		b, consumed, ok := scanUTF16String(item, offset)
		if !ok {
			break
		}
		s, err := DefaultStrings.DecodeUTF16LE(b)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
		offset += consumed
	}

	out := &ControlPanelCPLFile{Signature: sig}
	if len(values) > 0 {
		out.CPLFilePath = values[0]
	}
	if len(values) > 1 {
		out.DisplayName = values[1]
	}
	if len(values) > 2 {
		out.Comments = values[2]
	}
	return out, nil
}
