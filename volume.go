// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import "bytes"

// Volume is the value for KindVolume, grounded on libfwsi_volume_values.c.
type Volume struct {
	// ClassType is one of {0x23, 0x25, 0x29, 0x2A, 0x2E, 0x2F}.
	ClassType byte

	// HasName reports whether Name is meaningful. Class type 0x2E volumes
	// carry no name, only a shell-folder-identifier.
	HasName bool
	Name    string

	// ShellFolderID is set for class type 0x2E volumes.
	ShellFolderID *Guid
}

func decodeVolume(item []byte, classType byte, cp Codepage) (*Volume, error) {
	v := &Volume{ClassType: classType}

	if classType == 0x2E {
		id, err := guidAt(item, 4, "volume shell-folder-identifier")
		if err != nil {
			return nil, err
		}
		v.ShellFolderID = &id
		return v, nil
	}

	nameBytes, err := sliceAt(item, 3, 20, "volume name")
	if err != nil {
		return nil, err
	}
	trimmed := nameBytes
	if i := bytes.IndexByte(trimmed, 0); i >= 0 {
		trimmed = trimmed[:i]
	}
	name, err := DefaultStrings.DecodeSingleByte(trimmed, cp)
	if err != nil {
		return nil, err
	}
	v.HasName = true
	v.Name = name

	// The shell-folder identifier trailing a named volume is optional:
	// present only when the item carries 16 more bytes past offset 25.
	if len(item) >= 41 {
		id, err := guidAt(item, 25, "volume shell-folder-identifier")
		if err != nil {
			return nil, err
		}
		v.ShellFolderID = &id
	}
	return v, nil
}
