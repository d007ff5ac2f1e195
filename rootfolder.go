// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// RootFolder is the value for KindRootFolder, grounded on
// libfwsi_root_folder_values.c. It anchors a shell item list at a
// namespace root such as Desktop or My Computer.
type RootFolder struct {
	// ShellFolderID is the 16-byte GUID at payload offset 4 naming which
	// root folder this is (Desktop, My Computer, Control Panel, ...).
	ShellFolderID Guid
}

// Name resolves ShellFolderID through names, falling back to the GUID's
// textual form when names has no entry for it.
func (r *RootFolder) Name(names IdentifierNameResolver) string {
	if names != nil {
		if n, ok := names.IdentifierName(r.ShellFolderID); ok {
			return n
		}
	}
	return r.ShellFolderID.String()
}

// decodeRootFolder decodes a root-folder item body. classify_item only
// ever dispatches here when class type is 0x1F, so that check is not
// repeated here.
func decodeRootFolder(body []byte) (*RootFolder, error) {
	id, err := guidAt(body, 4, "root-folder shell-folder-identifier")
	if err != nil {
		return nil, err
	}
	return &RootFolder{ShellFolderID: id}, nil
}
