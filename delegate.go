// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// unwrapDelegate detects and peels a delegate wrapper, grounded on
// libfwsi_item.c's libfwsi_item_read_buffer delegate
// handling plus libfwsi_delegate_folder_values_read_data, and confirmed
// byte-for-byte against fwsi_test_delegate_values_data1. item is the full
// on-wire item byte slice. It returns the delegate folder identifier (nil
// if item is not a delegate wrapper) and the byte slice classification
// should continue on.
//
// The last 2 bytes of item double as the usual first-extension-block
// offset and, for a delegate item, as a marker for where delegate-specific
// data ends and any trailing extension-block chain begins: if that value
// falls in [32, len(item)-2) it is taken as the delegate payload size,
// otherwise the whole item is the delegate payload.
func unwrapDelegate(item []byte) (*Guid, []byte) {
	size := len(item)
	if size < 38 {
		return nil, item
	}

	rawOffset, err := readU16At(item, size-2, "delegate trailer offset")
	if err != nil {
		return nil, item
	}

	delegateSize := size
	if int(rawOffset) >= 32 && int(rawOffset) < size-2 {
		delegateSize = int(rawOffset)
	}
	if delegateSize < 38 {
		return nil, item
	}

	classID, err := guidAt(item, delegateSize-32, "delegate class identifier")
	if err != nil || classID != delegateItemIdentifier {
		return nil, item
	}

	// Inner data size is a u16 at offset 4; inner data itself starts at
	// offset 6 (class-type byte, unknown byte, then the 2-byte size).
	innerSizeField, err := readU16At(item, 4, "delegate inner data size")
	if err != nil {
		return nil, item
	}
	innerSize := int(innerSizeField)
	if innerSize > delegateSize-38 {
		return nil, item
	}
	innerEnd := 6 + innerSize
	if innerEnd > len(item) {
		return nil, item
	}
	innerBytes := item[6:innerEnd]

	folderID, err := guidAt(item, delegateSize-16, "delegate folder identifier")
	if err != nil {
		return nil, item
	}

	// Only the users-files-folder-delegate identifier is confirmed against
	// real sample data (see guid.go); the search-folder and
	// removable-drives identifiers fall through to the general case below,
	// same as any other unrecognized delegate_folder_id. libfwsi_item.c
	// also re-slices removable-drives the same way as users-files-folder
	// (inner_data[4:]), and leaves search-folder's shell_item_data
	// un-realigned entirely — neither distinction is reproducible here
	// without their GUID bytes.
	if folderID == delegateUsersFilesFolderIdentifier {
		if len(innerBytes) < 4 {
			return &folderID, item
		}
		return &folderID, innerBytes[4:]
	}
	return &folderID, innerBytes
}
