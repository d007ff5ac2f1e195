// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// CompressedFolder is the value for KindCompressedFolder, grounded on
// libfwsi_compressed_folder_values.c. Both recognized
// sub-forms carry their date/size scaffold opaquely; trailing data beyond
// the fixed header is preserved as Raw but not parsed further.
type CompressedFolder struct {
	// IsWindows10Form is set when the item is shorter than the 68-byte
	// Windows-XP header; it is decided by length alone, not by which
	// scaffold classify.go's probeCompressedFolder matched.
	IsWindows10Form bool

	// StringDataSize1 and StringDataSize2 are the two u32 string-data
	// sizes at offsets 60 and 64 in the Windows-XP form; zero in the
	// Windows-10 form.
	StringDataSize1 uint32
	StringDataSize2 uint32

	Raw []byte
}

func decodeCompressedFolder(item []byte) (*CompressedFolder, error) {
	cf := &CompressedFolder{Raw: item}

	if len(item) >= 68 {
		if s1, err := readU32At(item, 60, "compressed-folder string size 1"); err == nil {
			if s2, err := readU32At(item, 64, "compressed-folder string size 2"); err == nil {
				cf.StringDataSize1 = s1
				cf.StringDataSize2 = s2
				return cf, nil
			}
		}
	}

	cf.IsWindows10Form = true
	return cf, nil
}
