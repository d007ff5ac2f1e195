// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// Source is a memory-mapped shell-item-list byte source, adapted from
// saferwall/pe's File (file.go): mmap.Map the whole file up front and hand
// ParseItemList a plain []byte, rather than streaming reads, since shell
// item lists are small (typically a few hundred bytes to a few KiB) and
// are usually embedded fields extracted from a larger forensic artifact
// rather than standalone files.
type Source struct {
	data mmap.MMap
	f    *os.File
}

// OpenFile memory-maps name and returns a Source over its full contents.
// Callers that already have the bytes in memory (the common case — a
// shell item list extracted from a .lnk, a shellbag value, or a Jump List
// stream) should call ParseItemList directly instead.
func OpenFile(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Source{data: data, f: f}, nil
}

// Bytes returns the mapped file contents.
func (s *Source) Bytes() []byte { return s.data }

// Parse parses the Source's mapped contents as a Shell Item List.
func (s *Source) Parse(opts *ItemListOptions) (*ItemList, error) {
	return ParseItemList(s.data, opts)
}

// Close unmaps the file and closes the underlying descriptor.
func (s *Source) Close() error {
	if s.data != nil {
		_ = s.data.Unmap()
	}
	if s.f != nil {
		return s.f.Close()
	}
	return nil
}
