// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// IdentifierNameResolver is the known-identifier lookup collaborator: a
// caller-supplied GUID-to-display-name catalog. The parser never consults
// this itself — classification is a pure function of bytes and parent
// kind — it exists purely so accessors like RootFolder.Name can turn a
// GUID into something a human forensic analyst recognizes.
type IdentifierNameResolver interface {
	// IdentifierName returns a human-readable name for id and true, or
	// ("", false) if id is not recognized.
	IdentifierName(id Guid) (string, bool)
}

// knownFolders backs DefaultKnownFolders.
type knownFolders map[Guid]string

// IdentifierName implements IdentifierNameResolver.
func (k knownFolders) IdentifierName(id Guid) (string, bool) {
	name, ok := k[id]
	return name, ok
}

// DefaultKnownFolders is a representative (not exhaustive) known-folder
// catalog, seeded from libfwsi's known-folder identifier table. Microsoft's
// full KNOWNFOLDERID
// enumeration runs to roughly 180 entries across shell folders, known
// folders, and control-panel items; a caller that needs full coverage
// supplies its own IdentifierNameResolver (for example backed by a
// generated table) to the Name accessors, or to FormatTree via WithNames.
var DefaultKnownFolders IdentifierNameResolver = knownFolders{
	{0xe0, 0x4f, 0xd0, 0x20, 0xea, 0x3a, 0x69, 0x10, 0xa2, 0xd8, 0x08, 0x00, 0x2b, 0x30, 0x30, 0x9d}: "My Computer",
	{0x24, 0x4d, 0x97, 0xde, 0xc6, 0xd9, 0x3e, 0x4d, 0xbf, 0x91, 0xf4, 0x45, 0x51, 0x20, 0xb9, 0x17}: "Common Files",
	{0x80, 0xa6, 0x3c, 0x32, 0x4d, 0xc2, 0x99, 0x40, 0xb9, 0x4d, 0x44, 0x6d, 0xd2, 0xd7, 0x24, 0x9e}: "Common Places",
	{0xd0, 0x9a, 0xd3, 0xfd, 0x8f, 0x23, 0xaf, 0x46, 0xad, 0xb4, 0x6c, 0x85, 0x48, 0x03, 0x69, 0xc7}: "Documents",
	{0x7d, 0xb1, 0x0d, 0x7b, 0xd2, 0x9c, 0x93, 0x4a, 0x97, 0x33, 0x46, 0xcc, 0x89, 0x02, 0x2e, 0x7c}: "Documents Library",
	{0x90, 0xe2, 0x4d, 0x37, 0x3f, 0x12, 0x65, 0x45, 0x91, 0x64, 0x39, 0xc4, 0x92, 0x5e, 0x46, 0x7b}: "Downloads",
	{0x71, 0xd5, 0xd8, 0x4b, 0x19, 0x6d, 0xd3, 0x48, 0xbe, 0x97, 0x42, 0x22, 0x20, 0x08, 0x0e, 0x43}: "Music",
	{0xb5, 0xfa, 0x14, 0x32, 0x57, 0x97, 0x98, 0x42, 0xbb, 0x61, 0x92, 0xa9, 0xde, 0xaa, 0x44, 0xff}: "Music (public)",
	{0x30, 0x81, 0xe2, 0x33, 0x1e, 0x4e, 0x76, 0x46, 0x83, 0x5a, 0x98, 0x39, 0x5c, 0x3b, 0xc3, 0xbb}: "Pictures",
	{0x86, 0xfb, 0xeb, 0xb6, 0x07, 0x69, 0x3c, 0x41, 0x9a, 0xf7, 0x4f, 0xc2, 0xab, 0xf0, 0x7c, 0xc5}: "Pictures (public)",
	{0xb6, 0x63, 0x5e, 0x90, 0xbf, 0xc1, 0x4e, 0x49, 0xb2, 0x9c, 0x65, 0xb7, 0x32, 0xd3, 0xd2, 0x1a}: "Program Files",
	{0xef, 0x40, 0x5a, 0x7c, 0xfb, 0xa0, 0xfc, 0x4b, 0x87, 0x4a, 0xc0, 0xf2, 0xe0, 0xb9, 0xfa, 0x8e}: "Program Files (x86)",
	{0xa2, 0x76, 0xdf, 0xdf, 0x2a, 0xc8, 0x63, 0x4d, 0x90, 0x6a, 0x56, 0x44, 0xac, 0x45, 0x73, 0x85}: "Public",
	{0x04, 0x3a, 0x1d, 0x7d, 0xbb, 0xde, 0x15, 0x41, 0x95, 0xcf, 0x2f, 0x29, 0xda, 0x29, 0x20, 0xda}: "Saved Searches",
	{0x77, 0x4e, 0xc1, 0x1a, 0xe7, 0x02, 0x5d, 0x4e, 0xb7, 0x44, 0x2e, 0xb1, 0xae, 0x51, 0x98, 0xb7}: "System32",
	{0xb0, 0x31, 0x52, 0xd6, 0xf1, 0xb2, 0x57, 0x48, 0xa4, 0xce, 0xa8, 0xe7, 0xc6, 0xea, 0x7d, 0x27}: "System32 (x86)",
	{0x7c, 0x0f, 0xce, 0xf3, 0x01, 0x49, 0xcc, 0x4a, 0x86, 0x48, 0xd5, 0xd4, 0x4b, 0x04, 0xef, 0x8f}: "UserFiles",
	{0x3a, 0x18, 0x00, 0x24, 0x85, 0x61, 0xfb, 0x49, 0xa2, 0xd8, 0x4a, 0x39, 0x2a, 0x60, 0x2b, 0xa3}: "Videos (public)",
	{0x04, 0xf4, 0x8b, 0xf3, 0x43, 0x1d, 0xf2, 0x42, 0x93, 0x05, 0x67, 0xde, 0x0b, 0x28, 0xfc, 0x23}: "Windows",
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}: "Unknown folder",
}

// noResolver is used when a caller explicitly opts out of name resolution.
type noResolver struct{}

func (noResolver) IdentifierName(Guid) (string, bool) { return "", false }

// NoIdentifierNames is an IdentifierNameResolver that never resolves
// anything, for callers who want raw GUIDs only.
var NoIdentifierNames IdentifierNameResolver = noResolver{}
