// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// Item is one decoded shell item. Its Value field
// holds a variant-specific struct (RootFolder, Volume, FileEntry, ...);
// Kind says which one, and the As* accessors below narrow it with a type
// assertion so callers never need to do the switch themselves.
type Item struct {
	// Kind classifies this item; see classifyItem in classify.go.
	Kind Kind

	// ClassType is the raw class-type discriminator byte at payload
	// offset 0, preserved verbatim regardless of how Kind was derived.
	ClassType byte

	// Signature is the secondary 32-bit discriminator for variants that
	// use one (MTP, game-folder, web-site, CD-burn, ...); zero otherwise.
	Signature uint32

	// DataSize is this item's on-wire size in bytes, including its own
	// 2-byte length prefix. Zero means this Item is the list terminator.
	DataSize int

	// DelegateFolderID is set when this item was a delegate wrapper; nil
	// otherwise.
	DelegateFolderID *Guid

	// Extensions is the ordered chain of trailing 0xBEEFxxxx records, in
	// wire order.
	Extensions []ExtensionBlock

	// CodePage is the single-byte code page propagated from the
	// enclosing ItemList, used by this item's single-byte string fields.
	CodePage Codepage

	// Value holds the variant-specific decoded payload. Its concrete
	// type is determined by Kind: KindRootFolder -> *RootFolder,
	// KindVolume -> *Volume, KindFileEntry -> *FileEntry, and so on. It
	// is nil for KindUnknown and KindListTerminator.
	Value interface{}

	// parentIndex is this item's preceding sibling's index in the
	// owning ItemList.items, or -1 if this is the first item. It is a
	// borrow, never a standalone handle — resolved only through
	// ItemList.Parent, a weak cyclic reference rather than a live pointer.
	parentIndex int
}

// IsTerminator reports whether this Item is the synthetic zero-size list
// terminator rather than a decoded shell item.
func (it *Item) IsTerminator() bool {
	return it.Kind == KindListTerminator
}

// AsRootFolder narrows Value to *RootFolder.
func (it *Item) AsRootFolder() (*RootFolder, bool) {
	v, ok := it.Value.(*RootFolder)
	return v, ok
}

// AsVolume narrows Value to *Volume.
func (it *Item) AsVolume() (*Volume, bool) {
	v, ok := it.Value.(*Volume)
	return v, ok
}

// AsFileEntry narrows Value to *FileEntry.
func (it *Item) AsFileEntry() (*FileEntry, bool) {
	v, ok := it.Value.(*FileEntry)
	return v, ok
}

// AsNetworkLocation narrows Value to *NetworkLocation.
func (it *Item) AsNetworkLocation() (*NetworkLocation, bool) {
	v, ok := it.Value.(*NetworkLocation)
	return v, ok
}

// AsCompressedFolder narrows Value to *CompressedFolder.
func (it *Item) AsCompressedFolder() (*CompressedFolder, bool) {
	v, ok := it.Value.(*CompressedFolder)
	return v, ok
}

// AsURI narrows Value to *URI.
func (it *Item) AsURI() (*URI, bool) {
	v, ok := it.Value.(*URI)
	return v, ok
}

// AsURISubValues narrows Value to *URISubValues.
func (it *Item) AsURISubValues() (*URISubValues, bool) {
	v, ok := it.Value.(*URISubValues)
	return v, ok
}

// AsControlPanelCategory narrows Value to *ControlPanelCategory.
func (it *Item) AsControlPanelCategory() (*ControlPanelCategory, bool) {
	v, ok := it.Value.(*ControlPanelCategory)
	return v, ok
}

// AsControlPanelItem narrows Value to *ControlPanelItem.
func (it *Item) AsControlPanelItem() (*ControlPanelItem, bool) {
	v, ok := it.Value.(*ControlPanelItem)
	return v, ok
}

// AsControlPanelCPLFile narrows Value to *ControlPanelCPLFile.
func (it *Item) AsControlPanelCPLFile() (*ControlPanelCPLFile, bool) {
	v, ok := it.Value.(*ControlPanelCPLFile)
	return v, ok
}

// AsMTPFileEntry narrows Value to *MTPFileEntry.
func (it *Item) AsMTPFileEntry() (*MTPFileEntry, bool) {
	v, ok := it.Value.(*MTPFileEntry)
	return v, ok
}

// AsMTPVolume narrows Value to *MTPVolume.
func (it *Item) AsMTPVolume() (*MTPVolume, bool) {
	v, ok := it.Value.(*MTPVolume)
	return v, ok
}

// AsUsersPropertyView narrows Value to *UsersPropertyView.
func (it *Item) AsUsersPropertyView() (*UsersPropertyView, bool) {
	v, ok := it.Value.(*UsersPropertyView)
	return v, ok
}

// AsWebSite narrows Value to *WebSite.
func (it *Item) AsWebSite() (*WebSite, bool) {
	v, ok := it.Value.(*WebSite)
	return v, ok
}

// AsGameFolder narrows Value to *GameFolder.
func (it *Item) AsGameFolder() (*GameFolder, bool) {
	v, ok := it.Value.(*GameFolder)
	return v, ok
}

// AsCDBurn narrows Value to *CDBurn.
func (it *Item) AsCDBurn() (*CDBurn, bool) {
	v, ok := it.Value.(*CDBurn)
	return v, ok
}

// AsAcronisTIB narrows Value to *AcronisTIB.
func (it *Item) AsAcronisTIB() (*AcronisTIB, bool) {
	v, ok := it.Value.(*AcronisTIB)
	return v, ok
}

// ExtensionBlockBySignature returns the first extension block on this item
// whose Signature matches sig, or nil if none does.
func (it *Item) ExtensionBlockBySignature(sig uint32) *ExtensionBlock {
	for i := range it.Extensions {
		if it.Extensions[i].Signature == sig {
			return &it.Extensions[i]
		}
	}
	return nil
}
