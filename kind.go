// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// Kind tags which shell-item variant an Item decoded to. This is the
// idiomatic-Go stand-in for a hand-rolled closed sum type: a tagged enum
// plus an untyped Value field that the Item.As* accessors narrow to the
// right struct with a type assertion. Exhaustiveness is not checked: a
// Kind without a case in decodeVariant gets a nil Value.
type Kind int

// Recognized Kind values, one per variant this package decodes, plus
// ListTerminator for the synthetic zero-size entry that ends a list and
// Unknown for anything no discrimination rule matched.
const (
	KindUnknown Kind = iota
	KindListTerminator
	KindRootFolder
	KindVolume
	KindFileEntry
	KindNetworkLocation
	KindCompressedFolder
	KindURI
	KindURISubValues
	KindControlPanelCategory
	KindControlPanelItem
	KindControlPanelCPLFile
	KindGameFolder
	KindMTPFileEntry
	KindMTPVolume
	KindUsersPropertyView
	KindWebSite
	KindCDBurn
	KindAcronisTIB
)

// String renders the Kind's name, used by FormatTree and error contexts.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindListTerminator:
		return "ListTerminator"
	case KindRootFolder:
		return "RootFolder"
	case KindVolume:
		return "Volume"
	case KindFileEntry:
		return "FileEntry"
	case KindNetworkLocation:
		return "NetworkLocation"
	case KindCompressedFolder:
		return "CompressedFolder"
	case KindURI:
		return "URI"
	case KindURISubValues:
		return "URISubValues"
	case KindControlPanelCategory:
		return "ControlPanelCategory"
	case KindControlPanelItem:
		return "ControlPanelItem"
	case KindControlPanelCPLFile:
		return "ControlPanelCPLFile"
	case KindGameFolder:
		return "GameFolder"
	case KindMTPFileEntry:
		return "MTPFileEntry"
	case KindMTPVolume:
		return "MTPVolume"
	case KindUsersPropertyView:
		return "UsersPropertyView"
	case KindWebSite:
		return "WebSite"
	case KindCDBurn:
		return "CDBurn"
	case KindAcronisTIB:
		return "AcronisTIB"
	default:
		return "Invalid"
	}
}
