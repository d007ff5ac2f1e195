// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import "github.com/forensicxlab/fwsi/log"

// ItemListOptions configures ParseItemList, mirroring the role
// saferwall/pe's Options struct plays for pe.New: every knob a caller
// might want is here, with a zero value that behaves sensibly.
type ItemListOptions struct {
	// Codepage selects the single-byte encoding for extended-ASCII
	// strings. Defaults to CodepageASCII if zero.
	Codepage Codepage

	// Logger receives diagnostic messages during parsing. Defaults to
	// log.Default() (stderr, LevelError) if nil.
	Logger *log.Helper

	// IdentifierNames is handed to the variant decoders during parsing
	// (DefaultKnownFolders if nil). Decoded values store GUIDs only; the
	// Name accessors take their resolver as an argument and do not read
	// this field.
	IdentifierNames IdentifierNameResolver

	// Strings is not consulted by ParseItemList: every decoder uses
	// DefaultStrings.
	Strings Strings

	// MaxExtensionBlocks caps how many extension blocks are kept per
	// item (mirrors pe.Options.MaxCOFFSymbolsCount's role). The chain is
	// decoded in full and then cut to this length. Zero means unbounded.
	MaxExtensionBlocks int
}

func (o *ItemListOptions) logger() *log.Helper {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o *ItemListOptions) codepage() Codepage {
	if o == nil || o.Codepage == 0 {
		return CodepageASCII
	}
	return o.Codepage
}

// ItemList is the decoded result of ParseItemList: an ordered sequence of
// Items plus the total on-wire size.
type ItemList struct {
	items    []Item
	dataSize int
	codepage Codepage
}

// Items returns the decoded items in wire order.
func (l *ItemList) Items() []Item { return l.items }

// DataSize returns the total on-wire size: sum of child data_size plus the
// 2-byte terminator.
func (l *ItemList) DataSize() int { return l.dataSize }

// Codepage returns the code page this list was parsed with.
func (l *ItemList) Codepage() Codepage { return l.codepage }

// Parent returns the item preceding items[index] in wire order, the
// backing store for Item.parentIndex: callers reach a parent only through
// the owning list, never as a standalone handle.
func (l *ItemList) Parent(index int) (*Item, bool) {
	if index < 0 || index >= len(l.items) {
		return nil, false
	}
	p := l.items[index].parentIndex
	if p < 0 || p >= len(l.items) {
		return nil, false
	}
	return &l.items[p], true
}

// ParseItemList decodes a Shell Item List (mirroring libfwsi's
// parse_list), grounded on saferwall/pe's File.Parse driving its
// data-directory dispatch table: here the "directories" are shell-item
// variants and the dispatch key is classifyItem's Kind instead of a COFF
// data-directory index.
func ParseItemList(data []byte, opts *ItemListOptions) (*ItemList, error) {
	logger := opts.logger()
	cp := opts.codepage()
	if !cp.Valid() {
		return nil, ErrUnsupportedCodepage
	}

	if len(data) < 2 {
		return nil, ErrShortBuffer
	}

	list := &ItemList{codepage: cp}

	offset := 0
	parentIndex := -1
	for {
		size, err := readU16At(data, offset, "item-list size prefix")
		if err != nil {
			return nil, err
		}
		if size == 0 {
			offset += 2
			break
		}
		if offset+int(size) > len(data) {
			return nil, malformed("item-list item", offset)
		}

		itemBytes := data[offset : offset+int(size)]
		item, err := parseItem(itemBytes, list.parentKindAt(parentIndex), cp, opts)
		if err != nil {
			logger.Warnf("dropping item-list parse at offset %d: %v", offset, err)
			return nil, err
		}
		item.parentIndex = parentIndex

		list.items = append(list.items, *item)
		parentIndex = len(list.items) - 1
		offset += int(size)
	}

	list.dataSize = offset
	return list, nil
}

// parentKindAt returns the Kind of the item at index, or KindUnknown if
// there isn't one yet (the first item in a list has no parent).
func (l *ItemList) parentKindAt(index int) Kind {
	if index < 0 || index >= len(l.items) {
		return KindUnknown
	}
	return l.items[index].Kind
}

// parseItem decodes one shell item, mirroring libfwsi's parse_item: it
// peels any delegate wrapper, classifies the (possibly re-sliced) bytes,
// decodes the variant body, and attaches the extension-block chain. wire
// is the full on-wire item bytes, including its own 2-byte size prefix.
func parseItem(wire []byte, parentKind Kind, cp Codepage, opts *ItemListOptions) (*Item, error) {
	names := DefaultKnownFolders
	if opts != nil && opts.IdentifierNames != nil {
		names = opts.IdentifierNames
	}

	delegateID, classifyBytes := unwrapDelegate(wire)

	kind := classifyItem(classifyBytes, parentKind)

	var classType byte
	if len(classifyBytes) >= 3 {
		classType = classifyBytes[2]
	}
	var signature uint32
	switch kind {
	case KindAcronisTIB:
		signature, _ = readU32At(classifyBytes, 2, "")
	case KindControlPanelCategory, KindCDBurn, KindGameFolder, KindWebSite, KindControlPanelCPLFile:
		signature, _ = readU32At(classifyBytes, 4, "")
	case KindMTPFileEntry, KindMTPVolume, KindUsersPropertyView:
		signature, _ = readU32At(classifyBytes, 6, "")
	}

	item := &Item{
		Kind:             kind,
		ClassType:        classType,
		Signature:        signature,
		DataSize:         len(wire),
		DelegateFolderID: delegateID,
		CodePage:         cp,
	}

	value, err := decodeVariant(classifyBytes, kind, classType, cp, names)
	if err != nil {
		return nil, err
	}
	item.Value = value

	if len(wire) >= 2 {
		firstExtOffset, err := readU16At(wire, len(wire)-2, "item first-extension-block offset")
		if err == nil {
			blocks, err := decodeExtensionChain(wire, int(firstExtOffset), cp)
			if err == nil {
				if opts != nil && opts.MaxExtensionBlocks > 0 && len(blocks) > opts.MaxExtensionBlocks {
					blocks = blocks[:opts.MaxExtensionBlocks]
				}
				item.Extensions = blocks
			}
		}
	}

	return item, nil
}

// decodeVariant dispatches to the per-Kind decoder. Unknown and
// ListTerminator carry no value; every other Kind must have a
// case here, matching the set classifyItem can return.
func decodeVariant(body []byte, kind Kind, classType byte, cp Codepage, names IdentifierNameResolver) (interface{}, error) {
	switch kind {
	case KindRootFolder:
		return decodeRootFolder(body)
	case KindVolume:
		return decodeVolume(body, classType, cp)
	case KindFileEntry:
		return decodeFileEntry(body, classType, cp)
	case KindNetworkLocation:
		return decodeNetworkLocation(body, cp)
	case KindCompressedFolder:
		return decodeCompressedFolder(body)
	case KindURI:
		return decodeURI(body, cp)
	case KindURISubValues:
		return decodeURISubValues(body, cp)
	case KindControlPanelCategory:
		return decodeControlPanelCategory(body)
	case KindControlPanelItem:
		return decodeControlPanelItem(body, names)
	case KindControlPanelCPLFile:
		return decodeControlPanelCPLFile(body, cp)
	case KindMTPFileEntry:
		return decodeMTPFileEntry(body)
	case KindMTPVolume:
		return decodeMTPVolume(body)
	case KindUsersPropertyView:
		return decodeUsersPropertyView(body)
	case KindWebSite:
		return decodeWebSite(body)
	case KindGameFolder:
		return decodeGameFolder(body, 0x49534647)
	case KindCDBurn:
		return decodeCDBurn(body, 0x4D677541)
	case KindAcronisTIB:
		return decodeAcronisTIB(body, 0xACB16752)
	case KindUnknown, KindListTerminator:
		return nil, nil
	default:
		return nil, nil
	}
}
