// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// FileEntry is the value for KindFileEntry, grounded on
// libfwsi_file_entry_values.c. It is the most structurally involved
// variant: a fixed field prefix, a primary name whose encoding is decided
// by two independent signals, an optional pre-XP secondary name, and an
// optional trailing shell-folder-identifier.
type FileEntry struct {
	ClassType byte

	// IsUnicode reports whether PrimaryName was decoded from UTF-16LE,
	// either because class_type carried the 0x04 flag or because the
	// "S.W.N.1" watermark was present — either signal alone is sufficient
	// (see DESIGN.md's resolution of this). class_type 0x31/0x32 are the
	// non-unicode folder and file variants; 0x35/0x36 are their
	// 0x04-flagged unicode siblings.
	IsUnicode bool

	// HasWatermark reports whether the literal "S.W.N.1" bytes were found
	// at data_size-30.
	HasWatermark bool

	FileSize             uint32
	FatModificationTime  FatTime
	FileAttributeFlags   uint16
	PrimaryName          string

	// IsPreXP reports whether the extension-block look-ahead failed, in
	// which case the item is treated as a pre-XP layout and a secondary
	// name is decoded immediately.
	IsPreXP          bool
	HasSecondaryName bool
	SecondaryName    string

	// ShellFolderID is set only in the pre-XP layout when class_type has
	// bit 0x80 set and 16 bytes remain after the secondary name.
	ShellFolderID *Guid
}

func decodeFileEntry(item []byte, classType byte, cp Codepage) (*FileEntry, error) {
	dataSize := len(item)

	fileSize, err := readU32At(item, 4, "file-entry file size")
	if err != nil {
		return nil, err
	}
	fatTime, err := readU32At(item, 8, "file-entry modification time")
	if err != nil {
		return nil, err
	}
	attrs, err := readU16At(item, 12, "file-entry attribute flags")
	if err != nil {
		return nil, err
	}

	isUnicode := classType&0x04 != 0
	hasWatermark := false
	if dataSize > 30 {
		if wm, err := sliceAt(item, dataSize-30, 7, "watermark"); err == nil && string(wm) == "S.W.N.1" {
			hasWatermark = true
		}
	}
	if hasWatermark {
		isUnicode = true
	}

	var nameBytes []byte
	var consumed int
	var ok bool
	if isUnicode {
		nameBytes, consumed, ok = scanUTF16String(item, 14)
	} else {
		nameBytes, consumed, ok = scanSingleByteString(item, 14)
	}
	if !ok {
		return nil, malformed("file-entry primary name", 14)
	}

	var name string
	if isUnicode {
		name, err = DefaultStrings.DecodeUTF16LE(nameBytes)
	} else {
		name, err = DefaultStrings.DecodeSingleByte(nameBytes, cp)
	}
	if err != nil {
		return nil, err
	}

	fe := &FileEntry{
		ClassType:           classType,
		IsUnicode:           isUnicode,
		HasWatermark:        hasWatermark,
		FileSize:            fileSize,
		FatModificationTime: FatTime(fatTime),
		FileAttributeFlags:  attrs,
		PrimaryName:         name,
	}

	nameEnd := 14 + consumed
	alignment := 0
	if !isUnicode && consumed%2 == 1 {
		alignment = 1
	}
	lookaheadOffset := nameEnd + alignment

	lookahead, err := readU16At(item, lookaheadOffset, "file-entry extension look-ahead")
	if err != nil || int(lookahead) > dataSize {
		fe.IsPreXP = true
		if secBytes, secConsumed, ok := scanSingleByteString(item, lookaheadOffset); ok {
			if sec, err := DefaultStrings.DecodeSingleByte(secBytes, cp); err == nil {
				fe.SecondaryName = sec
				fe.HasSecondaryName = true
			}
			end := lookaheadOffset + secConsumed
			if classType&0x80 != 0 && end+16 <= dataSize {
				if id, err := guidAt(item, end, "file-entry shell-folder-identifier"); err == nil {
					fe.ShellFolderID = &id
				}
			}
		}
	}

	return fe, nil
}
