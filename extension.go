// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// ExtensionBlock is one 0xBEEFxxxx-signed trailing record, grounded on
// libfwsi_extension_block.c's generic
// {size, version, signature} envelope plus its per-signature value
// sub-decoders (libfwsi_extension_block_0xbeef0004.c and neighbors).
type ExtensionBlock struct {
	// DataSize is this block's on-wire size in bytes, including the
	// {size, version, signature} header itself.
	DataSize int

	// Version selects the field layout for signature-specific decoders,
	// most visibly 0xBEEF0004 (file-entry extension).
	Version uint16

	// Signature is the full 32-bit value; its top 16 bits are always
	// 0xBEEF for a real block.
	Signature uint32

	// Value holds the signature-specific decoded payload. The file-entry
	// extension below is the one signature with a fully typed Value;
	// every other signature decodes to *OpaqueExtension, preserved by
	// signature + raw bytes for the caller. Value is nil only for the
	// synthetic 2-byte terminator entry that ends a chain.
	Value interface{}
}

// AsFileEntryExtension narrows Value to *FileEntryExtension.
func (e *ExtensionBlock) AsFileEntryExtension() (*FileEntryExtension, bool) {
	v, ok := e.Value.(*FileEntryExtension)
	return v, ok
}

// OpaqueExtension is the Value for every extension-block signature this
// package doesn't give typed field access to: opaque value records, not
// semantically parsed here beyond bounds validation. Raw is the block's
// value bytes, excluding the {size, version, signature} header.
type OpaqueExtension struct {
	// ShellFolderID is set only for 0xBEEF0003 blocks whose total size is
	// exactly 26, the special case for that signature.
	ShellFolderID *Guid
	Raw           []byte
}

// FileEntryExtension is the Value for a 0xBEEF0004 block, grounded on
// libfwsi_extension_block_0xbeef0004.c. It is the one
// extension block carrying data a forensic reader actually wants:
// creation/access times, an optional NTFS file reference, and the long +
// localized name pair that supersede the primary file-entry name.
type FileEntryExtension struct {
	CreationFatTime FatTime
	AccessFatTime   FatTime

	// HasFileReference reports whether Version >= 7 and therefore
	// MFTRecordNumber/MFTSequenceNumber are populated.
	HasFileReference   bool
	MFTRecordNumber    uint64
	MFTSequenceNumber  uint16

	// LongName is the long (non-8.3) file name, decoded UTF-16LE.
	LongName string

	// LocalizedName is present only when this block's recorded long-name
	// size field is nonzero. Its encoding depends on Version: UTF-16LE
	// for Version >= 7, single-byte code page for 3 <= Version < 7,
	// absent below that.
	LocalizedName string
	HasLocalizedName bool
}

// decodeExtensionChain walks the back-half extension-block chain inside
// one item's bytes, starting at firstOffset. item is the full item byte
// slice (including its own 2-byte size prefix); offsets
// below are relative to its start, matching every other decoder in this
// package.
func decodeExtensionChain(item []byte, firstOffset int, cp Codepage) ([]ExtensionBlock, error) {
	dataSize := len(item)
	if firstOffset < 4 || firstOffset >= dataSize-2 {
		return nil, nil
	}

	var blocks []ExtensionBlock
	offset := firstOffset
	for {
		if offset < 0 || offset+2 > dataSize {
			break
		}
		size, err := readU16At(item, offset, "extension-block size")
		if err != nil {
			break
		}
		if size == 0 {
			// A zero size marks the chain's 2-byte trailing sentinel, not a
			// real block; record it synthetically for round-trip byte
			// accounting and stop.
			blocks = append(blocks, ExtensionBlock{DataSize: 2})
			break
		}
		if int(size) < 10 || offset+int(size) > dataSize {
			break
		}
		version, err := readU16At(item, offset+2, "extension-block version")
		if err != nil {
			break
		}
		signature, err := readU32At(item, offset+4, "extension-block signature")
		if err != nil {
			break
		}
		if signature>>16 != 0xBEEF {
			break
		}

		block := ExtensionBlock{DataSize: int(size), Version: version, Signature: signature}
		body := item[offset+8 : offset+int(size)]
		switch signature {
		case 0xBEEF0004:
			v, err := decodeFileEntryExtension(body, version, cp)
			if err != nil {
				return blocks, nil
			}
			block.Value = v
		case 0xBEEF0003:
			if size == 26 {
				id, err := guidAt(body, 0, "0xBEEF0003 shell-folder-identifier")
				if err == nil {
					block.Value = &OpaqueExtension{ShellFolderID: &id, Raw: body}
					blocks = append(blocks, block)
					offset += int(size)
					continue
				}
			}
			block.Value = &OpaqueExtension{Raw: body}
		default:
			block.Value = &OpaqueExtension{Raw: body}
		}
		blocks = append(blocks, block)
		offset += int(size)
	}
	return blocks, nil
}

// decodeFileEntryExtension decodes a 0xBEEF0004 block's value bytes (the
// bytes after {size, version, signature}), following its version-gated
// layout.
func decodeFileEntryExtension(body []byte, version uint16, cp Codepage) (*FileEntryExtension, error) {
	c := newCursor(body)
	creation, err := c.readU32("file-entry extension creation time")
	if err != nil {
		return nil, err
	}
	access, err := c.readU32("file-entry extension access time")
	if err != nil {
		return nil, err
	}
	if _, err := c.readU16("file-entry extension unknown"); err != nil {
		return nil, err
	}

	out := &FileEntryExtension{
		CreationFatTime: FatTime(creation),
		AccessFatTime:   FatTime(access),
	}

	if version >= 7 {
		if _, err := c.readU16("file-entry extension unknown"); err != nil {
			return nil, err
		}
		fileRef, err := c.readU64("file-entry extension NTFS file reference")
		if err != nil {
			return nil, err
		}
		out.HasFileReference = true
		out.MFTRecordNumber = fileRef & 0x0000FFFFFFFFFFFF
		out.MFTSequenceNumber = uint16(fileRef >> 48)
		if err := c.advance(8); err != nil {
			return nil, err
		}
	}

	longNameUnits, err := c.readU16("file-entry extension long-name size")
	if err != nil {
		return nil, err
	}

	if version >= 9 {
		if err := c.advance(4); err != nil {
			return nil, err
		}
	}
	if version >= 8 {
		if err := c.advance(4); err != nil {
			return nil, err
		}
	}

	nameBytes, consumed, ok := scanUTF16String(body, c.pos)
	if !ok {
		return nil, malformed("file-entry extension long name", c.pos)
	}
	longName, err := DefaultStrings.DecodeUTF16LE(nameBytes)
	if err != nil {
		return nil, err
	}
	out.LongName = longName
	if err := c.advance(consumed); err != nil {
		return nil, err
	}

	if longNameUnits > 0 {
		switch {
		case version >= 7:
			locBytes, locConsumed, ok := scanUTF16String(body, c.pos)
			if ok {
				loc, err := DefaultStrings.DecodeUTF16LE(locBytes)
				if err == nil {
					out.LocalizedName = loc
					out.HasLocalizedName = true
				}
				_ = c.advance(locConsumed)
			}
		case version >= 3:
			locBytes, locConsumed, ok := scanSingleByteString(body, c.pos)
			if ok {
				loc, err := DefaultStrings.DecodeSingleByte(locBytes, cp)
				if err == nil {
					out.LocalizedName = loc
					out.HasLocalizedName = true
				}
				_ = c.advance(locConsumed)
			}
		}
	}

	return out, nil
}
