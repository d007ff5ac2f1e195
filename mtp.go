// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// MTPProperty is one typed property entry shared by MTPVolume and
// MTPFileEntry, grounded on libfwsi_mtp_volume_values.c /
// libfwsi_mtp_file_entry_values.c's shared property-value loop.
// ValueType matches an OLE VT_* code; Value's concrete type depends on it:
// uint64 for the 8-byte types, uint16 for the 2-byte types, uint32 for the
// 4-byte types, string for VT_LPWSTR (0x1F), Guid for VT_CLSID (0x48).
type MTPProperty struct {
	PropertySetID Guid
	PropertyID    uint32
	ValueType     uint32
	Value         interface{}
}

// readUTF16SizedField decodes a UTF-16LE field whose length, in UTF-16 code
// units, was just read as a u32 size field; libfwsi doubles that count to a
// byte length before consuming the string, and skips the field entirely
// when the size is 0.
func readUTF16SizedField(c *cursor, units uint32, context string) (string, error) {
	if units == 0 {
		return "", nil
	}
	b, err := c.slice(int(units)*2, context)
	if err != nil {
		return "", err
	}
	return DefaultStrings.DecodeUTF16LE(b)
}

// decodeMTPTail decodes the fields MTPVolume and MTPFileEntry share once
// their variant-specific string region has been consumed: an optional
// unknown u32, an optional class-identifier GUID, an optional property
// count, and the property-value stream itself. Each of the three leading
// fields is only present when at least that many trailing bytes remain
// (libfwsi_mtp_file_entry_values.c:672-735 and the matching guards in
// libfwsi_mtp_volume_values.c:484-545), so a short item simply yields a
// zero ClassID and no properties rather than an error.
func decodeMTPTail(c *cursor) (classID Guid, properties []MTPProperty, err error) {
	if c.remaining() > 4 {
		if _, err := c.readU32("mtp unknown trailer"); err != nil {
			return classID, nil, err
		}
	}
	if c.remaining() > 16 {
		guidBytes, err := c.slice(16, "mtp class identifier")
		if err != nil {
			return classID, nil, err
		}
		copy(classID[:], guidBytes)
	}

	var numProps uint32
	if c.remaining() > 4 {
		numProps, err = c.readU32("mtp property count")
		if err != nil {
			return classID, nil, err
		}
	}

properties:
	for i := uint32(0); i < numProps; i++ {
		var prop MTPProperty

		if c.remaining() > 16 {
			setGUIDBytes, err := c.slice(16, "mtp property set guid")
			if err != nil {
				break properties
			}
			copy(prop.PropertySetID[:], setGUIDBytes)
		}
		if c.remaining() > 4 {
			prop.PropertyID, err = c.readU32("mtp property id")
			if err != nil {
				break properties
			}
		}
		if c.remaining() > 4 {
			prop.ValueType, err = c.readU32("mtp property value type")
			if err != nil {
				break properties
			}
		}

		switch prop.ValueType {
		case 0x05, 0x07, 0x15:
			v, err := c.readU64("mtp property value (8 byte)")
			if err != nil {
				break properties
			}
			prop.Value = v
		case 0x0B, 0x12:
			v, err := c.readU16("mtp property value (2 byte)")
			if err != nil {
				break properties
			}
			prop.Value = v
		case 0x0A, 0x13:
			v, err := c.readU32("mtp property value (4 byte)")
			if err != nil {
				break properties
			}
			prop.Value = v
		case 0x1F:
			n, err := c.readU32("mtp property string length")
			if err != nil {
				break properties
			}
			b, err := c.slice(int(n), "mtp property string")
			if err != nil {
				break properties
			}
			s, err := DefaultStrings.DecodeUTF16LE(b)
			if err != nil {
				break properties
			}
			prop.Value = s
		case 0x48:
			b, err := c.slice(16, "mtp property guid")
			if err != nil {
				break properties
			}
			var g Guid
			copy(g[:], b)
			prop.Value = g
		default:
			// Unknown value type: stop parsing properties for this item.
			break properties
		}
		properties = append(properties, prop)
	}

	return classID, properties, nil
}

// MTPVolume is the value for KindMTPVolume (signature 0x10312005 at offset
// 6), grounded on libfwsi_mtp_volume_values.c. Its header carries four size
// fields (name, identifier, file-system name, GUID-string count) at item
// offsets 38/42/46/50, with string data starting at offset 54.
type MTPVolume struct {
	Name           string
	Identifier     string
	FileSystemName string

	// GUIDStrings holds the NUL-terminated UTF-16LE text found in each
	// 78-byte GUID-string array entry, skipping the fixed-width padding
	// around it (libfwsi_mtp_volume_values.c:454-477).
	GUIDStrings []string

	ClassID    Guid
	Properties []MTPProperty
}

func decodeMTPVolume(item []byte) (*MTPVolume, error) {
	c := newCursor(item)
	if err := c.advance(38); err != nil {
		return nil, err
	}

	nameSize, err := c.readU32("mtp volume name size")
	if err != nil {
		return nil, err
	}
	idSize, err := c.readU32("mtp volume identifier size")
	if err != nil {
		return nil, err
	}
	fsNameSize, err := c.readU32("mtp volume file-system name size")
	if err != nil {
		return nil, err
	}
	numGUIDs, err := c.readU32("mtp volume guid-string count")
	if err != nil {
		return nil, err
	}

	v := &MTPVolume{}
	if v.Name, err = readUTF16SizedField(c, nameSize, "mtp volume name"); err != nil {
		return nil, err
	}
	if v.Identifier, err = readUTF16SizedField(c, idSize, "mtp volume identifier"); err != nil {
		return nil, err
	}
	if v.FileSystemName, err = readUTF16SizedField(c, fsNameSize, "mtp volume file-system name"); err != nil {
		return nil, err
	}

	for i := uint32(0); i < numGUIDs; i++ {
		b, err := c.slice(78, "mtp volume guid-string entry")
		if err != nil {
			break
		}
		if nul, _, ok := scanUTF16String(b, 0); ok {
			if s, err := DefaultStrings.DecodeUTF16LE(nul); err == nil {
				v.GUIDStrings = append(v.GUIDStrings, s)
			}
		}
	}

	v.ClassID, v.Properties, err = decodeMTPTail(c)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MTPFileEntry is the value for KindMTPFileEntry (signature 0x07192006 at
// offset 6), grounded on libfwsi_mtp_file_entry_values.c. Unlike MTPVolume,
// its header carries only three size fields (name, a second name field,
// identifier) at item offsets 62/66/70, with string data starting at
// offset 74, and it has no GUID-string array.
type MTPFileEntry struct {
	Name       string
	Name2      string
	Identifier string

	ClassID    Guid
	Properties []MTPProperty
}

func decodeMTPFileEntry(item []byte) (*MTPFileEntry, error) {
	c := newCursor(item)
	if err := c.advance(62); err != nil {
		return nil, err
	}

	nameSize, err := c.readU32("mtp file-entry name size")
	if err != nil {
		return nil, err
	}
	name2Size, err := c.readU32("mtp file-entry second name size")
	if err != nil {
		return nil, err
	}
	idSize, err := c.readU32("mtp file-entry identifier size")
	if err != nil {
		return nil, err
	}

	f := &MTPFileEntry{}
	if f.Name, err = readUTF16SizedField(c, nameSize, "mtp file-entry name"); err != nil {
		return nil, err
	}
	if f.Name2, err = readUTF16SizedField(c, name2Size, "mtp file-entry second name"); err != nil {
		return nil, err
	}
	if f.Identifier, err = readUTF16SizedField(c, idSize, "mtp file-entry identifier"); err != nil {
		return nil, err
	}

	f.ClassID, f.Properties, err = decodeMTPTail(c)
	if err != nil {
		return nil, err
	}
	return f, nil
}
