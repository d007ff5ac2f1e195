// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// UsersPropertyView is the value for KindUsersPropertyView, grounded on
// libfwsi_users_property_view.c and confirmed against
// fwsi_test_users_property_view_values_data1 (signature
// 0x23FEBBEE, known-folder identifier {4BD8D571-6D19-48D3-BE97-422220080E43}
// i.e. the Music KNOWNFOLDERID, property_store_size == 0).
type UsersPropertyView struct {
	// ValueSize is the header's own internal size field (at item offset
	// 4), distinct from the item's own data_size at offset 0.
	ValueSize uint16

	Signature uint32

	// IdentifierIsKnownFolder reports whether Signature is 0x23FEBBEE, in
	// which case Identifier is a 16-byte known-folder GUID; otherwise
	// Identifier is empty and IdentifierBytes holds the raw (typically
	// 4-byte opaque) identifier region.
	IdentifierIsKnownFolder bool
	Identifier              Guid
	IdentifierBytes         []byte

	// PropertyStore is the opaque property-store blob, stored verbatim
	// and exposed to the caller.
	PropertyStore []byte
}

// Name resolves Identifier through names when IdentifierIsKnownFolder,
// falling back to its GUID form.
func (u *UsersPropertyView) Name(names IdentifierNameResolver) string {
	if !u.IdentifierIsKnownFolder {
		return ""
	}
	if names != nil {
		if n, ok := names.IdentifierName(u.Identifier); ok {
			return n
		}
	}
	return u.Identifier.String()
}

func decodeUsersPropertyView(item []byte) (*UsersPropertyView, error) {
	dataSize := len(item)

	valueSize, err := readU16At(item, 4, "users-property-view value size")
	if err != nil {
		return nil, err
	}
	signature, err := readU32At(item, 6, "users-property-view signature")
	if err != nil {
		return nil, err
	}
	propertyStoreSize, err := readU16At(item, 10, "users-property-view property-store size")
	if err != nil {
		return nil, err
	}
	identifierSize, err := readU16At(item, 12, "users-property-view identifier size")
	if err != nil {
		return nil, err
	}

	if int(identifierSize)+int(propertyStoreSize) > dataSize {
		return nil, malformed("users-property-view identifier/property-store bound", 12)
	}

	u := &UsersPropertyView{ValueSize: valueSize, Signature: signature}

	identifierBytes, err := sliceAt(item, 14, int(identifierSize), "users-property-view identifier")
	if err != nil {
		return nil, err
	}
	if signature == 0x23FEBBEE && identifierSize == 16 {
		var g Guid
		copy(g[:], identifierBytes)
		u.IdentifierIsKnownFolder = true
		u.Identifier = g
	} else {
		u.IdentifierBytes = identifierBytes
	}

	store, err := sliceAt(item, 14+int(identifierSize), int(propertyStoreSize), "users-property-view property store")
	if err != nil {
		return nil, err
	}
	u.PropertyStore = store

	return u, nil
}
