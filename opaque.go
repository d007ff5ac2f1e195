// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

// GameFolder, CDBurn and AcronisTIB are opaque beyond their signature
// match. The C source gives each of these an almost-empty `int dummy;`
// values struct because all the real logic lives in the read routine, not
// the value; the idiomatic Go equivalent collapses them to a signature
// plus the raw announced bytes, still respecting the announced data_size.

// GameFolder is the value for KindGameFolder ("GFSI" signature).
type GameFolder struct {
	Signature uint32
	Raw       []byte
}

// CDBurn is the value for KindCDBurn ("AugM" signature).
type CDBurn struct {
	Signature uint32
	Raw       []byte
}

// AcronisTIB is the value for KindAcronisTIB (0xACB16752 signature).
type AcronisTIB struct {
	Signature uint32
	Raw       []byte
}

func decodeGameFolder(body []byte, signature uint32) (*GameFolder, error) {
	return &GameFolder{Signature: signature, Raw: body}, nil
}

func decodeCDBurn(body []byte, signature uint32) (*CDBurn, error) {
	return &CDBurn{Signature: signature, Raw: body}, nil
}

func decodeAcronisTIB(body []byte, signature uint32) (*AcronisTIB, error) {
	return &AcronisTIB{Signature: signature, Raw: body}, nil
}
