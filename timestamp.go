// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import "time"

// FatTime is a 32-bit packed MS-DOS date/time, as embedded in file-entry
// items (fat_modification_time) and the common prefix of the 0xBEEF0004
// extension block (creation/access times). This package never interprets
// it — date decoding is left as an interface-only concern — it only
// carries the raw value and a hook for a caller-supplied decoder.
type FatTime uint32

// Raw returns the undecoded 32-bit packed value.
func (t FatTime) Raw() uint32 { return uint32(t) }

// Decode converts t to wall-clock time with d.
func (t FatTime) Decode(d TimeDecoder) (time.Time, error) { return d.DecodeFatTime(t) }

// FileTime is a 64-bit Windows FILETIME (100-ns ticks since 1601-01-01),
// as embedded in URI items.
type FileTime uint64

// Raw returns the undecoded 64-bit value.
func (t FileTime) Raw() uint64 { return uint64(t) }

// Decode converts t to wall-clock time with d.
func (t FileTime) Decode(d TimeDecoder) (time.Time, error) { return d.DecodeFileTime(t) }

// TimeDecoder turns raw FAT or FILETIME values into wall-clock time.Time.
// fwsi ships no implementation of its own; a caller that wants actual
// timestamps supplies one, the same way the Strings and
// IdentifierNameResolver collaborators are caller-supplied.
type TimeDecoder interface {
	DecodeFatTime(t FatTime) (time.Time, error)
	DecodeFileTime(t FileTime) (time.Time, error)
}
