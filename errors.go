// Copyright 2024 The fwsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fwsi

import (
	"errors"
	"fmt"
)

// Sentinel errors for the handful of conditions that have exactly one
// cause and need no further context, mirroring the plain errors.New style
// saferwall/pe's helper.go uses for its own error variables.
var (
	// ErrShortBuffer is returned when the input is too small to hold even
	// an item-list terminator.
	ErrShortBuffer = errors.New("fwsi: input shorter than a list terminator")

	// ErrUnsupportedCodepage is returned when a caller-supplied code page
	// is not one of the recognized values.
	ErrUnsupportedCodepage = errors.New("fwsi: unsupported code page")
)

// TruncatedError reports that a read would run past the end of the
// available bytes.
type TruncatedError struct {
	Context string
	Need    int
	Have    int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("fwsi: truncated reading %s: need %d bytes, have %d", e.Context, e.Need, e.Have)
}

// MalformedError reports that a recognized structure violates one of its
// invariants.
type MalformedError struct {
	Context string
	Offset  int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("fwsi: malformed %s at offset %d", e.Context, e.Offset)
}

// UnsupportedError reports that the parser recognized a structure family
// but not the specific variant seen (for example a future extension-block
// version). It is only surfaced through typed accessors, never from the
// core parse path.
type UnsupportedError struct {
	Context string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("fwsi: unsupported %s", e.Context)
}

func truncated(context string, need, have int) error {
	return &TruncatedError{Context: context, Need: need, Have: have}
}

func malformed(context string, offset int) error {
	return &MalformedError{Context: context, Offset: offset}
}
