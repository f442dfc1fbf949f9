// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package lzcore

// Direction is the scan direction a format's match finder and parser run in.
type Direction int

const (
	// Forward scans left to right; displacement looks back toward position 0.
	Forward Direction = iota
	// Backward scans right to left; displacement looks forward toward the tail.
	Backward
)

// UnitSize is the atomic granularity of positions, lengths, and displacements.
type UnitSize int

const (
	// Unit1 addresses individual bytes.
	Unit1 UnitSize = 1
	// Unit2 addresses 2-byte units (WP16 and similar formats).
	Unit2 UnitSize = 2
)

// FindOptions configures a match finder / parser run for one format.
type FindOptions struct {
	Direction           Direction
	UnitSize            UnitSize
	PreBufferSize       int
	PreBufferContents   []byte
	SkipUnitsAfterMatch int
}
