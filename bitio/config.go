// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package bitio

// BitOrder selects which bit of a unit is consumed/emitted first.
type BitOrder int

const (
	// MSBFirst consumes/emits the high bit of each unit first.
	MSBFirst BitOrder = iota
	// LSBFirst consumes/emits the low bit of each unit first.
	LSBFirst
)

// ByteOrder selects how a 16-bit unit's two bytes are ordered on the wire.
type ByteOrder int

const (
	// LittleEndian stores a 16-bit unit low byte first.
	LittleEndian ByteOrder = iota
	// BigEndian stores a 16-bit unit high byte first.
	BigEndian
)

// Config configures a Reader or Writer.
type Config struct {
	BitOrder  BitOrder
	ByteOrder ByteOrder
	// UnitSize is 8 or 16 bits. Zero defaults to 8.
	UnitSize int
}

func (c Config) unitSize() int {
	if c.UnitSize == 0 {
		return 8
	}
	return c.UnitSize
}
