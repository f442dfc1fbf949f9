// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package bitio

import "io"

// Reader consumes bits from a backing byte source, one unit (8 or 16 bits)
// at a time, per the configured BitOrder/ByteOrder/UnitSize.
type Reader struct {
	src    io.Reader
	cfg    Config
	unit   uint32 // current unit's bits, not yet fully consumed
	cursor int    // next bit to take from unit: counts down from size-1 (MSBFirst) or up from 0 (LSBFirst)
	size   int    // bits remaining unconsumed in unit
	nunits int    // units fetched from src so far
}

// NewReader constructs a Reader over src with the given configuration.
func NewReader(src io.Reader, cfg Config) *Reader {
	return &Reader{src: src, cfg: cfg}
}

// fetchUnit reads one whole unit from the source, per ByteOrder, and resets
// the bit cursor to the start of that unit.
func (r *Reader) fetchUnit() error {
	unitBits := r.cfg.unitSize()

	var v uint32
	if unitBits == 8 {
		var b [1]byte
		if _, err := io.ReadFull(r.src, b[:]); err != nil {
			return err
		}
		v = uint32(b[0])
	} else {
		var b [2]byte
		if _, err := io.ReadFull(r.src, b[:]); err != nil {
			return err
		}
		if r.cfg.ByteOrder == LittleEndian {
			v = uint32(b[0]) | uint32(b[1])<<8
		} else {
			v = uint32(b[1]) | uint32(b[0])<<8
		}
	}

	r.unit = v
	r.size = unitBits
	if r.cfg.BitOrder == MSBFirst {
		r.cursor = unitBits - 1
	} else {
		r.cursor = 0
	}
	r.nunits++
	return nil
}

// ReadBit reads a single bit, fetching a new unit from the source if the
// current one is exhausted.
func (r *Reader) ReadBit() (bool, error) {
	if r.size == 0 {
		if err := r.fetchUnit(); err != nil {
			return false, err
		}
	}

	bit := (r.unit>>uint(r.cursor))&1 != 0
	r.size--
	if r.cfg.BitOrder == MSBFirst {
		r.cursor--
	} else {
		r.cursor++
	}
	return bit, nil
}

// ReadBits returns the next n bits as an unsigned integer (0 <= n <= 32),
// MSB-first among the n bits returned regardless of the configured
// BitOrder (i.e. the first bit consumed from the stream is the most
// significant bit of the returned value).
func (r *Reader) ReadBits(n int) (uint32, error) {
	var out uint32
	for range n {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		out <<= 1
		if bit {
			out |= 1
		}
	}
	return out, nil
}

// UnitsRead returns how many whole units have been fetched from the source.
func (r *Reader) UnitsRead() int { return r.nunits }
