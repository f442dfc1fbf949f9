// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package bitio implements bit-level and byte-level readers/writers with
configurable bit order (MSB/LSB-first), byte order (little/big-endian),
and unit size (8 or 16 bits).

A Reader consumes a backing byte source, maintaining a bit buffer of up
to one unit. ReadBits(n) returns the next n bits as an unsigned
integer; when the buffer drains, one unit is fetched from the source
and interpreted per the configured ByteOrder. A Writer mirrors this and
Flush zero-pads any partial unit to a unit boundary.

	r := bitio.NewReader(bytes.NewReader(data), bitio.Config{
	        BitOrder: bitio.MSBFirst, ByteOrder: bitio.LittleEndian, UnitSize: 8,
	})
	v, err := r.ReadBits(4)
*/
package bitio
