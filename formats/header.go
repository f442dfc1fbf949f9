// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

// writeClassicHeader writes the 4-byte Nintendo container header: one type
// byte followed by the decompressed size as a 3-byte little-endian integer.
func writeClassicHeader(w io.Writer, formatType byte, size int) error {
	header := [4]byte{formatType, byte(size), byte(size >> 8), byte(size >> 16)}
	_, err := w.Write(header[:])
	return err
}

// readClassicHeader reads and validates a 4-byte Nintendo container header
// against the expected type byte, returning the decompressed size.
func readClassicHeader(r io.Reader, wantType byte) (int, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	if header[0] != wantType {
		return 0, lzcore.NewError(lzcore.MalformedToken, "unexpected container type byte")
	}
	size := int(header[1]) | int(header[2])<<8 | int(header[3])<<16
	return size, nil
}

// classic2ByteCodec packs length/displacement into two bytes: a 4-bit
// length field (length-lengthBase) in the high nibble of byte 0, and a
// 12-bit displacement field (displacement-dispBase) across the low nibble
// of byte 0 and all of byte 1: the LZ10/LZSS/BackwardLZ77 wire shape.
type classic2ByteCodec struct {
	lengthBase int
	dispBase   int
}

func (c classic2ByteCodec) encodeMatch(length, disp int) []byte {
	l := length - c.lengthBase
	d := disp - c.dispBase
	return []byte{byte(l<<4) | byte(d>>8), byte(d)}
}

func (c classic2ByteCodec) decodeMatch(br io.ByteReader) (int, int, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	length := int(b0>>4) + c.lengthBase
	disp := (int(b0&0xF)<<8 | int(b1)) + c.dispBase
	return length, disp, nil
}
