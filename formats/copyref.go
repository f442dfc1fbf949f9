// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import "github.com/retrocodec/lzcore"

// copyBackRef copies length bytes from dst[pos-disp:pos-disp+length] to
// dst[pos:pos+length]. When disp < length, the source region overlaps the
// destination (self-referential LZ expansion), so the copy grows the
// written region exponentially rather than byte by byte.
func copyBackRef(dst []byte, pos, disp, length int) error {
	src := pos - disp
	if src < 0 {
		return lzcore.NewErrorAt(lzcore.InvalidRange, pos, "copy source precedes buffer start")
	}
	if pos+length > len(dst) {
		return lzcore.NewErrorAt(lzcore.OutOfRangeWrite, pos, "copy exceeds destination bounds")
	}

	if disp >= length {
		copy(dst[pos:pos+length], dst[src:src+length])
		return nil
	}

	copy(dst[pos:pos+disp], dst[src:pos])
	copied := disp
	for copied < length {
		n := copy(dst[pos+copied:pos+length], dst[pos:pos+copied])
		copied += n
	}
	return nil
}

// copyBackRefPB is copyBackRef for formats with a virtual pre-buffer: when
// the copy source precedes position 0, those bytes come from the tail of
// preBuffer instead of dst. Falls back to copyBackRef's exponential growth
// when the source never leaves dst.
func copyBackRefPB(dst []byte, preBuffer []byte, pos, disp, length int) error {
	src := pos - disp
	if src >= 0 {
		return copyBackRef(dst, pos, disp, length)
	}
	if pos+length > len(dst) {
		return lzcore.NewErrorAt(lzcore.OutOfRangeWrite, pos, "copy exceeds destination bounds")
	}

	for i := 0; i < length; i++ {
		s := src + i
		var b byte
		if s < 0 {
			idx := len(preBuffer) + s
			if idx < 0 {
				return lzcore.NewErrorAt(lzcore.InvalidRange, pos, "copy source precedes pre-buffer start")
			}
			b = preBuffer[idx]
		} else {
			b = dst[s]
		}
		dst[pos+i] = b
	}
	return nil
}
