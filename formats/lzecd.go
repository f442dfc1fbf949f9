// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lzecdType                   = 0x45
	lzecdMinLen, lzecdMaxLen    = 3, 0x42
	lzecdMinDisp, lzecdMaxDisp  = 1, 0x400
	lzecdPreBufferSize          = 0x3BE
)

// lzecdCodec packs a 6-bit length field and a 10-bit displacement field
// into 2 bytes: byte0 = (length-3)<<2 | (disp-1)>>8, byte1 = (disp-1)&0xFF.
type lzecdCodec struct{}

func (lzecdCodec) encodeMatch(length, disp int) []byte {
	l := length - lzecdMinLen
	d := disp - lzecdMinDisp
	return []byte{byte(l<<2) | byte(d>>8), byte(d)}
}

func (lzecdCodec) decodeMatch(br io.ByteReader) (int, int, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	length := int(b0>>2) + lzecdMinLen
	disp := (int(b0&0x3)<<8 | int(b1)) + lzecdMinDisp
	return length, disp, nil
}

// lzecdPreBuffer is the fixed fill the encoder/decoder both know: matches
// may reach into it before any real input bytes exist.
func lzecdPreBuffer() []byte {
	return make([]byte, lzecdPreBufferSize)
}

// LzEcd is a pre-buffered LZ77 variant: the first lzecdPreBufferSize bytes
// of virtual history are a fixed, known fill rather than real input.
type LzEcd struct{}

func (LzEcd) Name() string                 { return "LzEcd" }
func (LzEcd) CanEncode() bool               { return true }
func (LzEcd) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (LzEcd) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lzecdMinLen, MaxLength: lzecdMaxLen, MinDisplacement: lzecdMinDisp, MaxDisplacement: lzecdMaxDisp}}
}

func (LzEcd) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1, PreBufferSize: lzecdPreBufferSize, PreBufferContents: lzecdPreBuffer()}
}

func (f LzEcd) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, lzecdType, f.Limitations(), f.Options(), f.Price(), 0, lzecdCodec{})
}

func (LzEcd) Decode(r io.Reader, w io.Writer) error {
	return classicDecodePB(r, w, lzecdType, false, lzecdCodec{}, lzecdPreBuffer())
}
