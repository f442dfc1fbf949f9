// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	taikoLz81Type = 0x81

	taikoLz81MinLen, taikoLz81MaxLen   = 1, 0x102
	taikoLz81MinDisp, taikoLz81MaxDisp = 2, 0x8000
)

// taikoLz81Codec packs a 9-bit length field and a 15-bit displacement field
// into 3 bytes, big-endian, with displacement in the low bits.
type taikoLz81Codec struct{}

func (taikoLz81Codec) encodeMatch(length, disp int) []byte {
	l := length - taikoLz81MinLen
	d := disp - taikoLz81MinDisp
	packed := l<<15 | d
	return []byte{byte(packed >> 16), byte(packed >> 8), byte(packed)}
}

func (taikoLz81Codec) decodeMatch(br io.ByteReader) (int, int, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b2, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	packed := int(b0)<<16 | int(b1)<<8 | int(b2)
	length := (packed >> 15) + taikoLz81MinLen
	disp := (packed & 0x7FFF) + taikoLz81MinDisp
	return length, disp, nil
}

// TaikoLZ81 is a single-family Taiko LZ variant with a wide length range
// (up to 0x102) and a 15-bit displacement, packed into a fixed 3-byte
// match token.
type TaikoLZ81 struct{}

func (TaikoLZ81) Name() string                 { return "TaikoLZ81" }
func (TaikoLZ81) CanEncode() bool               { return true }
func (TaikoLZ81) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 25} }

func (TaikoLZ81) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: taikoLz81MinLen, MaxLength: taikoLz81MaxLen, MinDisplacement: taikoLz81MinDisp, MaxDisplacement: taikoLz81MaxDisp}}
}

func (TaikoLZ81) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f TaikoLZ81) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, taikoLz81Type, f.Limitations(), f.Options(), f.Price(), 0, taikoLz81Codec{})
}

func (TaikoLZ81) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, taikoLz81Type, false, taikoLz81Codec{})
}
