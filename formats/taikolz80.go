// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	taikoLz80Type = 0x80

	taikoLz80SmallLen, taikoLz80SmallMaxLen   = 2, 5
	taikoLz80SmallDisp, taikoLz80SmallMaxDisp = 1, 0x10

	taikoLz80MidLen, taikoLz80MidMaxLen   = 3, 0x12
	taikoLz80MidDisp, taikoLz80MidMaxDisp = 1, 0x400

	taikoLz80LargeLen, taikoLz80LargeMaxLen   = 4, 0x83
	taikoLz80LargeDisp, taikoLz80LargeMaxDisp = 1, 0x8000
)

// taikoLz80Codec selects among three independent (length, displacement)
// families, cheapest-first, via an explicit 1-byte selector: 0 picks the
// 1-byte-payload small family, 1 the 2-byte-payload mid family, 2 the
// 3-byte-payload large family.
type taikoLz80Codec struct{}

func (taikoLz80Codec) encodeMatch(length, disp int) []byte {
	if length >= taikoLz80SmallLen && length <= taikoLz80SmallMaxLen && disp >= taikoLz80SmallDisp && disp <= taikoLz80SmallMaxDisp {
		l := length - taikoLz80SmallLen
		d := disp - taikoLz80SmallDisp
		return []byte{0, byte(l<<4) | byte(d)}
	}
	if length >= taikoLz80MidLen && length <= taikoLz80MidMaxLen && disp >= taikoLz80MidDisp && disp <= taikoLz80MidMaxDisp {
		l := length - taikoLz80MidLen
		d := disp - taikoLz80MidDisp
		return []byte{1, byte(l<<2) | byte(d>>8), byte(d)}
	}
	l := length - taikoLz80LargeLen
	d := disp - taikoLz80LargeDisp
	packed := d<<7 | l
	return []byte{2, byte(packed >> 16), byte(packed >> 8), byte(packed)}
}

func (taikoLz80Codec) decodeMatch(br io.ByteReader) (int, int, error) {
	sel, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	switch sel {
	case 0:
		b, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		return int(b>>4) + taikoLz80SmallLen, int(b&0xF) + taikoLz80SmallDisp, nil
	case 1:
		b0, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		b1, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		length := int(b0>>2) + taikoLz80MidLen
		disp := (int(b0&0x3)<<8 | int(b1)) + taikoLz80MidDisp
		return length, disp, nil
	default:
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
		length := (packed & 0x7F) + taikoLz80LargeLen
		disp := (packed >> 7) + taikoLz80LargeDisp
		return length, disp, nil
	}
}

// TaikoLZ80 offers the parser three simultaneous (length, displacement)
// constraint families, each with its own fixed-width payload, and an
// explicit selector byte disambiguating which applies per token.
type TaikoLZ80 struct{}

func (TaikoLZ80) Name() string                 { return "TaikoLZ80" }
func (TaikoLZ80) CanEncode() bool               { return true }
func (TaikoLZ80) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (TaikoLZ80) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{
		{MinLength: taikoLz80SmallLen, MaxLength: taikoLz80SmallMaxLen, MinDisplacement: taikoLz80SmallDisp, MaxDisplacement: taikoLz80SmallMaxDisp},
		{MinLength: taikoLz80MidLen, MaxLength: taikoLz80MidMaxLen, MinDisplacement: taikoLz80MidDisp, MaxDisplacement: taikoLz80MidMaxDisp},
		{MinLength: taikoLz80LargeLen, MaxLength: taikoLz80LargeMaxLen, MinDisplacement: taikoLz80LargeDisp, MaxDisplacement: taikoLz80LargeMaxDisp},
	}
}

func (TaikoLZ80) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f TaikoLZ80) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, taikoLz80Type, f.Limitations(), f.Options(), f.Price(), 0, taikoLz80Codec{})
}

func (TaikoLZ80) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, taikoLz80Type, false, taikoLz80Codec{})
}
