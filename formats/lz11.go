// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lz11Type                 = 0x11
	lz11MinLen, lz11MaxLen   = 3, 0x10110
	lz11MinDisp, lz11MaxDisp = 1, 4096
)

// lz11Codec packs matches into one of three tiers, selected by magnitude:
// 2 bytes for lengths 3-16, 3 bytes for 17-272, 4 bytes for 273-0x10110.
// Displacement is always a 12-bit field (1-4096).
type lz11Codec struct{}

func (lz11Codec) encodeMatch(length, disp int) []byte {
	d := disp - 1
	switch {
	case length <= 16:
		l := length - 1
		return []byte{byte(l<<4) | byte(d>>8), byte(d)}
	case length <= 272:
		l := length - 0x11
		return []byte{byte(l >> 4), byte(l<<4) | byte(d>>8), byte(d)}
	default:
		l := length - 0x111
		return []byte{0x10 | byte(l>>12), byte(l >> 4), byte(l<<4) | byte(d>>8), byte(d)}
	}
}

func (lz11Codec) decodeMatch(br io.ByteReader) (int, int, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}

	tier := b0 >> 4
	switch tier {
	case 0:
		b1, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		b2, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		length := (int(b0&0xF)<<4 | int(b1>>4)) + 0x11
		disp := (int(b1&0xF)<<8 | int(b2)) + 1
		return length, disp, nil
	case 1:
		b1, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		b2, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		b3, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		length := (int(b0&0xF)<<12 | int(b1)<<4 | int(b2>>4)) + 0x111
		disp := (int(b2&0xF)<<8 | int(b3)) + 1
		return length, disp, nil
	default:
		b1, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		length := int(tier) + 1
		disp := (int(b0&0xF)<<8 | int(b1)) + 1
		return length, disp, nil
	}
}

// LZ11 is Nintendo's extended-length LZ77 variant used when matches longer
// than LZ10's 18-byte cap are common.
type LZ11 struct{}

func (LZ11) Name() string                  { return "LZ11" }
func (LZ11) CanEncode() bool               { return true }
func (LZ11) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 25} }

func (LZ11) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lz11MinLen, MaxLength: lz11MaxLen, MinDisplacement: lz11MinDisp, MaxDisplacement: lz11MaxDisp}}
}

func (LZ11) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f LZ11) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, lz11Type, f.Limitations(), f.Options(), f.Price(), 0, lz11Codec{})
}

func (LZ11) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, lz11Type, false, lz11Codec{})
}
