// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lzeType = 0x7A

	lzeALen, lzeAMaxLen   = 3, 0x12
	lzeADisp, lzeAMaxDisp = 5, 0x1004

	lzeBLen, lzeBMaxLen   = 2, 0x41
	lzeBDisp, lzeBMaxDisp = 1, 4
)

// lzeCodec selects between two independent (length, displacement) field
// families per token: a short-range "B" family (1 selector byte + 1 packed
// byte) tried first since it is cheaper, falling back to the longer-range
// "A" family (1 selector byte + 2 packed bytes) otherwise. The selector
// byte disambiguates how many payload bytes follow.
type lzeCodec struct{}

func (lzeCodec) encodeMatch(length, disp int) []byte {
	if length >= lzeBLen && length <= lzeBMaxLen && disp >= lzeBDisp && disp <= lzeBMaxDisp {
		l := length - lzeBLen
		d := disp - lzeBDisp
		return []byte{0, byte(l<<2) | byte(d)}
	}
	l := length - lzeALen
	d := disp - lzeADisp
	return []byte{1, byte(l<<4) | byte(d>>8), byte(d)}
}

func (lzeCodec) decodeMatch(br io.ByteReader) (int, int, error) {
	sel, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	if sel == 0 {
		b, err := br.ReadByte()
		if err != nil {
			return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		length := int(b>>2) + lzeBLen
		disp := int(b&0x3) + lzeBDisp
		return length, disp, nil
	}
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	length := int(b0>>4) + lzeALen
	disp := (int(b0&0xF)<<8 | int(b1)) + lzeADisp
	return length, disp, nil
}

// Lze offers the parser two simultaneous, non-overlapping (length,
// displacement) constraint families. A match legal under either family has
// the same flat price; lzeCodec stores it in the shorter B form whenever it
// fits and in the A form otherwise.
type Lze struct{}

func (Lze) Name() string                 { return "Lze" }
func (Lze) CanEncode() bool               { return true }
func (Lze) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (Lze) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{
		{MinLength: lzeALen, MaxLength: lzeAMaxLen, MinDisplacement: lzeADisp, MaxDisplacement: lzeAMaxDisp},
		{MinLength: lzeBLen, MaxLength: lzeBMaxLen, MinDisplacement: lzeBDisp, MaxDisplacement: lzeBMaxDisp},
	}
}

func (Lze) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f Lze) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, lzeType, f.Limitations(), f.Options(), f.Price(), 0, lzeCodec{})
}

func (Lze) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, lzeType, false, lzeCodec{})
}
