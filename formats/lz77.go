// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lz77Type                 = 0x77
	lz77MinLen, lz77MaxLen   = 1, 255
	lz77MinDisp, lz77MaxDisp = 1, 255
	lz77Skip                 = 1
)

// lz77Codec is the simplest possible LZ token: both length and
// displacement fit a full byte each, so no nibble packing is needed.
type lz77Codec struct{}

func (lz77Codec) encodeMatch(length, disp int) []byte {
	return []byte{byte(length - lz77MinLen), byte(disp - lz77MinDisp)}
}

func (lz77Codec) decodeMatch(br io.ByteReader) (int, int, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	return int(b0) + lz77MinLen, int(b1) + lz77MinDisp, nil
}

// LZ77 is the generic byte-granular LZ format: a match of length L forbids
// starting another match at the skip_units_after_match position right
// after it, enforced by the parser's skip-state dimension.
type LZ77 struct{}

func (LZ77) Name() string                 { return "LZ77" }
func (LZ77) CanEncode() bool               { return true }
func (LZ77) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (LZ77) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lz77MinLen, MaxLength: lz77MaxLen, MinDisplacement: lz77MinDisp, MaxDisplacement: lz77MaxDisp}}
}

func (LZ77) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1, SkipUnitsAfterMatch: lz77Skip}
}

func (f LZ77) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, lz77Type, f.Limitations(), f.Options(), f.Price(), lz77Skip, lz77Codec{})
}

func (LZ77) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, lz77Type, false, lz77Codec{})
}
