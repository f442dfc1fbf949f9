// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lz10Type                 = 0x10
	lz10MinLen, lz10MaxLen   = 3, 18
	lz10MinDisp, lz10MaxDisp = 1, 4096
)

// LZ10 implements Nintendo's classic LZ77 variant: flag byte + 2-byte
// match tokens (4-bit length, 12-bit displacement).
type LZ10 struct{}

func (LZ10) Name() string                  { return "LZ10" }
func (LZ10) CanEncode() bool               { return true }
func (LZ10) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (LZ10) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lz10MinLen, MaxLength: lz10MaxLen, MinDisplacement: lz10MinDisp, MaxDisplacement: lz10MaxDisp}}
}

func (LZ10) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f LZ10) Encode(input []byte, w io.Writer) error {
	codec := classic2ByteCodec{lengthBase: lz10MinLen, dispBase: lz10MinDisp}
	return classicEncode(input, w, lz10Type, f.Limitations(), f.Options(), f.Price(), 0, codec)
}

func (LZ10) Decode(r io.Reader, w io.Writer) error {
	codec := classic2ByteCodec{lengthBase: lz10MinLen, dispBase: lz10MinDisp}
	return classicDecode(r, w, lz10Type, false, codec)
}
