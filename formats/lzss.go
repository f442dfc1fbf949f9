// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lzssType                 = 0x53
	lzssMinLen, lzssMaxLen   = 3, 0x12
	lzssMinDisp, lzssMaxDisp = 1, 0x1000
)

// LZSS is the classic textbook LZSS variant: identical wire shape to LZ10
// (4-bit length, 12-bit displacement) under a different container type.
type LZSS struct{}

func (LZSS) Name() string                 { return "LZSS" }
func (LZSS) CanEncode() bool               { return true }
func (LZSS) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (LZSS) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lzssMinLen, MaxLength: lzssMaxLen, MinDisplacement: lzssMinDisp, MaxDisplacement: lzssMaxDisp}}
}

func (LZSS) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f LZSS) Encode(input []byte, w io.Writer) error {
	codec := classic2ByteCodec{lengthBase: lzssMinLen, dispBase: lzssMinDisp}
	return classicEncode(input, w, lzssType, f.Limitations(), f.Options(), f.Price(), 0, codec)
}

func (LZSS) Decode(r io.Reader, w io.Writer) error {
	codec := classic2ByteCodec{lengthBase: lzssMinLen, dispBase: lzssMinDisp}
	return classicDecode(r, w, lzssType, false, codec)
}
