// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	bwlz77Type                   = 0x21
	bwlz77MinLen, bwlz77MaxLen   = 3, 0x12
	bwlz77MinDisp, bwlz77MaxDisp = 3, 0x1002
)

// BackwardLZ77 scans and emits tokens from the end of the input toward the
// start. Encode reverses the input once before running the ordinary
// forward pipeline, so the first emitted token naturally covers the final
// bytes of the original input; Decode reverses the reconstructed buffer
// once at the end to restore original byte order.
type BackwardLZ77 struct{}

func (BackwardLZ77) Name() string                 { return "BackwardLZ77" }
func (BackwardLZ77) CanEncode() bool               { return true }
func (BackwardLZ77) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (BackwardLZ77) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: bwlz77MinLen, MaxLength: bwlz77MaxLen, MinDisplacement: bwlz77MinDisp, MaxDisplacement: bwlz77MaxDisp}}
}

func (BackwardLZ77) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Backward, UnitSize: lzcore.Unit1}
}

func (f BackwardLZ77) Encode(input []byte, w io.Writer) error {
	codec := classic2ByteCodec{lengthBase: bwlz77MinLen, dispBase: bwlz77MinDisp}
	return classicEncode(input, w, bwlz77Type, f.Limitations(), f.Options(), f.Price(), 0, codec)
}

func (BackwardLZ77) Decode(r io.Reader, w io.Writer) error {
	codec := classic2ByteCodec{lengthBase: bwlz77MinLen, dispBase: bwlz77MinDisp}
	return classicDecode(r, w, bwlz77Type, true, codec)
}
