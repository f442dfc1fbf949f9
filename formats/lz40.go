// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lz40Type                 = 0x40
	lz40MinLen, lz40MaxLen   = 3, 0x1010F
	lz40MinDisp, lz40MaxDisp = 1, 0xFFF
)

// LZ40 reuses LZ11's tiered length/displacement field layout (the bit
// widths comfortably cover LZ40's slightly narrower bounds) under a
// different container type byte.
type LZ40 struct{}

func (LZ40) Name() string                 { return "LZ40" }
func (LZ40) CanEncode() bool               { return true }
func (LZ40) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 25} }

func (LZ40) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lz40MinLen, MaxLength: lz40MaxLen, MinDisplacement: lz40MinDisp, MaxDisplacement: lz40MaxDisp}}
}

func (LZ40) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f LZ40) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, lz40Type, f.Limitations(), f.Options(), f.Price(), 0, lz11Codec{})
}

func (LZ40) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, lz40Type, false, lz11Codec{})
}
