// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const lz60Type = 0x60

// LZ60 is LZ40 under a different container type byte; the two formats
// share identical length/displacement bounds and wire layout.
type LZ60 struct{}

func (LZ60) Name() string                 { return "LZ60" }
func (LZ60) CanEncode() bool               { return true }
func (LZ60) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 25} }

func (LZ60) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lz40MinLen, MaxLength: lz40MaxLen, MinDisplacement: lz40MinDisp, MaxDisplacement: lz40MaxDisp}}
}

func (LZ60) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f LZ60) Encode(input []byte, w io.Writer) error {
	return classicEncode(input, w, lz60Type, f.Limitations(), f.Options(), f.Price(), 0, lz11Codec{})
}

func (LZ60) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, lz60Type, false, lz11Codec{})
}
