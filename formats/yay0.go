// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

func yay0Params() threeStreamParams {
	return threeStreamParams{
		magic:       [4]byte{'Y', 'a', 'y', '0'},
		minLen:      3,
		maxLen:      0x111,
		minDisp:     1,
		maxDisp:     0x1000,
		extendedLen: true,
	}
}

// YAY0 is the same three-stream container MIO0 uses, extended with a
// zero-nibble escape: a stored length nibble of 0 means "read one more
// byte from the literal stream and add 0x12", reaching lengths up to
// 0x111.
type YAY0 struct{}

func (YAY0) Name() string                 { return "YAY0" }
func (YAY0) CanEncode() bool               { return true }
func (YAY0) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (YAY0) Limitations() []lzcore.FindLimitations { return yay0Params().limits() }
func (YAY0) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (YAY0) Encode(input []byte, w io.Writer) error { return threeStreamEncode(input, w, yay0Params()) }
func (YAY0) Decode(r io.Reader, w io.Writer) error  { return threeStreamDecode(r, w, yay0Params()) }
