// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

func mio0Params() threeStreamParams {
	return threeStreamParams{
		magic:       [4]byte{'M', 'I', 'O', '0'},
		minLen:      3,
		maxLen:      0x12,
		minDisp:     1,
		maxDisp:     0x1000,
		extendedLen: false,
	}
}

// MIO0 is the Nintendo 64 three-stream container: a flag bitstream, a
// 2-byte-per-match layout stream, and a literal byte stream, each starting
// at an offset recorded in the 16-byte header. Match lengths top out at
// 0x12; there is no extended-length escape.
type MIO0 struct{}

func (MIO0) Name() string                 { return "MIO0" }
func (MIO0) CanEncode() bool               { return true }
func (MIO0) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (MIO0) Limitations() []lzcore.FindLimitations { return mio0Params().limits() }
func (MIO0) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (MIO0) Encode(input []byte, w io.Writer) error { return threeStreamEncode(input, w, mio0Params()) }
func (MIO0) Decode(r io.Reader, w io.Writer) error  { return threeStreamDecode(r, w, mio0Params()) }
