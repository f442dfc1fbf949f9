// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	talesOf01Type = 0x91
	talesOf03Type = 0x93

	talesOfMinLen, talesOfMaxLen   = 3, 0x12
	talesOfMinDisp, talesOfMaxDisp = 1, 0x1000

	talesOf01PreBufferSize = 0xFEE
	talesOf03PreBufferSize = 0xFEF
)

// talesOfPreBuffer fills the virtual pre-history with the classic LZSS
// ring-buffer space-fill byte.
func talesOfPreBuffer(size int) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x20
	}
	return buf
}

// TalesOf01 and TalesOf03 are decode-only pre-buffered LZSS variants found
// in the Tales Of series; their only difference is pre-buffer size. Neither
// exposes an encoder in the source this codec was ported from, so Encode
// reports UnsupportedOperation.
type TalesOf01 struct{}
type TalesOf03 struct{}

func (TalesOf01) Name() string    { return "TalesOf01" }
func (TalesOf01) CanEncode() bool { return false }
func (TalesOf03) Name() string    { return "TalesOf03" }
func (TalesOf03) CanEncode() bool { return false }

func (TalesOf01) Price() lzcore.PriceCalculator { return flatTokenPrice{} }
func (TalesOf03) Price() lzcore.PriceCalculator { return flatTokenPrice{} }

func (TalesOf01) Limitations() []lzcore.FindLimitations { return talesOfLimitations() }
func (TalesOf03) Limitations() []lzcore.FindLimitations { return talesOfLimitations() }

func talesOfLimitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: talesOfMinLen, MaxLength: talesOfMaxLen, MinDisplacement: talesOfMinDisp, MaxDisplacement: talesOfMaxDisp}}
}

func (TalesOf01) Options() lzcore.FindOptions { return lzcore.FindOptions{} }
func (TalesOf03) Options() lzcore.FindOptions { return lzcore.FindOptions{} }

func (TalesOf01) Encode([]byte, io.Writer) error {
	return lzcore.NewError(lzcore.UnsupportedOperation, "TalesOf01 encoding is not supported")
}

func (TalesOf03) Encode([]byte, io.Writer) error {
	return lzcore.NewError(lzcore.UnsupportedOperation, "TalesOf03 encoding is not supported")
}

func (TalesOf01) Decode(r io.Reader, w io.Writer) error {
	return classicDecodePB(r, w, talesOf01Type, false, classic2ByteCodec{lengthBase: talesOfMinLen, dispBase: talesOfMinDisp}, talesOfPreBuffer(talesOf01PreBufferSize))
}

func (TalesOf03) Decode(r io.Reader, w io.Writer) error {
	return classicDecodePB(r, w, talesOf03Type, false, classic2ByteCodec{lengthBase: talesOfMinLen, dispBase: talesOfMinDisp}, talesOfPreBuffer(talesOf03PreBufferSize))
}
