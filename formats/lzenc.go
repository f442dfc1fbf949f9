// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	lzEncType                  = 0x4C
	lzEncMinLen, lzEncMaxLen   = 3, 0x12
	lzEncMinDisp, lzEncMaxDisp = 1, 0x1000
)

// LzEnc is decode-only: its source carries no encoder, so Encode reports
// UnsupportedOperation rather than guessing at an encoding strategy.
type LzEnc struct{}

func (LzEnc) Name() string    { return "LzEnc" }
func (LzEnc) CanEncode() bool { return false }

func (LzEnc) Price() lzcore.PriceCalculator { return flatTokenPrice{} }
func (LzEnc) Options() lzcore.FindOptions   { return lzcore.FindOptions{} }

func (LzEnc) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lzEncMinLen, MaxLength: lzEncMaxLen, MinDisplacement: lzEncMinDisp, MaxDisplacement: lzEncMaxDisp}}
}

func (LzEnc) Encode([]byte, io.Writer) error {
	return lzcore.NewError(lzcore.UnsupportedOperation, "LzEnc encoding is not supported")
}

func (LzEnc) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, lzEncType, false, classic2ByteCodec{lengthBase: lzEncMinLen, dispBase: lzEncMinDisp})
}
