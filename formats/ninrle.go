// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

const (
	ninRleType = 0x30

	ninRleMinCompressedLen, ninRleMaxCompressedLen = 3, 0x82
	ninRleMaxRawLen                                = 0x80
)

// NinRLE is Nintendo's byte-oriented run-length codec: each block is a
// control byte followed by either a repeated byte (compressed run, top bit
// set) or that many raw bytes (top bit clear).
type NinRLE struct{}

func (NinRLE) Name() string    { return "NinRLE" }
func (NinRLE) CanEncode() bool { return true }

// No LZ match is ever proposed; runs are found by direct byte scanning.
func (NinRLE) Limitations() []lzcore.FindLimitations { return nil }
func (NinRLE) Options() lzcore.FindOptions           { return lzcore.FindOptions{} }
func (NinRLE) Price() lzcore.PriceCalculator          { return flatTokenPrice{} }

func (NinRLE) Encode(input []byte, w io.Writer) error {
	if err := writeClassicHeader(w, ninRleType, len(input)); err != nil {
		return err
	}

	var out []byte
	i := 0
	for i < len(input) {
		runLen := 1
		for i+runLen < len(input) && input[i+runLen] == input[i] && runLen < ninRleMaxCompressedLen {
			runLen++
		}

		if runLen >= ninRleMinCompressedLen {
			out = append(out, 0x80|byte(runLen-ninRleMinCompressedLen), input[i])
			i += runLen
			continue
		}

		// Raw block: accumulate bytes until a compressible run appears or
		// the raw block length cap is reached.
		start := i
		for i < len(input) && i-start < ninRleMaxRawLen {
			next := 1
			for i+next < len(input) && input[i+next] == input[i] && next < ninRleMinCompressedLen {
				next++
			}
			if next >= ninRleMinCompressedLen {
				break
			}
			i++
		}
		rawLen := i - start
		out = append(out, byte(rawLen-1))
		out = append(out, input[start:i]...)
	}

	_, err := w.Write(out)
	return err
}

func (NinRLE) Decode(r io.Reader, w io.Writer) error {
	size, err := readClassicHeader(r, ninRleType)
	if err != nil {
		return err
	}

	out := make([]byte, 0, size)
	var ctl [1]byte
	for len(out) < size {
		if _, err := io.ReadFull(r, ctl[:]); err != nil {
			return lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		if ctl[0]&0x80 != 0 {
			length := int(ctl[0]&0x7F) + ninRleMinCompressedLen
			var b [1]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return lzcore.WrapError(lzcore.TruncatedInput, err)
			}
			for n := 0; n < length; n++ {
				out = append(out, b[0])
			}
			continue
		}

		length := int(ctl[0]) + 1
		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		out = append(out, buf...)
	}
	if len(out) > size {
		out = out[:size]
	}

	_, err = w.Write(out)
	return err
}
