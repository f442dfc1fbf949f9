// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/matchfind"
	"github.com/retrocodec/lzcore/parser"
)

// classicEncode runs match-finding and optimal parsing over input, then
// writes a 4-byte Nintendo container header followed by the flag-block
// body, shared by every classic-LZ format adapter.
func classicEncode(input []byte, w io.Writer, headerType byte, limits []lzcore.FindLimitations, opts lzcore.FindOptions, price lzcore.PriceCalculator, skip int, codec lenDispCodec) error {
	body := input
	if opts.Direction == lzcore.Backward {
		body = reversed(input)
	}

	f := matchfind.New(body, limits, opts)
	tokens := parser.Parse(body, 1, f.Candidates, price, skip)

	if err := writeClassicHeader(w, headerType, len(input)); err != nil {
		return err
	}
	_, err := w.Write(encodeFlagBlocks(tokens, codec))
	return err
}

// classicDecode reverses classicEncode, validating the container type byte
// and decoding exactly the declared number of bytes.
func classicDecode(r io.Reader, w io.Writer, headerType byte, backward bool, codec lenDispCodec) error {
	return classicDecodePB(r, w, headerType, backward, codec, nil)
}

// classicDecodePB is classicDecode for formats with a virtual pre-buffer.
func classicDecodePB(r io.Reader, w io.Writer, headerType byte, backward bool, codec lenDispCodec, preBuffer []byte) error {
	size, err := readClassicHeader(r, headerType)
	if err != nil {
		return err
	}
	out, err := decodeFlagBlocks(r, codec, size, preBuffer)
	if err != nil {
		return err
	}
	if backward {
		out = reversed(out)
	}
	_, err = w.Write(out)
	return err
}
