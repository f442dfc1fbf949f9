// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package lzcore implements the shared engine behind a family of lossless
compression codecs for legacy console and proprietary byte-stream
formats (Nintendo LZ10/LZ11/LZ40/LZ60, LZSS variants, MIO0/YAY0/YAZ0,
Nintendo Huffman, Nintendo RLE, Taiko LZ80/81, WP16, LzEcd, Lze, LzEnc,
TalesOf01/03, BackwardLZ77).

The engine is three pieces: a generic LZ match finder
(github.com/retrocodec/lzcore/matchfind), a shortest-path optimal
parser (github.com/retrocodec/lzcore/parser), and a Huffman tree/codec
(github.com/retrocodec/lzcore/huffman), all built on configurable
bit/byte I/O (github.com/retrocodec/lzcore/bitio) and a bounded
sub-stream view (github.com/retrocodec/lzcore/substream). Per-format
codecs live in github.com/retrocodec/lzcore/formats as thin adapters
that express format-specific token layouts, headers and price
functions on top of these primitives; the core never interprets a
format's token bit layout.

# Encoding

	f := formats.LZ10{}
	var buf bytes.Buffer
	err := f.Encode(data, &buf)

# Decoding

	var out bytes.Buffer
	err := f.Decode(bytes.NewReader(buf.Bytes()), &out)
*/
package lzcore
