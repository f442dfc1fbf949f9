// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package formats implements the Format adapter contract: one thin file per
wire format, each expressing its own header layout, token bit packing and
price function on top of packages matchfind, parser, huffman and bitio.
The core engine never interprets token bit layouts; every format-specific
constant (length/displacement bounds, pre-buffer contents, skip units)
lives here, named after the per-format constraint table this library
implements.
*/
package formats
