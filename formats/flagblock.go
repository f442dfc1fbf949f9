// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"bufio"
	"io"

	"github.com/retrocodec/lzcore"
)

// lenDispCodec packs/unpacks one match token's (length, displacement) pair
// into the format's own byte layout. It does not see the flag bit; that is
// framed separately by encodeFlagBlocks/decodeFlagBlocks.
type lenDispCodec interface {
	encodeMatch(length, disp int) []byte
	decodeMatch(br io.ByteReader) (length, disp int, err error)
}

// encodeFlagBlocks is the classic Nintendo LZ body encoding shared by
// LZ10/LZ11/LZ40/LZ60/LZSS/LzEcd/Lze/LZ77/BackwardLZ77/TalesOf: a flag byte
// (MSB first, 1 bit per token, 1=match/0=literal) precedes each run of up
// to 8 tokens.
func encodeFlagBlocks(tokens []lzcore.Token, codec lenDispCodec) []byte {
	var out []byte
	var flag byte
	var n uint
	var body []byte

	flush := func() {
		out = append(out, flag)
		out = append(out, body...)
		flag, n, body = 0, 0, body[:0]
	}

	for _, tok := range tokens {
		if tok.IsMatch {
			flag |= 1 << (7 - n)
			body = append(body, codec.encodeMatch(tok.Match.Length, tok.Match.Displacement)...)
		} else {
			body = append(body, tok.Literal.Value)
		}
		n++
		if n == 8 {
			flush()
		}
	}
	if n > 0 {
		flush()
	}
	return out
}

// decodeFlagBlocks reverses encodeFlagBlocks, writing exactly totalLen
// decoded bytes by resolving match tokens via copyBackRef against the
// output built up so far. preBuffer may be nil for formats with no virtual
// pre-history; otherwise a match whose source precedes position 0 reaches
// into it.
func decodeFlagBlocks(r io.Reader, codec lenDispCodec, totalLen int, preBuffer []byte) ([]byte, error) {
	br := bufio.NewReader(r)
	out := make([]byte, 0, totalLen)

	for len(out) < totalLen {
		flag, err := br.ReadByte()
		if err != nil {
			return nil, lzcore.WrapError(lzcore.TruncatedInput, err)
		}

		for bit := 0; bit < 8 && len(out) < totalLen; bit++ {
			if flag&(1<<(7-bit)) == 0 {
				b, err := br.ReadByte()
				if err != nil {
					return nil, lzcore.WrapError(lzcore.TruncatedInput, err)
				}
				out = append(out, b)
				continue
			}

			length, disp, err := codec.decodeMatch(br)
			if err != nil {
				return nil, err
			}
			pos := len(out)
			out = append(out, make([]byte, length)...)
			if err := copyBackRefPB(out, preBuffer, pos, disp, length); err != nil {
				return nil, err
			}
			if len(out) > totalLen {
				out = out[:totalLen]
			}
		}
	}
	return out, nil
}
