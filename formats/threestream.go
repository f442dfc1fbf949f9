// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"encoding/binary"
	"io"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/matchfind"
	"github.com/retrocodec/lzcore/parser"
)

// threeStreamParams configures the MIO0/YAY0 container shape: a 16-byte
// header (4-byte magic, LE decompressed size, LE layout-stream offset, LE
// literal-stream offset) followed by a flag bitstream, a 2-byte-per-match
// layout stream, and a literal byte stream, all starting at fixed offsets.
// extendedLen, when true, lets a match's stored 4-bit length field of 0
// signal "read one more byte from the literal stream and add 0x12" to
// reach lengths beyond 18.
type threeStreamParams struct {
	magic       [4]byte
	minLen      int
	maxLen      int
	minDisp     int
	maxDisp     int
	extendedLen bool
}

func (p threeStreamParams) limits() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: p.minLen, MaxLength: p.maxLen, MinDisplacement: p.minDisp, MaxDisplacement: p.maxDisp}}
}

func threeStreamEncode(input []byte, w io.Writer, p threeStreamParams) error {
	opts := lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
	f := matchfind.New(input, p.limits(), opts)
	price := flatTokenPrice{literalBits: 9, matchBits: 17}
	tokens := parser.Parse(input, 1, f.Candidates, price, 0)

	var flagBits []bool
	var layout []byte
	var literals []byte

	for _, tok := range tokens {
		if !tok.IsMatch {
			flagBits = append(flagBits, true)
			literals = append(literals, tok.Literal.Value)
			continue
		}
		flagBits = append(flagBits, false)
		length := tok.Match.Length
		disp := tok.Match.Displacement - p.minDisp

		if p.extendedLen && length > 0x11 {
			layout = append(layout, byte(disp>>8), byte(disp))
			literals = append(literals, byte(length-0x12))
			continue
		}
		if p.extendedLen {
			layout = append(layout, byte((length-2)<<4)|byte(disp>>8), byte(disp))
			continue
		}
		layout = append(layout, byte((length-3)<<4)|byte(disp>>8), byte(disp))
	}

	flagBytes := packFlagBits(flagBits)

	header := make([]byte, 16)
	copy(header[0:4], p.magic[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(input)))
	layoutOffset := 16 + len(flagBytes)
	binary.LittleEndian.PutUint32(header[8:12], uint32(layoutOffset))
	binary.LittleEndian.PutUint32(header[12:16], uint32(layoutOffset+len(layout)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(flagBytes); err != nil {
		return err
	}
	if _, err := w.Write(layout); err != nil {
		return err
	}
	_, err := w.Write(literals)
	return err
}

func threeStreamDecode(r io.Reader, w io.Writer, p threeStreamParams) error {
	all, err := io.ReadAll(r)
	if err != nil {
		return lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	if len(all) < 16 || string(all[0:4]) != string(p.magic[:]) {
		return lzcore.NewError(lzcore.MalformedToken, "unexpected container magic")
	}

	size := int(binary.LittleEndian.Uint32(all[4:8]))
	layoutOff := int(binary.LittleEndian.Uint32(all[8:12]))
	literalOff := int(binary.LittleEndian.Uint32(all[12:16]))

	flagBytes := all[16:layoutOff]
	layout := all[layoutOff:literalOff]
	literals := all[literalOff:]

	out := make([]byte, 0, size)
	layoutPos, literalPos, bit := 0, 0, 0

	for len(out) < size {
		if bit/8 >= len(flagBytes) {
			return lzcore.NewError(lzcore.TruncatedInput, "flag stream exhausted before decompressed size reached")
		}
		flagByte := flagBytes[bit/8]
		isLiteral := flagByte&(1<<(7-uint(bit%8))) != 0
		bit++

		if isLiteral {
			if literalPos >= len(literals) {
				return lzcore.NewError(lzcore.TruncatedInput, "literal stream exhausted")
			}
			out = append(out, literals[literalPos])
			literalPos++
			continue
		}

		if layoutPos+2 > len(layout) {
			return lzcore.NewError(lzcore.TruncatedInput, "layout stream exhausted")
		}
		b0, b1 := layout[layoutPos], layout[layoutPos+1]
		layoutPos += 2
		nib := int(b0 >> 4)
		disp := (int(b0&0xF)<<8 | int(b1)) + p.minDisp

		var length int
		switch {
		case p.extendedLen && nib == 0:
			if literalPos >= len(literals) {
				return lzcore.NewError(lzcore.TruncatedInput, "extended-length byte missing")
			}
			length = int(literals[literalPos]) + 0x12
			literalPos++
		case p.extendedLen:
			length = nib + 2
		default:
			length = nib + 3
		}

		pos := len(out)
		out = append(out, make([]byte, length)...)
		if err := copyBackRef(out, pos, disp, length); err != nil {
			return err
		}
		if len(out) > size {
			out = out[:size]
		}
	}

	_, err = w.Write(out)
	return err
}

func packFlagBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return out
}
