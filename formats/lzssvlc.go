// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/bitio"
	"github.com/retrocodec/lzcore/matchfind"
	"github.com/retrocodec/lzcore/parser"
)

const (
	lzssVlcType     = 0x7C
	lzssVlcMinLen   = 4
	lzssVlcMinDisp  = 1
)

// gammaEncode writes n (n >= 1) as an Elias-gamma code: (bitLength(n)-1)
// zero bits, then n's own binary representation.
func gammaEncode(w *bitio.Writer, n int) error {
	bits := bitLength(n)
	for i := 0; i < bits-1; i++ {
		if err := w.WriteBit(false); err != nil {
			return err
		}
	}
	return w.WriteBits(uint32(n), bits)
}

// gammaDecode reads one Elias-gamma-coded value.
func gammaDecode(r *bitio.Reader) (int, error) {
	zeros := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			break
		}
		zeros++
	}
	if zeros == 0 {
		return 1, nil
	}
	rest, err := r.ReadBits(zeros)
	if err != nil {
		return 0, err
	}
	return (1 << uint(zeros)) | int(rest), nil
}

func bitLength(n int) int {
	bits := 0
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	return bits
}

// lzssVlcPrice approximates each token's true gamma-coded bit cost so the
// parser's cost comparisons track the actual encoded size.
type lzssVlcPrice struct{}

func (lzssVlcPrice) LiteralPrice(byte) int { return 9 }
func (lzssVlcPrice) MatchPrice(m lzcore.Match) int {
	lengthCost := 2*bitLength(m.Length-lzssVlcMinLen+1) - 1
	dispCost := 2*bitLength(m.Displacement-lzssVlcMinDisp+1) - 1
	return 1 + lengthCost + dispCost
}

// LzssVlc is an LZSS variant with no fixed upper bound on match length or
// displacement: both fields are Elias-gamma coded rather than packed into
// fixed-width nibbles.
type LzssVlc struct{}

func (LzssVlc) Name() string                 { return "LzssVlc" }
func (LzssVlc) CanEncode() bool               { return true }
func (LzssVlc) Price() lzcore.PriceCalculator { return lzssVlcPrice{} }

func (LzssVlc) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: lzssVlcMinLen, MaxLength: lzcore.Unbounded, MinDisplacement: lzssVlcMinDisp, MaxDisplacement: lzcore.Unbounded}}
}

func (LzssVlc) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit1}
}

func (f LzssVlc) Encode(input []byte, w io.Writer) error {
	limits := f.Limitations()
	opts := f.Options()
	fdr := matchfind.New(input, limits, opts)
	tokens := parser.Parse(input, 1, fdr.Candidates, f.Price(), 0)

	if err := writeClassicHeader(w, lzssVlcType, len(input)); err != nil {
		return err
	}

	bw := bitio.NewWriter(w, bitio.Config{BitOrder: bitio.MSBFirst, ByteOrder: bitio.LittleEndian})
	for _, tok := range tokens {
		if tok.IsMatch {
			if err := bw.WriteBit(true); err != nil {
				return err
			}
			if err := gammaEncode(bw, tok.Match.Length-lzssVlcMinLen+1); err != nil {
				return err
			}
			if err := gammaEncode(bw, tok.Match.Displacement-lzssVlcMinDisp+1); err != nil {
				return err
			}
			continue
		}
		if err := bw.WriteBit(false); err != nil {
			return err
		}
		if err := bw.WriteBits(uint32(tok.Literal.Value), 8); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (LzssVlc) Decode(r io.Reader, w io.Writer) error {
	size, err := readClassicHeader(r, lzssVlcType)
	if err != nil {
		return err
	}

	br := bitio.NewReader(r, bitio.Config{BitOrder: bitio.MSBFirst, ByteOrder: bitio.LittleEndian})
	out := make([]byte, 0, size)
	for len(out) < size {
		isMatch, err := br.ReadBit()
		if err != nil {
			return lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		if !isMatch {
			v, err := br.ReadBits(8)
			if err != nil {
				return lzcore.WrapError(lzcore.TruncatedInput, err)
			}
			out = append(out, byte(v))
			continue
		}

		lc, err := gammaDecode(br)
		if err != nil {
			return lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		dc, err := gammaDecode(br)
		if err != nil {
			return lzcore.WrapError(lzcore.TruncatedInput, err)
		}
		length := lc + lzssVlcMinLen - 1
		disp := dc + lzssVlcMinDisp - 1

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
