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

const (
	wp16Type = 0x16

	// Limits are expressed in 2-byte units: length [2, 0x21] units (4-0x42
	// bytes), displacement [1, 0x7FF] units (2-0xFFE bytes).
	wp16MinLenUnits, wp16MaxLenUnits   = 2, 0x21
	wp16MinDispUnits, wp16MaxDispUnits = 1, 0x7FF
)

// wp16Codec packs a 5-bit length-in-units field and an 11-bit
// displacement-in-units field into 2 bytes, converting from the byte-level
// lengths/displacements the shared flag-block framing deals in.
type wp16Codec struct{}

func (wp16Codec) encodeMatch(lengthBytes, dispBytes int) []byte {
	lu := lengthBytes/2 - wp16MinLenUnits
	du := dispBytes/2 - wp16MinDispUnits
	return []byte{byte(lu<<3) | byte(du>>8), byte(du)}
}

func (wp16Codec) decodeMatch(br io.ByteReader) (int, int, error) {
	b0, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	b1, err := br.ReadByte()
	if err != nil {
		return 0, 0, lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	lu := int(b0>>3) + wp16MinLenUnits
	du := (int(b0&0x7)<<8 | int(b1)) + wp16MinDispUnits
	return lu * 2, du * 2, nil
}

// wp16ByteCandidates adapts a unit-addressed matchfind.Finder into a
// byte-addressed parser.CandidatesFunc: odd byte positions never start a
// match (WP16 requires unit-aligned matches), and legal matches are
// reported back in bytes so literal tokens keep full per-byte fidelity.
func wp16ByteCandidates(f *matchfind.Finder) parser.CandidatesFunc {
	return func(bytePos int) []lzcore.Match {
		if bytePos%2 != 0 {
			return nil
		}
		unitMatches := f.Candidates(bytePos / 2)
		out := make([]lzcore.Match, len(unitMatches))
		for i, m := range unitMatches {
			out[i] = lzcore.Match{Position: bytePos, Displacement: m.Displacement * 2, Length: m.Length * 2}
		}
		return out
	}
}

// WP16 addresses its back-references in 2-byte units: every legal match
// has even length and even displacement.
type WP16 struct{}

func (WP16) Name() string                 { return "WP16" }
func (WP16) CanEncode() bool               { return true }
func (WP16) Price() lzcore.PriceCalculator { return flatTokenPrice{literalBits: 9, matchBits: 17} }

func (WP16) Limitations() []lzcore.FindLimitations {
	return []lzcore.FindLimitations{{MinLength: wp16MinLenUnits, MaxLength: wp16MaxLenUnits, MinDisplacement: wp16MinDispUnits, MaxDisplacement: wp16MaxDispUnits}}
}

func (WP16) Options() lzcore.FindOptions {
	return lzcore.FindOptions{Direction: lzcore.Forward, UnitSize: lzcore.Unit2}
}

func (f WP16) Encode(input []byte, w io.Writer) error {
	fdr := matchfind.New(input, f.Limitations(), f.Options())
	tokens := parser.Parse(input, 1, wp16ByteCandidates(fdr), f.Price(), 0)

	if err := writeClassicHeader(w, wp16Type, len(input)); err != nil {
		return err
	}
	_, err := w.Write(encodeFlagBlocks(tokens, wp16Codec{}))
	return err
}

func (WP16) Decode(r io.Reader, w io.Writer) error {
	return classicDecode(r, w, wp16Type, false, wp16Codec{})
}
