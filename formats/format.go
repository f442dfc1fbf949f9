// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"io"

	"github.com/retrocodec/lzcore"
)

// Format is the adapter contract every codec in this package implements.
type Format interface {
	Name() string
	CanEncode() bool
	Decode(r io.Reader, w io.Writer) error
	Encode(input []byte, w io.Writer) error
	Limitations() []lzcore.FindLimitations
	Options() lzcore.FindOptions
	Price() lzcore.PriceCalculator
}

// flatTokenPrice is the default price function: a fixed number of bits per
// literal and a fixed number per match, regardless of the match's length or
// displacement (typically 1 flag bit plus the token's payload size).
type flatTokenPrice struct {
	literalBits int
	matchBits   int
}

func (p flatTokenPrice) LiteralPrice(byte) int       { return p.literalBits }
func (p flatTokenPrice) MatchPrice(lzcore.Match) int { return p.matchBits }

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
