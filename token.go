// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package lzcore

import "math"

// Unbounded is the FindLimitations sentinel for "no upper bound". It is
// normalized internally to math.MaxInt so comparisons never special-case -1.
const Unbounded = -1

// normalize turns the Unbounded sentinel into math.MaxInt; any other
// non-negative value passes through unchanged.
func normalize(v int) int {
	if v == Unbounded {
		return math.MaxInt
	}
	return v
}

// Match is a back-reference token: position is the absolute input offset
// (in UnitSize units) at which the match begins; displacement is units from
// position back to the copy source (backward parses use forward
// displacement from the tail); length is the copied unit count.
type Match struct {
	Position     int
	Displacement int
	Length       int
}

// Literal is a single untokenized unit at Position.
type Literal struct {
	Position int
	Value    byte
}

// FindLimitations constrains legal matches. MinLength/MaxLength and
// MinDisplacement/MaxDisplacement may be Unbounded (-1), meaning no bound.
// A candidate match is legal iff it satisfies at least one installed
// FindLimitations.
type FindLimitations struct {
	MinLength       int
	MaxLength       int
	MinDisplacement int
	MaxDisplacement int
}

// Normalized returns a copy with Unbounded fields resolved to math.MaxInt.
func (f FindLimitations) Normalized() FindLimitations {
	return FindLimitations{
		MinLength:       max(f.MinLength, 0),
		MaxLength:       normalize(f.MaxLength),
		MinDisplacement: max(f.MinDisplacement, 0),
		MaxDisplacement: normalize(f.MaxDisplacement),
	}
}

// Allows reports whether a match of the given length/displacement satisfies
// this (already-normalized) limitation.
func (f FindLimitations) Allows(length, displacement int) bool {
	return length >= f.MinLength && length <= f.MaxLength &&
		displacement >= f.MinDisplacement && displacement <= f.MaxDisplacement
}

// PriceCalculator supplies integer bit-costs to the optimal parser.
type PriceCalculator interface {
	LiteralPrice(b byte) int
	MatchPrice(m Match) int
}

// Token is one emitted unit of a parse: either a Literal or a Match.
type Token struct {
	IsMatch bool
	Literal Literal
	Match   Match
}

// Coverage returns the number of input units this token covers.
func (t Token) Coverage() int {
	if t.IsMatch {
		return t.Match.Length
	}
	return 1
}
