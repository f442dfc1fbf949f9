// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package parser

import (
	"math"

	"github.com/retrocodec/lzcore"
)

// CandidatesFunc returns every legal Match anchored at the given unit
// position, typically matchfind.Finder.Candidates.
type CandidatesFunc func(unitPos int) []lzcore.Match

// edge is one relaxed incoming edge at a DP state.
type edge struct {
	fromPos  int
	fromSkip int
	isMatch  bool
	match    lzcore.Match
	litByte  byte
}

// state is one (position, skip-remaining) DP cell.
type state struct {
	cost int
	has  edge
	set  bool
}

// Parse computes the minimum-price token sequence covering input (addressed
// in units of unitSize bytes), using candidatesAt to enumerate legal match
// edges at each position and price to cost both literal and match edges.
// skipUnits is the format's SkipUnitsAfterMatch: after a match of any
// length, the next skipUnits positions may not start a new match (only
// literal edges are relaxed from them in the forward DP pass).
//
// Ties are broken in favor of the longer match (fewer tokens), then the
// smaller displacement.
func Parse(input []byte, unitSize int, candidatesAt CandidatesFunc, price lzcore.PriceCalculator, skipUnits int) []lzcore.Token {
	if unitSize <= 0 {
		unitSize = 1
	}
	totalUnits := len(input) / unitSize

	// dp[pos][skip] holds the best state reaching unit position pos with
	// `skip` post-match positions still blocked from starting a new match.
	dp := make([][]state, totalUnits+1)
	for i := range dp {
		dp[i] = make([]state, skipUnits+1)
		for s := range dp[i] {
			dp[i][s].cost = math.MaxInt
		}
	}
	dp[0][0] = state{cost: 0, set: true}

	for pos := 0; pos <= totalUnits; pos++ {
		for s := 0; s <= skipUnits; s++ {
			cur := dp[pos][s]
			if !cur.set || cur.cost == math.MaxInt {
				continue
			}

			// Literal edge: always legal, decrements any remaining skip.
			if pos < totalUnits {
				litByte := input[pos*unitSize]
				cost := cur.cost + price.LiteralPrice(litByte)
				nextSkip := s - 1
				if nextSkip < 0 {
					nextSkip = 0
				}
				e := edge{fromPos: pos, fromSkip: s, isMatch: false, litByte: litByte}
				tryRelax(&dp[pos+1][nextSkip], cost, e)
			}

			// Match edges: only legal while not within a post-match skip window.
			if s == 0 {
				for _, m := range candidatesAt(pos) {
					if m.Length <= 0 || pos+m.Length > totalUnits {
						continue
					}
					cost := cur.cost + price.MatchPrice(m)
					e := edge{fromPos: pos, fromSkip: s, isMatch: true, match: m}
					tryRelax(&dp[pos+m.Length][skipUnits], cost, e)
				}
			}
		}
	}

	return reconstruct(dp, totalUnits, skipUnits)
}

// tryRelax updates cell if cost is strictly better, or ties and the new
// edge is a match that wins the tie-break over the existing one.
func tryRelax(cell *state, cost int, e edge) {
	if !cell.set || cost < cell.cost {
		cell.cost = cost
		cell.has = e
		cell.set = true
		return
	}
	if cost == cell.cost && e.isMatch && cell.has.isMatch && betterTieBreak(e.match, cell.has.match) {
		cell.has = e
	}
}

// betterTieBreak reports whether candidate beats incumbent under equal
// cost: prefer longer length, then smaller displacement.
func betterTieBreak(candidate, incumbent lzcore.Match) bool {
	if candidate.Length != incumbent.Length {
		return candidate.Length > incumbent.Length
	}
	return candidate.Displacement < incumbent.Displacement
}

// reconstruct walks the best-cost terminal state back to the start,
// reversing the edge list into an ordered token sequence.
func reconstruct(dp [][]state, totalUnits, skipUnits int) []lzcore.Token {
	// The parse must end with no outstanding skip obligation beyond the
	// input boundary; any skip state at totalUnits that was actually reached
	// is valid since skip only restricts future match starts.
	bestSkip := -1
	bestCost := math.MaxInt
	for s := 0; s <= skipUnits; s++ {
		if dp[totalUnits][s].set && dp[totalUnits][s].cost < bestCost {
			bestCost = dp[totalUnits][s].cost
			bestSkip = s
		}
	}
	if bestSkip < 0 {
		return nil
	}

	var tokens []lzcore.Token
	pos, s := totalUnits, bestSkip
	for pos > 0 {
		cell := dp[pos][s]
		e := cell.has
		if e.isMatch {
			tokens = append(tokens, lzcore.Token{IsMatch: true, Match: e.match})
		} else {
			tokens = append(tokens, lzcore.Token{IsMatch: false, Literal: lzcore.Literal{Position: e.fromPos, Value: e.litByte}})
		}
		pos, s = e.fromPos, e.fromSkip
	}

	// Reverse into forward order.
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return tokens
}
