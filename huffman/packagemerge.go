// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package huffman

import "sort"

// LimitLengths re-derives code lengths for the given symbol frequencies so
// that no length exceeds maxBits, using the package-merge (coin collector)
// algorithm. It returns minimum weighted path length under that cap while
// preserving the prefix property; symbols absent from freq keep length 0.
//
// maxBits must be large enough that 2^maxBits >= the number of distinct
// symbols, or the Kraft inequality cannot be satisfied; callers with a
// fixed-width format table (e.g. a 4-bit depth cap) are expected to have
// validated their alphabet size ahead of time.
func LimitLengths(freq [256]int, maxBits int) [256]int {
	var out [256]int

	type item struct {
		symbol int
		weight int
	}
	var items []item
	for sym := 0; sym < 256; sym++ {
		if freq[sym] > 0 {
			items = append(items, item{symbol: sym, weight: freq[sym]})
		}
	}
	n := len(items)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[items[0].symbol] = 1
		return out
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].weight < items[j].weight })

	// A package is a merged group of original leaves, carrying the summed
	// weight and the set of leaf indices (into items) it covers.
	type pkg struct {
		weight  int
		indices []int
	}

	base := make([]pkg, n)
	for i, it := range items {
		base[i] = pkg{weight: it.weight, indices: []int{i}}
	}

	level := base
	var finalLevel []pkg
	for d := 1; d <= maxBits; d++ {
		finalLevel = level
		if d == maxBits {
			break
		}

		var merged []pkg
		for i := 0; i+1 < len(level); i += 2 {
			merged = append(merged, pkg{
				weight:  level[i].weight + level[i+1].weight,
				indices: append(append([]int{}, level[i].indices...), level[i+1].indices...),
			})
		}

		combined := make([]pkg, 0, len(merged)+n)
		combined = append(combined, merged...)
		combined = append(combined, base...)
		sort.SliceStable(combined, func(i, j int) bool { return combined[i].weight < combined[j].weight })
		level = combined
	}

	take := 2 * (n - 1)
	if take > len(finalLevel) {
		take = len(finalLevel)
	}

	counts := make([]int, n)
	for _, p := range finalLevel[:take] {
		for _, idx := range p.indices {
			counts[idx]++
		}
	}

	for i, it := range items {
		length := counts[i]
		if length == 0 {
			length = 1
		}
		out[it.symbol] = length
	}
	return out
}
