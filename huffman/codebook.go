// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package huffman

import "sort"

// Code is one symbol's bit pattern, MSB-first within Len bits.
type Code struct {
	Bits uint32
	Len  int
}

// Codebook maps byte symbols to their assigned Code.
type Codebook map[byte]Code

// CodesFromTree walks t and assigns each leaf the bit path from the root
// (left=0, right=1). Two trees with identical shape always produce
// identical codes, but the mapping is not canonical-sorted.
func CodesFromTree(t *Tree) Codebook {
	cb := make(Codebook)
	if len(t.nodes) == 0 {
		return cb
	}
	var walk func(idx int, bits uint32, depth int)
	walk = func(idx int, bits uint32, depth int) {
		if t.isLeaf(idx) {
			if depth == 0 {
				depth = 1
			}
			cb[byte(t.nodes[idx].Symbol)] = Code{Bits: bits, Len: depth}
			return
		}
		walk(t.nodes[idx].Left, bits<<1, depth+1)
		walk(t.nodes[idx].Right, bits<<1|1, depth+1)
	}
	walk(t.Root, 0, 0)
	return cb
}

// Canonicalize assigns canonical Huffman codes from a set of code lengths
// (as produced by Tree.CodeLengths or LimitLengths): symbols are ordered by
// (length, symbol value) ascending, and each next code is the previous
// code plus one, shifted to the new length.
func Canonicalize(lengths [256]int) Codebook {
	cb := make(Codebook)

	type entry struct {
		symbol int
		length int
	}
	var entries []entry
	for sym, l := range lengths {
		if l > 0 {
			entries = append(entries, entry{symbol: sym, length: l})
		}
	}
	if len(entries) == 0 {
		return cb
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].symbol < entries[j].symbol
	})

	code := 0
	prevLen := entries[0].length
	for _, e := range entries {
		code <<= uint(e.length - prevLen)
		cb[byte(e.symbol)] = Code{Bits: uint32(code), Len: e.length}
		code++
		prevLen = e.length
	}
	return cb
}
