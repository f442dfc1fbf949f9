// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package huffman

import "container/heap"

// node is one arena-addressed tree node: a leaf carries Symbol/Freq, an
// internal node carries Left/Right arena indices (-1 for leaves).
type node struct {
	Freq   int
	Symbol int // valid only when Left < 0 && Right < 0
	Left   int
	Right  int
	seq    int // insertion order, for stable tie-breaking
}

// Tree is an arena of nodes; Root indexes the tree's root node.
type Tree struct {
	nodes []node
	Root  int
}

func (t *Tree) isLeaf(i int) bool { return t.nodes[i].Left < 0 && t.nodes[i].Right < 0 }

// heapItem is a min-heap element referencing an arena index.
type heapItem struct {
	idx  int
	freq int
	seq  int
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq // stable: earliest-formed wins ties
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(heapItem)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Build constructs a Huffman tree from 256 symbol frequencies. Symbols with
// zero frequency are excluded from the alphabet. A single-distinct-symbol
// input synthesizes a zero-frequency sibling so the resulting code length is
// always >= 1.
func Build(freq [256]int) *Tree {
	t := &Tree{}
	seq := 0

	var h nodeHeap
	for sym := 0; sym < 256; sym++ {
		if freq[sym] <= 0 {
			continue
		}
		idx := len(t.nodes)
		t.nodes = append(t.nodes, node{Freq: freq[sym], Symbol: sym, Left: -1, Right: -1, seq: seq})
		h = append(h, heapItem{idx: idx, freq: freq[sym], seq: seq})
		seq++
	}

	if len(h) == 0 {
		return t
	}

	if len(h) == 1 {
		only := h[0]
		sibling := -1
		for sym := 0; sym < 256; sym++ {
			if sym != t.nodes[only.idx].Symbol {
				sibling = sym
				break
			}
		}
		sibIdx := len(t.nodes)
		t.nodes = append(t.nodes, node{Freq: 0, Symbol: sibling, Left: -1, Right: -1, seq: seq})
		seq++

		rootIdx := len(t.nodes)
		t.nodes = append(t.nodes, node{Freq: t.nodes[only.idx].Freq, Left: only.idx, Right: sibIdx, seq: seq})
		t.Root = rootIdx
		return t
	}

	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		idx := len(t.nodes)
		t.nodes = append(t.nodes, node{Freq: a.freq + b.freq, Left: a.idx, Right: b.idx, seq: seq})
		heap.Push(&h, heapItem{idx: idx, freq: a.freq + b.freq, seq: seq})
		seq++
	}

	t.Root = heap.Pop(&h).(heapItem).idx
	return t
}

// CodeLengths returns the depth of each symbol's leaf (0 for absent symbols).
func (t *Tree) CodeLengths() [256]int {
	var lengths [256]int
	if len(t.nodes) == 0 {
		return lengths
	}
	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		if t.isLeaf(idx) {
			if depth == 0 {
				depth = 1
			}
			lengths[t.nodes[idx].Symbol] = depth
			return
		}
		walk(t.nodes[idx].Left, depth+1)
		walk(t.nodes[idx].Right, depth+1)
	}
	walk(t.Root, 0)
	return lengths
}
