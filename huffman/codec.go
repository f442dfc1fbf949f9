// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package huffman

import (
	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/bitio"
)

// EncodeSymbol writes one symbol's code to w per cb.
func EncodeSymbol(w *bitio.Writer, cb Codebook, symbol byte) error {
	c, ok := cb[symbol]
	if !ok {
		return lzcore.NewError(lzcore.MalformedToken, "huffman: symbol not in codebook")
	}
	return w.WriteBits(c.Bits, c.Len)
}

// Encode writes every byte of data to w using cb, in order.
func Encode(w *bitio.Writer, cb Codebook, data []byte) error {
	for _, b := range data {
		if err := EncodeSymbol(w, cb, b); err != nil {
			return err
		}
	}
	return nil
}

// decodeNode is one trie node used for bit-at-a-time decoding.
type decodeNode struct {
	children [2]int32 // -1 if absent
	isLeaf   bool
	symbol   byte
}

// Decoder decodes a bitstream produced with a matching Codebook by walking
// a binary trie one bit at a time from the root.
type Decoder struct {
	nodes []decodeNode
	root  int32
}

// NewDecoder builds a decode trie from cb. The codebook must describe a
// valid prefix code (as produced by CodesFromTree or Canonicalize); an
// ambiguous or incomplete codebook yields undefined decode results.
func NewDecoder(cb Codebook) *Decoder {
	d := &Decoder{}
	d.root = d.newNode()
	for symbol, c := range cb {
		cur := d.root
		for i := c.Len - 1; i >= 0; i-- {
			bit := (c.Bits >> uint(i)) & 1
			next := d.nodes[cur].children[bit]
			if next == -1 {
				next = d.newNode()
				d.nodes[cur].children[bit] = next
			}
			cur = next
		}
		d.nodes[cur].isLeaf = true
		d.nodes[cur].symbol = symbol
	}
	return d
}

func (d *Decoder) newNode() int32 {
	idx := int32(len(d.nodes))
	d.nodes = append(d.nodes, decodeNode{children: [2]int32{-1, -1}})
	return idx
}

// DecodeSymbol reads bits from r until a leaf is reached and returns its
// symbol.
func (d *Decoder) DecodeSymbol(r *bitio.Reader) (byte, error) {
	cur := d.root
	if len(d.nodes) == 0 {
		return 0, lzcore.NewError(lzcore.MalformedToken, "huffman: empty codebook")
	}
	for !d.nodes[cur].isLeaf {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		idx := 0
		if bit {
			idx = 1
		}
		next := d.nodes[cur].children[idx]
		if next == -1 {
			return 0, lzcore.NewError(lzcore.MalformedToken, "huffman: bitstream does not match codebook")
		}
		cur = next
	}
	return d.nodes[cur].symbol, nil
}

// Decode reads exactly count symbols from r using d.
func Decode(r *bitio.Reader, d *Decoder, count int) ([]byte, error) {
	out := make([]byte, 0, count)
	for i := 0; i < count; i++ {
		b, err := d.DecodeSymbol(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
