// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

import (
	"fmt"
	"io"

	"github.com/retrocodec/lzcore"
	"github.com/retrocodec/lzcore/bitio"
	"github.com/retrocodec/lzcore/huffman"
)

const (
	ninHuffman4Type = 0x24
	ninHuffman8Type = 0x28
)

// NinHuffman is a Huffman-only container (no LZ matching): a classic
// header, a 256-entry code-length table capped to bitWidth bits, then a
// bitstream of canonical Huffman codes for every input byte. bitWidth must
// be 4 or 8; order selects the bitstream's bit/byte order.
type NinHuffman struct {
	BitWidth int
	Order    bitio.Config
}

func NewNinHuffman4() NinHuffman {
	return NinHuffman{BitWidth: 4, Order: bitio.Config{BitOrder: bitio.MSBFirst, ByteOrder: bitio.LittleEndian}}
}

func NewNinHuffman8() NinHuffman {
	return NinHuffman{BitWidth: 8, Order: bitio.Config{BitOrder: bitio.MSBFirst, ByteOrder: bitio.LittleEndian}}
}

func (h NinHuffman) headerType() byte {
	if h.BitWidth == 4 {
		return ninHuffman4Type
	}
	return ninHuffman8Type
}

func (h NinHuffman) Name() string  { return fmt.Sprintf("NinHuffman%d", h.BitWidth) }
func (NinHuffman) CanEncode() bool { return true }

// Limitations/Options/Price are vestigial for a pure-Huffman format: no LZ
// match is ever proposed, so the parser/matchfind pipeline is not used.
func (NinHuffman) Limitations() []lzcore.FindLimitations { return nil }
func (NinHuffman) Options() lzcore.FindOptions            { return lzcore.FindOptions{} }
func (NinHuffman) Price() lzcore.PriceCalculator          { return flatTokenPrice{} }

func (h NinHuffman) Encode(input []byte, w io.Writer) error {
	var freq [256]int
	distinct := 0
	for _, b := range input {
		if freq[b] == 0 {
			distinct++
		}
		freq[b]++
	}
	if maxSymbols := 1 << h.BitWidth; distinct > maxSymbols {
		return lzcore.NewError(lzcore.HuffmanCapExceeded, fmt.Sprintf("%d distinct byte values exceed the %d-bit table's %d-symbol cap", distinct, h.BitWidth, maxSymbols))
	}
	lengths := huffman.LimitLengths(freq, h.BitWidth)
	cb := huffman.Canonicalize(lengths)

	if err := writeClassicHeader(w, h.headerType(), len(input)); err != nil {
		return err
	}
	var table [256]byte
	for sym, l := range lengths {
		table[sym] = byte(l)
	}
	if _, err := w.Write(table[:]); err != nil {
		return err
	}

	bw := bitio.NewWriter(w, h.Order)
	if err := huffman.Encode(bw, cb, input); err != nil {
		return err
	}
	return bw.Flush()
}

func (h NinHuffman) Decode(r io.Reader, w io.Writer) error {
	size, err := readClassicHeader(r, h.headerType())
	if err != nil {
		return err
	}

	var table [256]byte
	if _, err := io.ReadFull(r, table[:]); err != nil {
		return lzcore.WrapError(lzcore.TruncatedInput, err)
	}
	var lengths [256]int
	for sym, l := range table {
		lengths[sym] = int(l)
	}
	cb := huffman.Canonicalize(lengths)
	dec := huffman.NewDecoder(cb)

	br := bitio.NewReader(r, h.Order)
	out, err := huffman.Decode(br, dec, size)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
