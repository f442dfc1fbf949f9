// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package matchfind

import "github.com/retrocodec/lzcore"

// hashTableBits sizes the hash-chain head table; a fixed power-of-two table
// the way the LZO sliding-window dictionary sizes hashHead3 to swdHashSize.
const hashTableBits = 15
const hashTableSize = 1 << hashTableBits

// maxKeyUnits bounds the hash key to at most this many units, regardless of
// how large a limitation's MinLength is: a shorter key is always safe (just
// less selective), and an overly long key would make short-but-legal
// matches unreachable via the hash chain.
const maxKeyUnits = 4

// Finder enumerates back-reference candidates over data (addressed in
// bytes), for a set of normalized FindLimitations, with an optional virtual
// pre-buffer preceding data.
type Finder struct {
	data     []byte
	unitSize int // bytes per unit: 1 or 2
	limits   []lzcore.FindLimitations
	preBuf   []byte // pre-buffer bytes, logically at byte offsets [-len(preBuf), 0)

	keyUnits int
	maxDisp  int // bytes, largest MaxDisplacement across limitations (post pre-buffer exclusion)

	hashHead  []int32 // unit position + 1, 0 = empty
	chainNext []int32 // previous unit position with the same key, -1 = none
	indexed   int      // number of unit positions already inserted into the chain
}

// New constructs a Finder over data with the given (already-normalized or
// raw) limitations and options. Limitations are normalized internally.
func New(data []byte, limits []lzcore.FindLimitations, opts lzcore.FindOptions) *Finder {
	unitSize := int(opts.UnitSize)
	if unitSize == 0 {
		unitSize = 1
	}

	normalized := make([]lzcore.FindLimitations, len(limits))
	minKey := maxKeyUnits
	maxDisp := 0
	for i, l := range limits {
		n := l.Normalized()
		normalized[i] = n
		if n.MinLength < minKey {
			minKey = n.MinLength
		}
		if n.MaxDisplacement > maxDisp {
			maxDisp = n.MaxDisplacement
		}
	}
	if minKey < 1 {
		minKey = 1
	}
	if minKey > maxKeyUnits {
		minKey = maxKeyUnits
	}

	f := &Finder{
		data:      data,
		unitSize:  unitSize,
		limits:    normalized,
		preBuf:    opts.PreBufferContents,
		keyUnits:  minKey,
		maxDisp:   maxDisp * unitSize,
		hashHead:  make([]int32, hashTableSize),
		chainNext: make([]int32, len(data)/unitSize+1),
	}
	for i := range f.hashHead {
		f.hashHead[i] = 0
	}
	for i := range f.chainNext {
		f.chainNext[i] = -1
	}
	return f
}

func (f *Finder) unitAt(unitPos int) int { return unitPos * f.unitSize }

func (f *Finder) keyBytes() int { return f.keyUnits * f.unitSize }

// hash computes a simple polynomial hash over the key-length byte window
// starting at byte offset p.
func (f *Finder) hash(p int) uint32 {
	var h uint32 = 2166136261
	kb := f.keyBytes()
	for i := 0; i < kb; i++ {
		h = (h ^ uint32(f.data[p+i])) * 16777619
	}
	return h & (hashTableSize - 1)
}

// indexUpTo inserts unit positions [f.indexed, untilUnit) into the hash
// chain, in ascending order, so that Candidates(untilUnit) can look back at
// every earlier position, mirroring the LZO sliding window's strictly
// ascending insertion order.
func (f *Finder) indexUpTo(untilUnit int) {
	kb := f.keyBytes()
	for f.indexed < untilUnit {
		p := f.unitAt(f.indexed)
		if p+kb <= len(f.data) {
			h := f.hash(p)
			f.chainNext[f.indexed] = f.hashHead[h] - 1
			f.hashHead[h] = int32(f.indexed) + 1
		}
		f.indexed++
	}
}

// Candidates returns the legal Matches anchored at unit position pos,
// against real data and, where applicable, the virtual pre-buffer: for each
// source position reached through the hash chain (or pre-buffer start) and
// each limitation, one match at the longest run length that limitation
// allows. Shorter lengths from the same source are not listed.
func (f *Finder) Candidates(pos int) []lzcore.Match {
	f.indexUpTo(pos)

	var out []lzcore.Match
	bytePos := f.unitAt(pos)

	out = append(out, f.candidatesFromChain(pos, bytePos)...)
	out = append(out, f.candidatesFromPreBuffer(pos, bytePos)...)
	return out
}

func (f *Finder) candidatesFromChain(pos, bytePos int) []lzcore.Match {
	var out []lzcore.Match
	kb := f.keyBytes()
	if bytePos+kb > len(f.data) {
		return out
	}

	h := f.hash(bytePos)
	node := f.hashHead[h] - 1
	maxLenBytes := f.longestPossible(bytePos)

	for node >= 0 {
		srcByte := f.unitAt(int(node))
		dispBytes := bytePos - srcByte
		if dispBytes > f.maxDisp {
			break // lazily evict: chain walks strictly toward larger displacement
		}

		runBytes := commonRunLength(f.data, srcByte, bytePos, maxLenBytes)
		runUnits := runBytes / f.unitSize
		dispUnits := dispBytes / f.unitSize

		if runUnits >= f.keyUnits {
			for _, l := range f.limits {
				effLen := runUnits
				if effLen > l.MaxLength {
					effLen = l.MaxLength
				}
				if l.Allows(effLen, dispUnits) {
					out = append(out, lzcore.Match{Position: pos, Displacement: dispUnits, Length: effLen})
				}
			}
		}

		node = f.chainNext[node]
	}
	return out
}

// candidatesFromPreBuffer checks matches whose copy source lies in the
// virtual pre-buffer preceding data (negative byte offsets).
func (f *Finder) candidatesFromPreBuffer(pos, bytePos int) []lzcore.Match {
	var out []lzcore.Match
	if len(f.preBuf) == 0 {
		return out
	}

	for start := 0; start < len(f.preBuf); start += f.unitSize {
		dispBytes := bytePos + len(f.preBuf) - start
		if dispBytes > f.maxDisp {
			continue
		}

		runBytes := commonRunLengthAcross(f.preBuf[start:], f.data, bytePos, f.longestPossible(bytePos))
		runUnits := runBytes / f.unitSize
		dispUnits := dispBytes / f.unitSize
		if runUnits < 1 {
			continue
		}

		for _, l := range f.limits {
			effLen := runUnits
			if effLen > l.MaxLength {
				effLen = l.MaxLength
			}
			if l.Allows(effLen, dispUnits) {
				out = append(out, lzcore.Match{Position: pos, Displacement: dispUnits, Length: effLen})
			}
		}
	}
	return out
}

// longestPossible bounds a run extension to the remaining real input and to
// the widest MaxLength across limitations, in bytes.
func (f *Finder) longestPossible(bytePos int) int {
	remaining := len(f.data) - bytePos
	widest := 0
	for _, l := range f.limits {
		if l.MaxLength > widest {
			widest = l.MaxLength
		}
	}
	widestBytes := widest * f.unitSize
	if widestBytes < remaining {
		return widestBytes
	}
	return remaining
}

// commonRunLength extends a match forward from src/dst within data, allowing
// src to overlap dst (self-referential expansion, legal when displacement <
// length), bounded by maxLen bytes.
func commonRunLength(data []byte, src, dst, maxLen int) int {
	n := 0
	for n < maxLen && dst+n < len(data) && data[src+n] == data[dst+n] {
		n++
	}
	return n
}

// commonRunLengthAcross extends a match whose source bytes come from a
// separate slice (the pre-buffer) rather than data itself.
func commonRunLengthAcross(src []byte, data []byte, dst, maxLen int) int {
	n := 0
	for n < maxLen && n < len(src) && dst+n < len(data) && src[n] == data[dst+n] {
		n++
	}
	return n
}
