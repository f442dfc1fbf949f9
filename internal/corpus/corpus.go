// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

// Package corpus provides a small set of deterministic, named byte blobs
// used to exercise every format adapter's round trip across a range of
// redundancy levels. There is no access to real extracted game-ROM assets
// in this environment, so these fixtures are synthetic rather than
// authentic; they are built to stress the same structural properties a
// real corpus would (long runs, periodic repeats, dense byte-value
// coverage, and incompressible noise), in the spirit of the external
// compressed/uncompressed fixture pairs a real compatibility corpus would
// supply.
package corpus

import "bytes"

// Fixture is one named input blob.
type Fixture struct {
	Name string
	Data []byte
}

// All returns every fixture in a fixed, deterministic order.
func All() []Fixture {
	return []Fixture{
		{Name: "empty", Data: []byte{}},
		{Name: "single-byte", Data: []byte{0x7F}},
		{Name: "ascii-sentence", Data: []byte("the quick brown fox jumps over the lazy dog, twice over")},
		{Name: "short-repeat", Data: bytes.Repeat([]byte("AB"), 64)},
		{Name: "long-repeat", Data: bytes.Repeat([]byte("retrocodec"), 512)},
		{Name: "long-run-zero", Data: make([]byte, 4096)},
		{Name: "long-run-0xFF", Data: bytes.Repeat([]byte{0xFF}, 4096)},
		{Name: "byte-value-cycle", Data: cycleAllByteValues(8)},
		{Name: "pseudo-random", Data: lcgNoise(4096, 0x2545F4914F6CDD1D)},
		{Name: "sparse-matches", Data: sparseMatches()},
	}
}

// cycleAllByteValues repeats the full 0-255 byte sequence reps times, giving
// a fixture dense in distinct symbols (stresses Huffman tables and the
// 256-entry code-length table format).
func cycleAllByteValues(reps int) []byte {
	out := make([]byte, 0, 256*reps)
	for i := 0; i < reps; i++ {
		for v := 0; v < 256; v++ {
			out = append(out, byte(v))
		}
	}
	return out
}

// lcgNoise generates deterministic, effectively incompressible bytes via a
// fixed linear congruential generator seeded by state, not math/rand, so
// the sequence is identical across runs and Go versions.
func lcgNoise(n int, state uint64) []byte {
	out := make([]byte, n)
	for i := range out {
		state = state*6364136223846793005 + 1442695040888963407
		out[i] = byte(state >> 56)
	}
	return out
}

// sparseMatches interleaves short literal runs with periodic repeats,
// stressing a parser's literal/match boundary decisions.
func sparseMatches() []byte {
	var out []byte
	block := []byte("XYZXYZXYZ-")
	for i := 0; i < 100; i++ {
		out = append(out, block...)
		out = append(out, byte('a'+i%26))
	}
	return out
}
