// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package huffman builds canonical and non-canonical Huffman codebooks and
provides a bit-packed encoder/decoder on top of package bitio.

Tree is an arena of nodes addressed by integer index rather than
parent/child pointers, avoiding the cyclic ownership a pointer-linked tree
would need for child-to-parent code reconstruction.
Build uses a container/heap min-heap with stable (insertion-order)
tie-breaking on equal frequency, producing a deterministic tree; a
degenerate single-symbol input synthesizes a zero-frequency sibling so
every code has length >= 1. When a format imposes a bit-width cap on code
length (e.g. Nintendo Huffman's 4-bit table depth), LimitLengths applies a
package-merge length-limiting pass that preserves the prefix property.
*/
package huffman
