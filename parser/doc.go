// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package parser implements the optimal (minimum-price) token parse: a
single-pass shortest-path dynamic program over a DAG with N+1 nodes, one
literal edge and zero-or-more match edges out of each position. LZO-style
compressors are greedy/lazy, not globally optimal, so this DP formulation
has no direct code ancestor.

Parse has no scan direction of its own. A backward-direction format hands it
the byte-reversed input (see package matchfind's doc comment), so the
returned tokens cover that reversed input from its start, i.e. the original
input's tail first. The token list is not reversed again; the format's
decoder reverses the decoded bytes instead.
*/
package parser
