// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package matchfind enumerates back-reference candidates at each position of
an input, for a set of lzcore.FindLimitations: one match per source position
and limitation, at the longest length that limitation allows.

Positions, lengths and displacements are expressed in units
(lzcore.Unit1 or lzcore.Unit2); internally the Finder addresses its backing
byte slice in bytes and converts at the boundary. Scan order (forward vs. backward) is the caller's concern: backward mode is
equivalent to running forward mode on the byte-reversed input, so a caller
wanting backward search constructs a Finder over an already-reversed byte
slice; the Finder ignores FindOptions.Direction.

The search index is a hash chain keyed on the shortest min-length prefix
across all installed limitations (never longer than 4 units), walked newest
match first with lazy eviction of entries outside the active limitations'
largest max-displacement window: the same structure as an LZO
sliding-window dictionary (a hash head table plus per-position chainNext),
generalized from a fixed 3-byte key and single "advance by one" ring buffer
to a parametrized key size and random-access Candidates queries.
*/
package matchfind
