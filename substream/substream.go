// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

/*
Package substream implements a bounded, position-independent window over a
backing byte source. The match finder does not use it: a format's virtual
pre-buffer reaches matchfind directly through FindOptions.PreBufferContents.

Each operation is seek-transparent to other holders of the base source: if
the base only implements io.ReadWriteSeeker, View saves and restores its
position around every read/write; if the base additionally exposes
positioned I/O (ReaderAt/WriterAt), View uses that directly and the base's
own seek position is never disturbed (the §9 redesign note: "make the base
source's position irrelevant to the view").
*/
package substream

import (
	"io"

	"github.com/retrocodec/lzcore"
)

// View is a bounded window [offset, offset+length) over a backing source.
type View struct {
	base      io.ReadWriteSeeker
	baseAt    positionedSource // non-nil when base supports positioned I/O
	offset    int64
	length    int64 // current logical length, <= fixedCap when fixedCap >= 0
	fixedCap  int64 // -1 = unbounded (may grow on write)
	pos       int64 // current read/write cursor, relative to offset
}

// positionedSource is satisfied by backing sources that can be read/written
// at an absolute offset without disturbing a shared seek cursor.
type positionedSource interface {
	io.ReaderAt
	io.WriterAt
}

// New constructs a View over base covering [offset, offset+length).
// offset must be >= 0 and length > 0. If base's total size is known (it
// implements an io.Seeker whose End-relative seek reports it), offset+length
// must not exceed it; validation happens before base is touched, per the
// fixed SubStream constructor bug (§9 Open Question: validate against the
// known length, not a not-yet-assigned field).
func New(base io.ReadWriteSeeker, offset, length int64) (*View, error) {
	if offset < 0 || length <= 0 {
		return nil, lzcore.NewError(lzcore.InvalidRange, "offset must be >= 0 and length > 0")
	}

	if baseLen, ok := totalLength(base); ok {
		if offset+length > baseLen {
			return nil, lzcore.NewError(lzcore.InvalidRange, "offset+length exceeds base source length")
		}
	}

	v := &View{base: base, offset: offset, length: length, fixedCap: length}
	if at, ok := base.(positionedSource); ok {
		v.baseAt = at
	}
	return v, nil
}

// NewUnbounded constructs a View over base starting at offset with no fixed
// length cap; writes past the current length grow it.
func NewUnbounded(base io.ReadWriteSeeker, offset int64) (*View, error) {
	if offset < 0 {
		return nil, lzcore.NewError(lzcore.InvalidRange, "offset must be >= 0")
	}
	v := &View{base: base, offset: offset, length: 0, fixedCap: -1}
	if at, ok := base.(positionedSource); ok {
		v.baseAt = at
	}
	return v, nil
}

func totalLength(base io.ReadWriteSeeker) (int64, bool) {
	cur, err := base.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := base.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	_, _ = base.Seek(cur, io.SeekStart)
	return end, true
}

// Length returns the view's current logical length.
func (v *View) Length() int64 { return v.length }

// Position returns the view's current read/write cursor, relative to its offset.
func (v *View) Position() int64 { return v.pos }

// Seek repositions the view's cursor, per io.Seeker semantics relative to
// the view's own bounds (not the base source's).
func (v *View) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = v.pos + offset
	case io.SeekEnd:
		target = v.length + offset
	default:
		return 0, lzcore.NewError(lzcore.InvalidRange, "invalid whence")
	}
	if target < 0 {
		return 0, lzcore.NewError(lzcore.InvalidRange, "negative seek position")
	}
	v.pos = target
	return v.pos, nil
}

// SetLength truncates or extends the view's logical length, subject to any
// fixed cap set at construction.
func (v *View) SetLength(n int64) error {
	if n < 0 {
		return lzcore.NewError(lzcore.InvalidRange, "negative length")
	}
	if v.fixedCap >= 0 && n > v.fixedCap {
		return lzcore.NewError(lzcore.OutOfRangeWrite, "length exceeds fixed capacity")
	}
	v.length = n
	return nil
}

// Read reads into p starting at the view's cursor, bounded by Length.
func (v *View) Read(p []byte) (int, error) {
	avail := v.length - v.pos
	if avail <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > avail {
		p = p[:avail]
	}

	n, err := v.readAt(p, v.offset+v.pos)
	v.pos += int64(n)
	return n, err
}

// Write writes p at the view's cursor. Writes beyond the current length grow
// it, up to any fixed cap; writes that would exceed a fixed cap fail with
// OutOfRangeWrite and no bytes are written.
func (v *View) Write(p []byte) (int, error) {
	end := v.pos + int64(len(p))
	if v.fixedCap >= 0 && end > v.fixedCap {
		return 0, lzcore.NewError(lzcore.OutOfRangeWrite, "write exceeds fixed view length")
	}

	n, err := v.writeAt(p, v.offset+v.pos)
	v.pos += int64(n)
	if v.pos > v.length {
		v.length = v.pos
	}
	return n, err
}

// Flush is a no-op for in-memory/file-backed sources; present for contract
// symmetry with formats that wrap a buffered sink.
func (v *View) Flush() error { return nil }

func (v *View) readAt(p []byte, absPos int64) (int, error) {
	if v.baseAt != nil {
		return v.baseAt.ReadAt(p, absPos)
	}

	saved, err := v.base.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	defer func() { _, _ = v.base.Seek(saved, io.SeekStart) }()

	if _, err := v.base.Seek(absPos, io.SeekStart); err != nil {
		return 0, err
	}
	return io.ReadFull(v.base, p)
}

func (v *View) writeAt(p []byte, absPos int64) (int, error) {
	if v.baseAt != nil {
		return v.baseAt.WriteAt(p, absPos)
	}

	saved, err := v.base.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	defer func() { _, _ = v.base.Seek(saved, io.SeekStart) }()

	if _, err := v.base.Seek(absPos, io.SeekStart); err != nil {
		return 0, err
	}
	return v.base.Write(p)
}
