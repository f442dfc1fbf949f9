// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrocodec
// Source: github.com/retrocodec/lzcore

package formats

// Identify is a reference host-supplied identifier: it inspects the
// leading bytes of a stream and reports whether they match the named
// container's magic tag. This is a thin example, not part of the core
// format-dispatch contract; callers that know which container they hold
// should call that Format's Decode directly.
func Identify(name string, b []byte) bool {
	switch name {
	case "CTPK":
		return len(b) >= 4 && string(b[0:4]) == "CTPK"
	case "MIO0":
		return len(b) >= 4 && string(b[0:4]) == "MIO0"
	case "YAY0":
		return len(b) >= 4 && string(b[0:4]) == "Yay0"
	case "YAZ0":
		return len(b) >= 4 && string(b[0:4]) == "Yaz0"
	default:
		return false
	}
}
