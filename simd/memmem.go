package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
//
// The scan anchors on the needle's last byte: word endings and terminators
// tend to be more distinctive than beginnings, and the anchor is O(1) to
// pick. Memchr locates anchor candidates and each one is verified with a
// full comparison. The case-agnostic dispatch path routes here when folding
// is known to be the identity on both inputs.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	anchor := needle[len(needle)-1]
	anchorIdx := len(needle) - 1
	from := 0
	for {
		rel := Memchr(haystack[from+anchorIdx:], anchor)
		if rel < 0 {
			return -1
		}
		start := from + rel
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		from = start + 1
	}
}
