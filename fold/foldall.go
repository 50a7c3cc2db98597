package fold

import "unicode/utf8"

// AppendTo writes the fully folded UTF-8 image of src into dst and returns
// the number of bytes written. The caller must provide
// len(dst) >= MaxExpansion*len(src); this bound is tight only for pathological
// inputs (a two-byte codepoint folding to three two-byte codepoints), real
// text stays close to len(src).
//
// Runs of ASCII bytes are folded without decoding. The function performs no
// allocation and keeps no state between calls.
//
// If dst is too small the output is truncated at the last fully written
// codepoint, so the result is always well-formed UTF-8 (the documented
// capacity is a caller precondition, truncation is the release-build
// containment of its violation).
func AppendTo(dst, src []byte) int {
	var buf [MaxExpansion]rune
	w := 0
	for i := 0; i < len(src); {
		b := src[i]
		if b < 0x80 {
			if w >= len(dst) {
				return w
			}
			if b >= 'A' && b <= 'Z' {
				b += 0x20
			}
			dst[w] = b
			w++
			i++
			continue
		}
		r, size := DecodeRune(src[i:])
		i += size
		n := Rune(r, &buf)
		for k := 0; k < n; k++ {
			fr := buf[k]
			if w+utf8.RuneLen(fr) > len(dst) {
				return w
			}
			w += utf8.EncodeRune(dst[w:], fr)
		}
	}
	return w
}

// Bytes returns the fully folded image of src as a new slice. This is the
// allocating convenience wrapper over AppendTo for callers that do not manage
// their own buffers.
func Bytes(src []byte) []byte {
	dst := make([]byte, MaxExpansion*len(src))
	n := AppendTo(dst, src)
	return dst[:n]
}

// FoldedLen returns the number of folded runes src produces.
func FoldedLen(src []byte) int {
	var it Iter
	it.Init(src)
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}
