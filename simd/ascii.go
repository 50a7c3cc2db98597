// Package simd provides SWAR-accelerated byte scanning primitives for the
// case-insensitive search engine. The functions process eight bytes at a
// time inside a uint64 register (SIMD Within A Register), which keeps them
// portable across architectures while staying several times faster than
// byte-at-a-time loops.
//
// The primary consumers are the case-agnostic fast path (plain byte search
// once folding is known to be a no-op) and the ASCII pre-screens of the
// classifier and dispatcher.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// IsASCII reports whether every byte of data is below 0x80.
//
// The scan checks the high bit of eight bytes at once: a single AND with
// 0x8080808080808080 exposes any non-ASCII byte in the chunk. Throughput is
// memory-bandwidth bound on large inputs.
func IsASCII(data []byte) bool {
	i := 0
	for ; i+8 <= len(data); i += 8 {
		if binary.LittleEndian.Uint64(data[i:])&hi8 != 0 {
			return false
		}
	}
	for ; i < len(data); i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// FirstNonASCII returns the index of the first byte >= 0x80, or -1 if data
// is pure ASCII. This is where UTF-8 decoding has to begin.
func FirstNonASCII(data []byte) int {
	i := 0
	for ; i+8 <= len(data); i += 8 {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if m := chunk & hi8; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < len(data); i++ {
		if data[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// IndexASCIILetter returns the index of the first byte in A..Z or a..z, or
// -1 if none is present. The input must be pure ASCII (every byte < 0x80);
// callers pre-screen with IsASCII.
//
// Each chunk is lowered with a blanket |0x20 (which maps A..Z onto a..z and
// maps no non-letter into the letter range while bytes stay below 0x80) and
// then range-checked with the SWAR greater-equal trick: adding 0x80-m to a
// byte below 0x80 sets the high bit exactly when the byte is >= m.
func IndexASCIILetter(data []byte) int {
	i := 0
	for ; i+8 <= len(data); i += 8 {
		lowered := binary.LittleEndian.Uint64(data[i:]) | 0x2020202020202020
		ge := (lowered + (0x80-'a')*lo8) & hi8
		gt := (lowered + (0x80-'z'-1)*lo8) & hi8
		if m := ge &^ gt; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < len(data); i++ {
		c := data[i] | 0x20
		if c >= 'a' && c <= 'z' {
			return i
		}
	}
	return -1
}
