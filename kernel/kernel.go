// Package kernel implements the script-specialized search kernels.
//
// All six kernels (ASCII, Latin-1AB, Cyrillic, Greek, Armenian, Vietnamese)
// share one skeleton. A kernel is compiled from a needle and a safe window
// produced by the analyzer; at search time it repeats three steps over
// 64-byte haystack blocks:
//
//  1. Filter. Fold three possibly-overlapping blocks, one per probe, and
//     compare each against its broadcast probe byte, producing three 64-bit
//     candidate masks whose AND survives only positions where the folded
//     haystack agrees with the folded needle window at all three probes.
//  2. Verify. For each surviving candidate, fold the candidate's window
//     region and compare it byte-for-byte against the pre-folded needle
//     window; walk the needle head backward through the fold table to find
//     the match start; then confirm the whole span with the serial engine's
//     verifier. The last step is what rejects alignments that would split a
//     one-to-many expansion, such as matching the trailing s of ß's fold.
//  3. Advance by 62 bytes, so codepoints straddling a block boundary are
//     always seen whole by one of the two adjacent iterations.
//
// The block fold is length-preserving by construction: it rewrites only
// codepoints the class recognizes and whose folded image occupies exactly
// the source bytes (including the ß blend). The analyzer guarantees that at
// any real match every codepoint aligned with the needle window is such a
// codepoint, so the filter can never miss a match.
//
// The Greek kernel additionally routes any block whose probe span contains
// a 0xE1 lead byte to the serial engine: polytonic Greek folds within the
// three-byte E1 block, outside what the block fold rewrites.
package kernel

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"unicode/utf8"

	"github.com/coregx/casefold/fold"
	"github.com/coregx/casefold/serial"
	"github.com/coregx/casefold/simd"
	"github.com/coregx/casefold/window"
)

const (
	// blockBytes is the filter granularity, one 512-bit register's worth.
	blockBytes = 64

	// blockStep is the per-iteration advance. Stepping two bytes short of
	// the block keeps candidates near the block edge inside the next
	// iteration's full-context view.
	blockStep = 62

	// candidateMask keeps only the candidate bits a 62-byte step makes
	// authoritative; bits 62 and 63 reappear as bits 0 and 1 of the next
	// iteration.
	candidateMask = (uint64(1) << blockStep) - 1
)

// Kernel is a compiled single-needle searcher for one script class.
// A Kernel is immutable after Compile and safe for concurrent use.
type Kernel struct {
	class  window.Class
	needle []byte
	win    window.Window

	// nf is the pre-folded needle window; nf[0:win.Len] is valid.
	nf [blockBytes]byte

	// probe bytes extracted from nf and their window-relative offsets.
	probeF, probeM, probeL byte
	offF, offM, offL       int

	// headFolded is the folded image of needle[:win.Start], matched
	// backward from a candidate to locate the match start.
	headFolded []rune

	// headSpan bounds the haystack bytes the head can occupy: each folded
	// rune comes from at most one source codepoint of at most four bytes.
	headSpan int
}

// Compile builds the class kernel for needle filtering on win, which must
// be valid (win.Len > 0) and lie within the needle on codepoint boundaries,
// as produced by the analyzer.
func Compile(c window.Class, needle []byte, win window.Window) *Kernel {
	k := &Kernel{class: c, needle: needle, win: win}

	foldRegion(c, needle, win.Start, win.Len, &k.nf)
	k.probeF = k.nf[win.ProbeFirst]
	k.probeM = k.nf[win.ProbeMid]
	k.probeL = k.nf[win.ProbeLast]
	k.offF = win.ProbeFirst
	k.offM = win.ProbeMid
	k.offL = win.ProbeLast

	var buf [fold.MaxExpansion]rune
	for i := 0; i < win.Start; {
		r, size := fold.DecodeRune(needle[i:])
		n := fold.Rune(r, &buf)
		k.headFolded = append(k.headFolded, buf[:n]...)
		i += size
	}
	k.headSpan = utf8.UTFMax * len(k.headFolded)
	return k
}

// Class returns the script class this kernel folds for.
func (k *Kernel) Class() window.Class { return k.class }

// Find returns the leftmost match as (start, length) in haystack bytes, or
// (serial.NotFound, 0).
func (k *Kernel) Find(haystack []byte) (int, int) {
	return k.FindFrom(haystack, 0)
}

// FindFrom is Find starting at byte offset from (a codepoint boundary).
func (k *Kernel) FindFrom(haystack []byte, from int) (int, int) {
	// wpos is the haystack offset where needle[win.Start] aligns; the
	// window must fit entirely.
	maxWpos := len(haystack) - k.win.Len
	if maxWpos < from {
		return serial.NotFound, 0
	}

	var block [blockBytes]byte
	for pos := from; pos <= maxWpos; pos += blockStep {
		if k.class == window.Greek && k.probeSpanHasE1(haystack, pos) {
			// Polytonic Greek ahead: the serial engine owns the rest.
			return serial.FindFrom(haystack, k.needle, boundaryBack(haystack, maxInt(from, pos-k.headSpan)))
		}

		cand := k.probeMaskAt(haystack, pos+k.offF, k.probeF, &block)
		if cand == 0 {
			continue
		}
		cand &= k.probeMaskAt(haystack, pos+k.offM, k.probeM, &block)
		if cand == 0 {
			continue
		}
		cand &= k.probeMaskAt(haystack, pos+k.offL, k.probeL, &block)
		cand &= candidateMask

		for cand != 0 {
			j := bits.TrailingZeros64(cand)
			cand &= cand - 1
			wpos := pos + j
			if wpos > maxWpos {
				break
			}
			start, length, ok := k.verifyCandidate(haystack, wpos, from)
			if !ok {
				continue
			}
			if len(k.headFolded) == 0 {
				return start, length
			}
			// With a non-empty head, a later window alignment can yield an
			// earlier match start (expansions stretch the head span), so
			// the serial engine re-derives the leftmost match from the
			// last cleared position.
			return serial.FindFrom(haystack, k.needle, boundaryBack(haystack, maxInt(from, pos-k.headSpan)))
		}
	}
	return serial.NotFound, 0
}

// probeMaskAt folds the 64-byte block at p and returns a candidate mask
// with bit j set when the folded byte at p+j equals probe. Bits beyond the
// haystack are clear.
func (k *Kernel) probeMaskAt(haystack []byte, p int, probe byte, block *[blockBytes]byte) uint64 {
	if p >= len(haystack) {
		return 0
	}
	valid := foldRegion(k.class, haystack, p, blockBytes, block)
	var mask uint64
	for w := 0; w < blockBytes/8; w++ {
		word := binary.LittleEndian.Uint64(block[w*8:])
		mask |= uint64(simd.EqMask64(word, probe)) << (w * 8)
	}
	if valid < blockBytes {
		mask &= (uint64(1) << valid) - 1
	}
	return mask
}

// verifyCandidate confirms the candidate whose window alignment is wpos.
// It compares the folded window region against the pre-folded needle
// window, walks the head backward to the match start, and hands the final
// word to the serial verifier.
func (k *Kernel) verifyCandidate(haystack []byte, wpos, from int) (int, int, bool) {
	var block [blockBytes]byte
	valid := foldRegion(k.class, haystack, wpos, k.win.Len, &block)
	if valid < k.win.Len || !bytes.Equal(block[:k.win.Len], k.nf[:k.win.Len]) {
		return 0, 0, false
	}

	start, ok := k.matchHeadBackward(haystack, wpos)
	if !ok || start < from {
		return 0, 0, false
	}
	length, ok := serial.VerifyAt(haystack, k.needle, start)
	if !ok {
		return 0, 0, false
	}
	return start, length, true
}

// matchHeadBackward consumes headFolded in reverse over the haystack
// codepoints ending at wpos. Each source codepoint's folded runes must
// match a suffix of the remaining head; an expansion that would straddle
// the match start rejects the candidate (a match cannot begin inside an
// expansion).
func (k *Kernel) matchHeadBackward(haystack []byte, wpos int) (int, bool) {
	var buf [fold.MaxExpansion]rune
	i := len(k.headFolded)
	p := wpos
	for i > 0 {
		if p == 0 {
			return 0, false
		}
		r, size := fold.DecodeLastRune(haystack[:p])
		n := fold.Rune(r, &buf)
		if n > i {
			return 0, false
		}
		for x := 0; x < n; x++ {
			if buf[x] != k.headFolded[i-n+x] {
				return 0, false
			}
		}
		i -= n
		p -= size
	}
	return p, true
}

// probeSpanHasE1 reports whether the bytes any of this iteration's probe
// blocks can touch contain an E1 lead byte.
func (k *Kernel) probeSpanHasE1(haystack []byte, pos int) bool {
	lo := pos + k.offF
	hi := pos + k.offL + blockBytes
	if lo >= len(haystack) {
		return false
	}
	if hi > len(haystack) {
		hi = len(haystack)
	}
	return bytes.IndexByte(haystack[lo:hi], 0xE1) >= 0
}

// foldRegion writes the class fold of haystack[pos:pos+n] into dst,
// positionally: dst[j] is the folded image of haystack[pos+j]. Decoding
// starts at the codepoint covering pos (stepping back over continuation
// bytes) and runs past pos+n when a codepoint straddles the end, so every
// in-region byte is folded with full context. Codepoints the class does not
// recognize, or whose fold is not length-preserving, copy through raw.
// Returns the number of valid bytes (short only at the haystack tail);
// dst bytes beyond it are zeroed.
func foldRegion(c window.Class, haystack []byte, pos, n int, dst *[blockBytes]byte) int {
	end := pos + n
	if end > len(haystack) {
		end = len(haystack)
	}
	valid := end - pos

	start := pos
	for start > 0 && pos-start < utf8.UTFMax-1 && haystack[start]&0xC0 == 0x80 {
		start--
	}

	var buf [fold.MaxExpansion]rune
	var out [utf8.UTFMax]byte
	for i := start; i < end; {
		b := haystack[i]
		if b < 0x80 {
			// ASCII fast path, recognized by every class.
			if b >= 'A' && b <= 'Z' {
				b += 0x20
			}
			if i >= pos {
				dst[i-pos] = b
			}
			i++
			continue
		}
		r, size := fold.DecodeRune(haystack[i:])
		w := 0
		if window.Member(c, r) && window.LengthPreserving(r) {
			fn := fold.Rune(r, &buf)
			for x := 0; x < fn; x++ {
				w += utf8.EncodeRune(out[w:], buf[x])
			}
		} else {
			copy(out[:size], haystack[i:i+size])
			w = size
		}
		for x := 0; x < w; x++ {
			p := i + x
			if p >= pos && p < end {
				dst[p-pos] = out[x]
			}
		}
		i += size
	}
	for x := valid; x < blockBytes; x++ {
		dst[x] = 0
	}
	return valid
}

// boundaryBack slides p back onto a codepoint boundary.
func boundaryBack(haystack []byte, p int) int {
	if p < 0 {
		return 0
	}
	for p > 0 && p < len(haystack) && haystack[p]&0xC0 == 0x80 {
		p--
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
