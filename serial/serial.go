// Package serial implements the always-correct reference engine for
// case-insensitive substring search over folded rune streams.
//
// The engine is the correctness oracle for the SIMD-style script kernels:
// debug builds cross-check every kernel result against this implementation,
// and the kernels delegate outright for needle shapes they cannot filter
// (no usable safe window, polytonic Greek chunks).
//
// Search strategy by needle shape:
//
//   - empty needle: match at the start, length zero
//   - case-agnostic needle: plain byte search (simd.Memmem)
//   - short needles (<= 12 source bytes) folding to 1, 2 or 3 runes:
//     hash-free specialized scans over source codepoints
//   - everything else: Rabin-Karp over a ring of the first 32 folded runes,
//     with full byte-level verification through the fold iterator on every
//     window hit
//
// Matches are reported as (start, length) in haystack bytes. The length may
// differ from the needle's byte length because of one-to-many folds (needle
// "ﬁ", three bytes, matches the two bytes of "FI"). A match always begins and
// ends on source codepoint boundaries; a needle is never matched against the
// interior of an expansion (needle "s" does not match inside "ß").
package serial

import (
	"github.com/coregx/casefold/fold"
	"github.com/coregx/casefold/simd"
)

const (
	// maxShortNeedle is the source-byte bound at or below which the folded-rune
	// count decides between the specialized scans and Rabin-Karp.
	maxShortNeedle = 12

	// ringSize is the folded-rune capacity of the Rabin-Karp window. The
	// window covers the needle's folded prefix; longer needles keep their
	// tail out of the hash and verify it after a prefix hit.
	ringSize = 32

	// hashBase is the rolling polynomial base.
	hashBase = 257
)

// NotFound is the start offset reported when the needle is absent.
const NotFound = -1

// Find returns the byte offset and byte length of the leftmost
// case-insensitive match of needle in haystack, or (NotFound, 0).
func Find(haystack, needle []byte) (int, int) {
	return FindFrom(haystack, needle, 0)
}

// FindFrom is Find starting at byte offset from, which must lie on a source
// codepoint boundary. Offsets in the result remain absolute.
func FindFrom(haystack, needle []byte, from int) (int, int) {
	if len(needle) == 0 {
		if from > len(haystack) {
			return NotFound, 0
		}
		return from, 0
	}
	if from >= len(haystack) {
		return NotFound, 0
	}

	if fold.IsCaseAgnostic(needle) {
		idx := simd.Memmem(haystack[from:], needle)
		if idx < 0 {
			return NotFound, 0
		}
		return from + idx, len(needle)
	}

	if len(needle) <= maxShortNeedle {
		var runes [3]rune
		if n, ok := foldNeedleShort(needle, &runes); ok {
			switch n {
			case 1:
				return find1(haystack, from, runes[0])
			case 2:
				return find2(haystack, from, runes[0], runes[1])
			case 3:
				return find3(haystack, from, runes[0], runes[1], runes[2])
			}
		}
	}

	return findRabinKarp(haystack, needle, from)
}

// foldNeedleShort folds needle into at most three runes. ok is false when
// the folded form is longer, in which case the caller takes the Rabin-Karp
// path.
func foldNeedleShort(needle []byte, out *[3]rune) (int, bool) {
	var buf [fold.MaxExpansion]rune
	count := 0
	for i := 0; i < len(needle); {
		r, size := fold.DecodeRune(needle[i:])
		i += size
		n := fold.Rune(r, &buf)
		if count+n > len(out) {
			return 0, false
		}
		for k := 0; k < n; k++ {
			out[count] = buf[k]
			count++
		}
	}
	return count, true
}

// find1 scans for a needle that folds to a single rune. Only a source
// codepoint folding to exactly that one rune matches; a codepoint whose
// expansion merely contains the rune is not a match, because a match must
// cover whole source codepoints.
func find1(haystack []byte, from int, target rune) (int, int) {
	var buf [fold.MaxExpansion]rune
	for i := from; i < len(haystack); {
		r, size := fold.DecodeRune(haystack[i:])
		if n := fold.Rune(r, &buf); n == 1 && buf[0] == target {
			return i, size
		}
		i += size
	}
	return NotFound, 0
}

// find2 scans for a needle folding to the rune pair (n0, n1). A match is
// either one source codepoint folding to exactly that pair, or two adjacent
// codepoints folding to one rune each.
func find2(haystack []byte, from int, n0, n1 rune) (int, int) {
	var buf [fold.MaxExpansion]rune
	prevOne := false // previous source folded to exactly one rune
	prevRune := ^n0  // sentinel: never equal to n0 while invalid
	prevStart, prevSize := 0, 0

	for i := from; i < len(haystack); {
		r, size := fold.DecodeRune(haystack[i:])
		n := fold.Rune(r, &buf)

		if n == 2 && buf[0] == n0 && buf[1] == n1 {
			return i, size
		}
		if prevOne && prevRune == n0 && n == 1 && buf[0] == n1 {
			return prevStart, prevSize + size
		}

		prevOne = n == 1
		prevRune = buf[0]
		prevStart, prevSize = i, size
		i += size
	}
	return NotFound, 0
}

// find3 scans for a needle folding to the rune triple (n0, n1, n2). The
// partitions of three runes over whole source codepoints are (3), (2,1),
// (1,2) and (1,1,1); each is tested against a two-codepoint history.
func find3(haystack []byte, from int, n0, n1, n2 rune) (int, int) {
	type src struct {
		runes [fold.MaxExpansion]rune
		n     int
		start int
		size  int
	}
	var p2, p1 src // the two preceding source codepoints; n==0 while invalid
	var buf [fold.MaxExpansion]rune

	for i := from; i < len(haystack); {
		r, size := fold.DecodeRune(haystack[i:])
		n := fold.Rune(r, &buf)

		switch {
		case n == 3 && buf[0] == n0 && buf[1] == n1 && buf[2] == n2:
			return i, size
		case n == 1 && buf[0] == n2 && p1.n == 2 &&
			p1.runes[0] == n0 && p1.runes[1] == n1:
			return p1.start, p1.size + size
		case n == 2 && buf[0] == n1 && buf[1] == n2 && p1.n == 1 &&
			p1.runes[0] == n0:
			return p1.start, p1.size + size
		case n == 1 && buf[0] == n2 && p1.n == 1 && p1.runes[0] == n1 &&
			p2.n == 1 && p2.runes[0] == n0:
			return p2.start, p2.size + p1.size + size
		}

		p2 = p1
		p1 = src{n: n, start: i, size: size}
		copy(p1.runes[:], buf[:n])
		i += size
	}
	return NotFound, 0
}

// findRabinKarp locates long needles with a rolling polynomial hash over a
// ring of the needle's first folded runes. The needle tail beyond the ring
// is not hashed; it is verified (together with the window itself) by a full
// folded lockstep comparison on every window hit. The re-verification is
// what rejects window boundaries that fall inside a one-to-many expansion,
// such as a window beginning on the trailing s of ß's fold.
func findRabinKarp(haystack, needle []byte, from int) (int, int) {
	var prefix [ringSize]rune
	var buf [fold.MaxExpansion]rune

	// Fold the needle prefix, cutting on a source codepoint boundary so the
	// ring never splits an expansion between prefix and tail.
	pc := 0
	for i := 0; i < len(needle); {
		r, size := fold.DecodeRune(needle[i:])
		n := fold.Rune(r, &buf)
		if pc+n > ringSize {
			break
		}
		copy(prefix[pc:], buf[:n])
		pc += n
		i += size
	}

	var needleHash uint64
	for i := 0; i < pc; i++ {
		needleHash = needleHash*hashBase + uint64(prefix[i])
	}
	// Multiplier removing the oldest rune: hashBase^(pc-1).
	pow := uint64(1)
	for i := 1; i < pc; i++ {
		pow *= hashBase
	}

	var (
		window   [ringSize]rune
		srcStart [ringSize]int
		srcFirst [ringSize]bool
		head     int
		count    int
		hash     uint64
	)

	var it fold.Iter
	it.Init(haystack[from:])
	for {
		r, ok := it.Next()
		if !ok {
			return NotFound, 0
		}
		if count < pc {
			window[count] = r
			srcStart[count] = from + it.SourceStart()
			srcFirst[count] = it.FirstOfSource()
			count++
			hash = hash*hashBase + uint64(r)
			if count < pc {
				continue
			}
			// First full window; head stays at the oldest slot, 0.
		} else {
			hash -= uint64(window[head]) * pow
			hash = hash*hashBase + uint64(r)
			window[head] = r
			srcStart[head] = from + it.SourceStart()
			srcFirst[head] = it.FirstOfSource()
			head++
			if head == pc {
				head = 0
			}
		}

		if hash != needleHash {
			continue
		}
		// Two-segment compare against the ring: [head..pc) then [0..head).
		if !segmentsEqual(&window, &prefix, head, pc) {
			continue
		}
		if !srcFirst[head] {
			// Window begins mid-expansion; not a codepoint boundary.
			continue
		}
		start := srcStart[head]
		if end, ok := verifyAt(haystack, needle, start); ok {
			return start, end - start
		}
	}
}

// segmentsEqual compares the ring's logical content (oldest first, starting
// at head) against want[0:pc] in two contiguous segments, avoiding modular
// indexing in the hot comparison.
func segmentsEqual(ring, want *[ringSize]rune, head, pc int) bool {
	w := 0
	for i := head; i < pc; i++ {
		if ring[i] != want[w] {
			return false
		}
		w++
	}
	for i := 0; i < head; i++ {
		if ring[i] != want[w] {
			return false
		}
		w++
	}
	return true
}

// verifyAt checks whether a full match of needle begins at byte offset
// start in haystack, comparing the complete folded streams in lockstep.
// On success it returns the byte offset just past the match. The match must
// end on a source codepoint boundary: a haystack expansion may not be split
// by the match end.
func verifyAt(haystack, needle []byte, start int) (int, bool) {
	var hit, nit fold.Iter
	hit.Init(haystack[start:])
	nit.Init(needle)
	end := start
	for {
		nr, nok := nit.Next()
		if !nok {
			if !hit.AtSourceBoundary() {
				return 0, false
			}
			return end, true
		}
		hr, hok := hit.Next()
		if !hok || hr != nr {
			return 0, false
		}
		end = start + hit.SourceEnd()
	}
}

// VerifyAt reports whether a case-insensitive match of needle starts at the
// given byte offset, and if so its byte length. Kernels use this to confirm
// filtered candidates against the engine's exact semantics.
func VerifyAt(haystack, needle []byte, start int) (int, bool) {
	end, ok := verifyAt(haystack, needle, start)
	if !ok {
		return 0, false
	}
	return end - start, true
}
