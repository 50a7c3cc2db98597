package fold

import "unicode/utf8"

// Iter is a lazy iterator over the folded runes of a UTF-8 byte slice.
//
// The iterator decodes one source codepoint at a time, folds it through Rune
// and hands out the folded runes one by one, transparently buffering
// one-to-many expansions. ASCII bytes are folded inline without touching the
// expansion buffer.
//
// For each rune returned, the iterator can report the byte offset of the
// source codepoint it came from and whether it is the first rune produced
// from that codepoint. Callers use this to map a folded-rune window back to
// a contiguous byte range in the source (the search engines report match
// positions and lengths in source bytes, which may differ from needle bytes
// because of expansions).
//
// An Iter is finite, single-pass and not restartable; re-initialize to scan
// again. The zero value is empty.
type Iter struct {
	src []byte
	pos int // byte offset of the next undecoded source byte

	pending      [MaxExpansion]rune
	pendingLen   int
	pendingIdx   int
	pendingStart int // byte offset of the source codepoint behind pending
	pendingSize  int // byte length of that source codepoint
}

// Init resets the iterator to the start of src.
func (it *Iter) Init(src []byte) {
	it.src = src
	it.pos = 0
	it.pendingLen = 0
	it.pendingIdx = 0
	it.pendingStart = 0
	it.pendingSize = 0
}

// Next returns the next folded rune. The second result is false when the
// input is exhausted.
func (it *Iter) Next() (rune, bool) {
	if it.pendingIdx < it.pendingLen {
		r := it.pending[it.pendingIdx]
		it.pendingIdx++
		return r, true
	}
	if it.pos >= len(it.src) {
		return 0, false
	}

	b := it.src[it.pos]
	if b < 0x80 {
		// ASCII fast path: fold inline, no expansion possible.
		it.pendingStart = it.pos
		it.pendingSize = 1
		it.pendingLen = 1
		it.pendingIdx = 1
		it.pos++
		if b >= 'A' && b <= 'Z' {
			b += 0x20
		}
		it.pending[0] = rune(b)
		return rune(b), true
	}

	r, size := DecodeRune(it.src[it.pos:])
	it.pendingStart = it.pos
	it.pendingSize = size
	it.pos += size
	it.pendingLen = Rune(r, &it.pending)
	it.pendingIdx = 1
	return it.pending[0], true
}

// SourceStart returns the byte offset in the source of the codepoint that
// produced the most recently returned rune.
func (it *Iter) SourceStart() int { return it.pendingStart }

// SourceEnd returns the byte offset just past the codepoint that produced
// the most recently returned rune.
func (it *Iter) SourceEnd() int { return it.pendingStart + it.pendingSize }

// FirstOfSource reports whether the most recently returned rune is the first
// rune produced from its source codepoint. Expansion tails return false.
func (it *Iter) FirstOfSource() bool { return it.pendingIdx == 1 }

// AtSourceBoundary reports whether the iterator sits on a source codepoint
// boundary: no expansion runes are pending. A match may only end where this
// holds.
func (it *Iter) AtSourceBoundary() bool { return it.pendingIdx >= it.pendingLen }

// Pos returns the byte offset of the next undecoded source byte.
func (it *Iter) Pos() int { return it.pos }

// DecodeRune decodes the first codepoint of s, which must be non-empty.
// It differs from utf8.DecodeRune in its handling of ill-formed input:
// an impossible lead byte is treated as a single self-folding unit of one
// byte rather than RuneError, so downstream folding never grows or shrinks
// garbage input.
func DecodeRune(s []byte) (rune, int) {
	r, size := utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		return rune(s[0]), 1
	}
	return r, size
}

// DecodeLastRune decodes the codepoint ending at the end of s, which must be
// non-empty, with the same defensive handling as DecodeRune.
func DecodeLastRune(s []byte) (rune, int) {
	r, size := utf8.DecodeLastRune(s)
	if r == utf8.RuneError && size <= 1 {
		return rune(s[len(s)-1]), 1
	}
	return r, size
}
