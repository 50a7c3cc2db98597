// Package casefold provides locale-independent Unicode case-insensitive
// substring search over UTF-8, together with the primitives it is built on:
// full case folding (Unicode 17, CaseFolding.txt), case-insensitive
// ordering, and case-agnostic classification.
//
// casefold handles the full folding rules that byte-oriented approaches
// cannot: one-to-many folds (ß matches SS, ﬁ matches FI), folds that cross
// UTF-8 widths (the Kelvin sign matches k), and matches whose byte length
// differs from the needle's. Throughput comes from script-specialized block
// kernels that prefilter candidate positions with a three-probe mask and
// verify against a serial reference engine that is always correct.
//
// Basic usage:
//
//	// One-shot search
//	start, length := casefold.Find([]byte("STRASSE"), []byte("straße"))
//	// start == 0, length == 7
//
//	// Compile once, search many haystacks
//	s := casefold.Compile([]byte("needle"))
//	for _, doc := range docs {
//	    if s.Contains(doc) { ... }
//	}
//
//	// Several needles in one pass
//	m, err := casefold.CompileMulti([][]byte{[]byte("foo"), []byte("бар")})
//
// Semantics:
//   - A match is reported as a byte offset and byte length in the haystack.
//     The length may differ from the needle's byte length ("ﬁ" in "FILE"
//     reports length 2, against the needle's 3 bytes).
//   - Matches begin and end on codepoint boundaries: searching "s" in "ß"
//     finds nothing, because ß's fold may not be split.
//   - No normalization is applied: combining marks are compared as-is.
//   - Folding is locale-independent: no Turkic dotless-i special casing.
//
// Inputs are assumed to be well-formed UTF-8; behavior on ill-formed input
// is unspecified but memory-safe. All searchers are immutable after
// compilation and safe for concurrent use.
package casefold

import (
	"github.com/coregx/casefold/fold"
	"github.com/coregx/casefold/meta"
	"github.com/coregx/casefold/simd"
)

// NotFound is the start offset reported when a needle is absent.
const NotFound = meta.NotFound

// Find returns the byte offset and byte length of the leftmost
// case-insensitive match of needle in haystack, or (NotFound, 0). The empty
// needle matches at offset 0 with length 0.
//
// For repeated searches with the same needle, Compile amortizes the needle
// analysis.
func Find(haystack, needle []byte) (int, int) {
	return meta.Compile(needle).Find(haystack)
}

// Contains reports whether haystack contains a case-insensitive match of
// needle.
func Contains(haystack, needle []byte) bool {
	start, _ := Find(haystack, needle)
	return start != NotFound
}

// Fold returns the full case folding of src as a new slice. The result is
// well-formed UTF-8, idempotent (Fold(Fold(s)) == Fold(s)) and at most
// three times the input length.
func Fold(src []byte) []byte {
	return fold.Bytes(src)
}

// FoldInto writes the full case folding of src into dst and returns the
// number of bytes written. The caller must provide len(dst) >= 3*len(src).
func FoldInto(dst, src []byte) int {
	return fold.AppendTo(dst, src)
}

// Compare orders a and b by their folded images, returning -1, 0 or +1 in
// the manner of bytes.Compare. Compare(a, b) == 0 exactly when a and b are
// case-insensitively equal.
func Compare(a, b []byte) int {
	return fold.Compare(a, b)
}

// EqualFold reports whether a and b are equal under full case folding.
// Unlike bytes.EqualFold, this applies full (one-to-many) folding, so
// "straße" equals "STRASSE".
func EqualFold(a, b []byte) bool {
	return fold.Equal(a, b)
}

// IsCaseAgnostic reports whether every codepoint of s folds to itself and
// is not the fold target of any other codepoint. For such strings,
// case-insensitive search equals plain byte search, and the engine uses
// that fast path automatically.
func IsCaseAgnostic(s []byte) bool {
	if simd.IsASCII(s) {
		return simd.IndexASCIILetter(s) < 0
	}
	return fold.IsCaseAgnostic(s)
}

// Searcher is a compiled case-insensitive searcher for one needle.
// It is immutable and safe for concurrent use.
type Searcher struct {
	engine *meta.Engine
}

// Match is one search hit: a byte offset and byte length in the haystack.
type Match = meta.Match

// Compile analyzes needle once and returns a Searcher for it. Compilation
// cannot fail: every byte sequence is a valid needle.
func Compile(needle []byte) *Searcher {
	return &Searcher{engine: meta.Compile(needle)}
}

// CompileString is Compile for a string needle.
func CompileString(needle string) *Searcher {
	return Compile([]byte(needle))
}

// Needle returns the needle this searcher was compiled from.
func (s *Searcher) Needle() []byte { return s.engine.Needle() }

// Find returns the leftmost match in haystack as (start, length), or
// (NotFound, 0).
func (s *Searcher) Find(haystack []byte) (int, int) {
	return s.engine.Find(haystack)
}

// FindFrom is Find constrained to matches starting at or after from, which
// must lie on a codepoint boundary.
func (s *Searcher) FindFrom(haystack []byte, from int) (int, int) {
	return s.engine.FindFrom(haystack, from)
}

// FindAll returns the non-overlapping leftmost matches in haystack, at most
// limit of them (all when limit < 0).
func (s *Searcher) FindAll(haystack []byte, limit int) []Match {
	return s.engine.FindAll(haystack, limit)
}

// Contains reports whether haystack contains the needle.
func (s *Searcher) Contains(haystack []byte) bool {
	return s.engine.IsMatch(haystack)
}

// MultiSearcher searches for any of several needles in one pass over the
// haystack, using an Aho-Corasick automaton over the folded image.
type MultiSearcher struct {
	engine *meta.MultiEngine
}

// MultiMatch is one hit of a MultiSearcher: the haystack span plus the
// index of the needle that matched.
type MultiMatch = meta.MultiMatch

// CompileMulti builds a MultiSearcher from the needle set. It fails on an
// empty set or an empty needle.
func CompileMulti(needles [][]byte) (*MultiSearcher, error) {
	engine, err := meta.CompileMulti(needles)
	if err != nil {
		return nil, err
	}
	return &MultiSearcher{engine: engine}, nil
}

// Find returns the leftmost hit of any needle, or ok=false.
func (m *MultiSearcher) Find(haystack []byte) (MultiMatch, bool) {
	return m.engine.Find(haystack)
}

// FindAll returns all non-overlapping hits in order, at most limit (all
// when limit < 0).
func (m *MultiSearcher) FindAll(haystack []byte, limit int) []MultiMatch {
	return m.engine.FindAll(haystack, limit)
}
