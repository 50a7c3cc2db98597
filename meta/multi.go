package meta

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/casefold/fold"
	"github.com/coregx/casefold/internal/conv"
)

// MultiEngine searches for any of several needles case-insensitively in a
// single pass.
//
// All needles are folded at compile time and loaded into an Aho-Corasick
// automaton. At search time the haystack is folded once into a pooled
// buffer together with a map from folded bytes back to source codepoints;
// the automaton scans the folded image and hits are translated back to
// source byte coordinates. Hits that begin or end inside a one-to-many
// expansion are rejected and the scan resumes, preserving the single-needle
// engines' boundary semantics.
//
// A MultiEngine is safe for concurrent use; per-search buffers come from an
// internal pool.
type MultiEngine struct {
	needles [][]byte
	auto    *ahocorasick.Automaton

	// patternOf maps a folded pattern image to the index of the first
	// needle that folds to it, for reporting which needle matched.
	patternOf map[string]int

	pool sync.Pool
}

// multiState is the pooled per-search scratch: the folded haystack, and for
// every folded byte the start and end of its source codepoint plus whether
// it is the first folded byte of that codepoint.
type multiState struct {
	folded []byte
	srcLo  []int32
	srcHi  []int32
	first  []bool
}

// MultiMatch is one hit of a MultiEngine search.
type MultiMatch struct {
	Start   int // byte offset of the match in the haystack
	Len     int // matched byte length in the haystack
	Pattern int // index of the matched needle in the compiled set
}

// CompileMulti builds a MultiEngine from the needle set. Empty needles are
// rejected; the automaton builder's errors are passed through.
func CompileMulti(needles [][]byte) (*MultiEngine, error) {
	if len(needles) == 0 {
		return nil, fmt.Errorf("casefold: empty needle set")
	}
	m := &MultiEngine{
		needles:   make([][]byte, len(needles)),
		patternOf: make(map[string]int, len(needles)),
	}
	builder := ahocorasick.NewBuilder()
	for i, n := range needles {
		if len(n) == 0 {
			return nil, fmt.Errorf("casefold: needle %d is empty", i)
		}
		m.needles[i] = append([]byte(nil), n...)
		folded := fold.Bytes(n)
		if _, dup := m.patternOf[string(folded)]; !dup {
			m.patternOf[string(folded)] = i
		}
		builder.AddPattern(folded)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("casefold: building automaton: %w", err)
	}
	m.auto = auto
	m.pool.New = func() any { return new(multiState) }
	return m, nil
}

// Needles returns the compiled needle set.
func (m *MultiEngine) Needles() [][]byte { return m.needles }

// Find returns the leftmost hit of any needle, or ok=false.
func (m *MultiEngine) Find(haystack []byte) (MultiMatch, bool) {
	st := m.pool.Get().(*multiState)
	defer m.pool.Put(st)
	st.fill(haystack)

	at := 0
	for {
		hit := m.auto.Find(st.folded, at)
		if hit == nil {
			return MultiMatch{}, false
		}
		// The hit must begin on the first folded byte of a source
		// codepoint and end on a source codepoint's last folded byte;
		// otherwise it lies inside an expansion.
		endOK := hit.End == len(st.folded) || st.first[hit.End]
		if st.first[hit.Start] && endOK {
			start := int(st.srcLo[hit.Start])
			end := int(st.srcHi[hit.End-1])
			pattern := m.patternOf[string(st.folded[hit.Start:hit.End])]
			return MultiMatch{Start: start, Len: end - start, Pattern: pattern}, true
		}
		at = hit.Start + 1
	}
}

// FindAll returns all non-overlapping hits in source order, at most limit
// (all when limit < 0).
func (m *MultiEngine) FindAll(haystack []byte, limit int) []MultiMatch {
	st := m.pool.Get().(*multiState)
	defer m.pool.Put(st)
	st.fill(haystack)

	var out []MultiMatch
	at := 0
	for limit < 0 || len(out) < limit {
		hit := m.auto.Find(st.folded, at)
		if hit == nil {
			break
		}
		endOK := hit.End == len(st.folded) || st.first[hit.End]
		if !st.first[hit.Start] || !endOK {
			at = hit.Start + 1
			continue
		}
		start := int(st.srcLo[hit.Start])
		end := int(st.srcHi[hit.End-1])
		pattern := m.patternOf[string(st.folded[hit.Start:hit.End])]
		out = append(out, MultiMatch{Start: start, Len: end - start, Pattern: pattern})
		at = hit.End
	}
	return out
}

// fill folds haystack into the state's buffers.
func (st *multiState) fill(haystack []byte) {
	st.folded = st.folded[:0]
	st.srcLo = st.srcLo[:0]
	st.srcHi = st.srcHi[:0]
	st.first = st.first[:0]

	var it fold.Iter
	it.Init(haystack)
	var enc [4]byte
	for {
		r, ok := it.Next()
		if !ok {
			return
		}
		n := utf8.EncodeRune(enc[:], r)
		for i := 0; i < n; i++ {
			st.folded = append(st.folded, enc[i])
			st.srcLo = append(st.srcLo, conv.IntToInt32(it.SourceStart()))
			st.srcHi = append(st.srcHi, conv.IntToInt32(it.SourceEnd()))
			st.first = append(st.first, i == 0 && it.FirstOfSource())
		}
	}
}
