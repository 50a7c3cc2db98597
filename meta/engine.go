// Package meta implements the top-level dispatcher for case-insensitive
// search: it analyzes a needle once, selects an execution strategy, and
// coordinates the byte-search fast path, the script kernels and the serial
// reference engine behind one interface.
//
// An Engine is immutable after Compile and safe for concurrent use from any
// number of goroutines; per-search state lives on the callers' stacks.
package meta

import (
	"github.com/coregx/casefold/fold"
	"github.com/coregx/casefold/kernel"
	"github.com/coregx/casefold/serial"
	"github.com/coregx/casefold/simd"
	"github.com/coregx/casefold/window"
)

// NotFound is the match start reported when the needle is absent.
const NotFound = serial.NotFound

// Engine is a compiled case-insensitive searcher for one needle.
type Engine struct {
	needle   []byte
	strategy Strategy
	kern     *kernel.Kernel
}

// Compile analyzes needle and builds its engine with the default
// configuration.
func Compile(needle []byte) *Engine {
	return CompileWithConfig(needle, DefaultConfig())
}

// CompileWithConfig is Compile with explicit tuning.
func CompileWithConfig(needle []byte, config Config) *Engine {
	e := &Engine{needle: append([]byte(nil), needle...)}

	switch {
	case len(needle) == 0:
		e.strategy = UseEmpty
	case isCaseAgnostic(needle):
		e.strategy = UseByteSearch
	case !config.EnableKernels || !kernel.Available():
		e.strategy = UseSerial
	default:
		e.strategy = UseSerial
		if len(needle) <= config.ShortNeedleBytes {
			// Short path: the first class that accepts the whole needle
			// wins; the full needle is the window, there is no head or
			// tail to verify.
			for c := window.Class(0); c < window.NumClasses; c++ {
				if window.Allowed(e.needle, c) {
					e.kern = kernel.Compile(c, e.needle, window.Whole(e.needle))
					e.strategy = UseKernel
					break
				}
			}
		}
		if e.strategy != UseKernel {
			a := window.Analyze(e.needle)
			if c, w, ok := a.Best(); ok {
				e.kern = kernel.Compile(c, e.needle, w)
				e.strategy = UseKernel
			}
		}
	}
	return e
}

// isCaseAgnostic is the classifier with its SWAR ASCII pre-screen: a pure
// ASCII input is case-agnostic exactly when it contains no letter, with no
// decoding at all.
func isCaseAgnostic(s []byte) bool {
	if simd.IsASCII(s) {
		return simd.IndexASCIILetter(s) < 0
	}
	return fold.IsCaseAgnostic(s)
}

// Needle returns the needle this engine was compiled from.
func (e *Engine) Needle() []byte { return e.needle }

// Strategy returns the selected execution strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Find returns the leftmost match as (start, length) in haystack bytes.
// start is NotFound when the needle is absent; length can differ from the
// needle's byte length because of one-to-many folds.
func (e *Engine) Find(haystack []byte) (int, int) {
	return e.FindFrom(haystack, 0)
}

// FindFrom is Find constrained to matches starting at or after byte offset
// from, which must lie on a codepoint boundary.
func (e *Engine) FindFrom(haystack []byte, from int) (int, int) {
	var start, length int
	switch e.strategy {
	case UseEmpty:
		if from > len(haystack) {
			return NotFound, 0
		}
		return from, 0
	case UseByteSearch:
		idx := simd.Memmem(haystack[minInt(from, len(haystack)):], e.needle)
		if idx < 0 {
			return NotFound, 0
		}
		return from + idx, len(e.needle)
	case UseKernel:
		start, length = e.kern.FindFrom(haystack, from)
	default:
		start, length = serial.FindFrom(haystack, e.needle, from)
	}
	if verifyEnabled {
		crossCheck(haystack, e.needle, from, start, length)
	}
	return start, length
}

// IsMatch reports whether haystack contains the needle.
func (e *Engine) IsMatch(haystack []byte) bool {
	start, _ := e.Find(haystack)
	return start != NotFound
}

// Match is one search hit in haystack byte coordinates.
type Match struct {
	Start int
	Len   int
}

// FindAll returns the non-overlapping leftmost matches, at most limit of
// them (all when limit < 0). Empty matches advance by one codepoint so the
// scan always terminates.
func (e *Engine) FindAll(haystack []byte, limit int) []Match {
	var out []Match
	from := 0
	for limit < 0 || len(out) < limit {
		start, length := e.FindFrom(haystack, from)
		if start == NotFound {
			break
		}
		out = append(out, Match{Start: start, Len: length})
		if length == 0 {
			if start >= len(haystack) {
				break
			}
			_, size := fold.DecodeRune(haystack[start:])
			from = start + size
		} else {
			from = start + length
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
