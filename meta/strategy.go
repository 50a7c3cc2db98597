package meta

// Strategy is the execution strategy the engine selects for a needle.
//
// Selection is automatic at compile time from the needle's shape; every
// strategy produces bit-identical results, they differ only in throughput.
type Strategy int

const (
	// UseEmpty handles the empty needle: a match at the search origin with
	// length zero, no scanning at all.
	UseEmpty Strategy = iota

	// UseByteSearch is the case-agnostic fast path. Selected when every
	// needle codepoint folds to itself and is not a fold target, so
	// case-insensitive search degenerates to plain byte search and the
	// matched length always equals the needle's byte length.
	UseByteSearch

	// UseKernel runs a script-specialized block kernel. Selected when the
	// CPU backend is available and the analyzer finds a usable safe window:
	//   - short needles (<= 16 bytes) accepted whole by a class allowance
	//     predicate, probed on first/middle/last codepoint
	//   - longer needles filtered on their longest safe window, with head
	//     and tail verified through the fold iterator
	UseKernel

	// UseSerial runs the reference engine directly. Selected for needle
	// shapes no kernel can filter (no safe window, every character aliased
	// by expansions) and on CPUs without the block backend.
	UseSerial
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseEmpty:
		return "UseEmpty"
	case UseByteSearch:
		return "UseByteSearch"
	case UseKernel:
		return "UseKernel"
	case UseSerial:
		return "UseSerial"
	}
	return "Unknown"
}
