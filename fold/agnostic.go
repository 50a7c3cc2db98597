package fold

// IsCaseAgnostic reports whether every codepoint of s folds to itself and is
// not produced by the fold of any other codepoint.
//
// When this holds, case-insensitive search for s degenerates to plain byte
// search: no haystack codepoint can fold into any part of s, and s folds to
// itself. The search engine uses this as its byte-identical fast path.
//
// Both clauses matter: a lowercase letter such as 'a' folds to itself but is
// still the fold target of 'A', so it is not case-agnostic. The second clause
// is implemented as membership in the cased ranges of the bicameral scripts
// plus the runes that occur inside one-to-many expansions (ʼ in ŉ's fold,
// the combining marks of İ, ǰ and the Greek expansions).
//
// This is the scalar back-end: each non-ASCII codepoint is decoded. The meta
// engine pre-screens pure-ASCII inputs with a wider scan before falling back
// here.
func IsCaseAgnostic(s []byte) bool {
	for i := 0; i < len(s); {
		b := s[i]
		if b < 0x80 {
			if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' {
				return false
			}
			i++
			continue
		}
		r, size := DecodeRune(s[i:])
		if isCased(r) {
			return false
		}
		i += size
	}
	return true
}

// isCased reports whether r participates in case folding: as a fold source,
// a fold target, or a rune of an expansion. The ranges cover the cased parts
// of every bicameral script in Unicode 17. Whole blocks are listed where the
// block is overwhelmingly cased; isolated targets are listed individually.
func isCased(r rune) bool {
	if r < 0x100 {
		// Latin-1 Supplement: letters plus µ. Punctuation, signs and the
		// two arithmetic operators pass.
		switch {
		case r == 0xB5:
			return true
		case r >= 0xC0 && r <= 0xF6 && r != 0xD7:
			return true
		case r >= 0xF8:
			return true
		}
		return false
	}
	if r < 0x3000 {
		switch {
		case r <= 0x2AF: // Latin Extended-A/B, IPA Extensions
			return true
		case r == 0x2BC, r == 0x2BE: // expansion components (ŉ, ẚ)
			return true
		case r >= 0x300 && r <= 0x36F: // combining marks used by expansions
			return true
		case r >= 0x370 && r <= 0x3FF: // Greek and Coptic
			return true
		case r >= 0x400 && r <= 0x52F: // Cyrillic, Cyrillic Supplement
			return true
		case r >= 0x530 && r <= 0x58F: // Armenian
			return true
		case r >= 0x10A0 && r <= 0x10FF: // Georgian
			return true
		case r >= 0x13A0 && r <= 0x13FD: // Cherokee
			return true
		case r >= 0x1C80 && r <= 0x1CBF: // Cyrillic Ext-C, Georgian Ext
			return true
		case r == 0x1D79, r == 0x1D7D, r == 0x1D8E: // phonetic fold targets
			return true
		case r >= 0x1E00 && r <= 0x1FFF: // Latin Ext Additional, Greek Ext
			return true
		case r == 0x2126, r == 0x212A, r == 0x212B: // Ω K Å
			return true
		case r == 0x2132, r == 0x214E: // Ⅎ ⅎ
			return true
		case r >= 0x2160 && r <= 0x217F: // Roman numerals
			return true
		case r == 0x2183, r == 0x2184:
			return true
		case r >= 0x24B6 && r <= 0x24E9: // circled letters
			return true
		case r >= 0x2C00 && r <= 0x2CFF: // Glagolitic, Latin Ext-C, Coptic
			return true
		case r >= 0x2D00 && r <= 0x2D2D: // Georgian Mkhedruli extensions
			return true
		}
		return false
	}
	switch {
	case r >= 0xA640 && r <= 0xA69F: // Cyrillic Extended-B
		return true
	case r >= 0xA722 && r <= 0xA7FF: // Latin Extended-D
		return true
	case r == 0xAB53: // ꭓ, fold target of Ꭓ
		return true
	case r >= 0xAB70 && r <= 0xABBF: // Cherokee Supplement
		return true
	case r >= 0xFB00 && r <= 0xFB17: // ligature presentation forms
		return true
	case r >= 0xFF21 && r <= 0xFF3A, r >= 0xFF41 && r <= 0xFF5A: // fullwidth
		return true
	case r >= 0x10400 && r <= 0x1044F: // Deseret
		return true
	case r >= 0x104B0 && r <= 0x104FB: // Osage
		return true
	case r >= 0x10570 && r <= 0x105BC: // Vithkuqi
		return true
	case r >= 0x10C80 && r <= 0x10CFF: // Old Hungarian
		return true
	case r >= 0x10D50 && r <= 0x10D85: // Garay
		return true
	case r >= 0x118A0 && r <= 0x118DF: // Warang Citi
		return true
	case r >= 0x16E40 && r <= 0x16E7F: // Medefaidrin
		return true
	case r >= 0x16EA0 && r <= 0x16ED3: // Beria Erfe
		return true
	case r >= 0x1E900 && r <= 0x1E943: // Adlam
		return true
	}
	return false
}
