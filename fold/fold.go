// Package fold implements locale-independent Unicode case folding (Unicode 17,
// CaseFolding.txt, default full folding) and the primitives built on it:
// a folded-rune iterator, a case-agnostic classifier, a streaming folder and
// a case-insensitive comparator.
//
// Folding is potentially one-to-many: a single codepoint may fold to up to
// three codepoints (ß → "ss", ﬃ → "ffi", ΐ → ι ̈ ́). All operations are pure
// functions of their inputs: no global state, no caches, no allocation.
// Any number of goroutines may call into this package concurrently.
//
// Inputs are assumed to be well-formed UTF-8. Decoding is defensive: an
// impossible lead byte is treated as a single self-folding unit, so partial
// output stays well-formed, but behavior on invalid input is otherwise
// unspecified.
package fold

// MaxExpansion is the maximum number of codepoints a single codepoint can
// fold to (full case folding, Unicode 17).
const MaxExpansion = 3

// Rune writes the full case folding of r into buf and returns the number of
// folded codepoints (1, 2 or 3). Codepoints that are not fold sources map to
// themselves with count 1.
//
// The table is organized hierarchically by UTF-8 encoded width so the common
// narrow cases exit early: ASCII, then two-byte, three-byte and four-byte
// codepoints. Within each tier, contiguous offset ranges and parity ranges
// are tested before the irregular one-to-one and one-to-many tables.
//
// The function is total: it never fails and never writes more than three
// runes.
func Rune(r rune, buf *[MaxExpansion]rune) int {
	if r < 0x80 {
		if r >= 'A' && r <= 'Z' {
			buf[0] = r + 0x20
			return 1
		}
		buf[0] = r
		return 1
	}
	if r < 0x800 {
		return fold2(r, buf)
	}
	if r < 0x10000 {
		return fold3(r, buf)
	}
	return fold4(r, buf)
}

// one is a helper for the common single-rune result.
func one(r rune, buf *[MaxExpansion]rune) int {
	buf[0] = r
	return 1
}

func two(a, b rune, buf *[MaxExpansion]rune) int {
	buf[0] = a
	buf[1] = b
	return 2
}

func three(a, b, c rune, buf *[MaxExpansion]rune) int {
	buf[0] = a
	buf[1] = b
	buf[2] = c
	return 3
}

// fold2 folds codepoints encoded in two UTF-8 bytes (U+0080..U+07FF).
func fold2(r rune, buf *[MaxExpansion]rune) int {
	switch {
	// Latin-1 Supplement uppercase À..Þ, excluding the multiplication sign.
	case r >= 0xC0 && r <= 0xDE && r != 0xD7:
		return one(r+0x20, buf)

	// Greek Α..Ρ and Σ..Ϋ.
	case r >= 0x391 && r <= 0x3A1:
		return one(r+0x20, buf)
	case r >= 0x3A3 && r <= 0x3AB:
		return one(r+0x20, buf)

	// Cyrillic А..Я.
	case r >= 0x410 && r <= 0x42F:
		return one(r+0x20, buf)

	// Cyrillic Ѐ..Џ.
	case r >= 0x400 && r <= 0x40F:
		return one(r+0x50, buf)

	// Armenian Ա..Ֆ.
	case r >= 0x531 && r <= 0x556:
		return one(r+0x30, buf)

	// Greek accented capitals (short +0x25 / +0x26 / +0x40-ish offsets).
	case r == 0x386:
		return one(0x3AC, buf)
	case r >= 0x388 && r <= 0x38A:
		return one(r+0x25, buf)
	case r == 0x38C:
		return one(0x3CC, buf)
	case r == 0x38E || r == 0x38F:
		return one(r+0x3F, buf)

	// Greek lunate/archaic capitals −0x82 into the 0x37x block.
	case r >= 0x3FD && r <= 0x3FF:
		return one(r-0x82, buf)
	}

	// Parity ranges: every second codepoint is uppercase and folds +1.
	switch {
	case r >= 0x100 && r <= 0x12F, r >= 0x132 && r <= 0x137,
		r >= 0x14A && r <= 0x177:
		// Latin Extended-A, uppercase at even codepoints. İ (U+0130) is
		// carved out: it expands rather than folding by parity.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x139 && r <= 0x148, r >= 0x179 && r <= 0x17E:
		// Latin Extended-A, uppercase at odd codepoints.
		if r&1 == 1 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x1A0 && r <= 0x1A5, r >= 0x1DE && r <= 0x1EF,
		r >= 0x1F8 && r <= 0x21F, r >= 0x222 && r <= 0x233,
		r >= 0x246 && r <= 0x24F:
		// Latin Extended-B even-uppercase stretches.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x1CD && r <= 0x1DC:
		// Latin Extended-B odd-uppercase stretch (Ǎ..ǜ).
		if r&1 == 1 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x3D8 && r <= 0x3EF:
		// Greek archaic (Ϙ..ϯ), uppercase at even codepoints.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x460 && r <= 0x481, r >= 0x48A && r <= 0x4BF,
		r >= 0x4D0 && r <= 0x52F:
		// Cyrillic historic and extended, uppercase at even codepoints.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x4C1 && r <= 0x4CE:
		// Cyrillic Ӂ..ӎ, uppercase at odd codepoints.
		if r&1 == 1 {
			return one(r+1, buf)
		}
		return one(r, buf)
	}

	// Irregular one-to-one mappings and one-to-many expansions.
	switch r {
	case 0xB5: // µ MICRO SIGN
		return one(0x3BC, buf)
	case 0xDF: // ß
		return two('s', 's', buf)
	case 0x130: // İ LATIN CAPITAL LETTER I WITH DOT ABOVE
		return two('i', 0x307, buf)
	case 0x149: // ŉ
		return two(0x2BC, 'n', buf)
	case 0x178: // Ÿ
		return one(0xFF, buf)
	case 0x17F: // ſ LATIN SMALL LETTER LONG S
		return one('s', buf)
	case 0x181:
		return one(0x253, buf)
	case 0x182, 0x184, 0x187, 0x18B, 0x191, 0x198, 0x1A7, 0x1AC,
		0x1AF, 0x1B3, 0x1B5, 0x1B8, 0x1BC, 0x1F4, 0x23B, 0x241:
		return one(r+1, buf)
	case 0x186:
		return one(0x254, buf)
	case 0x189, 0x18A:
		return one(r+0xCD, buf) // Ɖ Ɗ → ɖ ɗ
	case 0x18E:
		return one(0x1DD, buf)
	case 0x18F:
		return one(0x259, buf)
	case 0x190:
		return one(0x25B, buf)
	case 0x193:
		return one(0x260, buf)
	case 0x194:
		return one(0x263, buf)
	case 0x196:
		return one(0x269, buf)
	case 0x197:
		return one(0x268, buf)
	case 0x19C:
		return one(0x26F, buf)
	case 0x19D:
		return one(0x272, buf)
	case 0x19F:
		return one(0x275, buf)
	case 0x1A6:
		return one(0x280, buf)
	case 0x1A9:
		return one(0x283, buf)
	case 0x1AE:
		return one(0x288, buf)
	case 0x1B1, 0x1B2:
		return one(r+0xD9, buf) // Ʊ Ʋ → ʊ ʋ
	case 0x1B7:
		return one(0x292, buf)
	case 0x1C4, 0x1C5: // Ǆ ǅ digraphs
		return one(0x1C6, buf)
	case 0x1C7, 0x1C8:
		return one(0x1C9, buf)
	case 0x1CA, 0x1CB:
		return one(0x1CC, buf)
	case 0x1F0: // ǰ
		return two('j', 0x30C, buf)
	case 0x1F1, 0x1F2: // Ǳ ǲ
		return one(0x1F3, buf)
	case 0x1F6:
		return one(0x195, buf)
	case 0x1F7:
		return one(0x1BF, buf)
	case 0x220:
		return one(0x19E, buf)
	case 0x23A:
		return one(0x2C65, buf)
	case 0x23D:
		return one(0x19A, buf)
	case 0x23E:
		return one(0x2C66, buf)
	case 0x243:
		return one(0x180, buf)
	case 0x244:
		return one(0x289, buf)
	case 0x245:
		return one(0x28C, buf)
	case 0x345: // ͅ COMBINING GREEK YPOGEGRAMMENI
		return one(0x3B9, buf)
	case 0x370, 0x372, 0x376:
		return one(r+1, buf)
	case 0x37F:
		return one(0x3F3, buf)
	case 0x390: // ΐ
		return three(0x3B9, 0x308, 0x301, buf)
	case 0x3B0: // ΰ
		return three(0x3C5, 0x308, 0x301, buf)
	case 0x3C2: // ς final sigma
		return one(0x3C3, buf)
	case 0x3CF:
		return one(0x3D7, buf)
	case 0x3D0: // ϐ
		return one(0x3B2, buf)
	case 0x3D1: // ϑ
		return one(0x3B8, buf)
	case 0x3D5: // ϕ
		return one(0x3C6, buf)
	case 0x3D6: // ϖ
		return one(0x3C0, buf)
	case 0x3F0: // ϰ
		return one(0x3BA, buf)
	case 0x3F1: // ϱ
		return one(0x3C1, buf)
	case 0x3F4: // ϴ
		return one(0x3B8, buf)
	case 0x3F5: // ϵ
		return one(0x3B5, buf)
	case 0x3F7:
		return one(0x3F8, buf)
	case 0x3F9: // Ϲ lunate sigma
		return one(0x3F2, buf)
	case 0x3FA:
		return one(0x3FB, buf)
	case 0x4C0: // Ӏ palochka
		return one(0x4CF, buf)
	case 0x587: // և ARMENIAN SMALL LIGATURE ECH YIWN
		return two(0x565, 0x582, buf)
	}

	return one(r, buf)
}

// fold3 folds codepoints encoded in three UTF-8 bytes (U+0800..U+FFFF).
func fold3(r rune, buf *[MaxExpansion]rune) int {
	switch {
	// Georgian Asomtavruli Ⴀ..Ⴥ.
	case r >= 0x10A0 && r <= 0x10C5:
		return one(r+0x1C60, buf)
	case r == 0x10C7:
		return one(0x2D27, buf)
	case r == 0x10CD:
		return one(0x2D2D, buf)

	// Cherokee small letters fold to the capital block.
	case r >= 0x13F8 && r <= 0x13FD:
		return one(r-8, buf)
	case r >= 0xAB70 && r <= 0xABBF:
		return one(r-0x97D0, buf)

	// Georgian Mtavruli folds down to Mkhedruli.
	case r >= 0x1C90 && r <= 0x1CBA, r >= 0x1CBD && r <= 0x1CBF:
		return one(r-0xBC0, buf)

	// Greek Extended uppercase −8 ranges.
	case r >= 0x1F08 && r <= 0x1F0F, r >= 0x1F18 && r <= 0x1F1D,
		r >= 0x1F28 && r <= 0x1F2F, r >= 0x1F38 && r <= 0x1F3F,
		r >= 0x1F48 && r <= 0x1F4D, r >= 0x1F68 && r <= 0x1F6F,
		r == 0x1F59, r == 0x1F5B, r == 0x1F5D, r == 0x1F5F,
		r >= 0x1FB8 && r <= 0x1FB9, r >= 0x1FD8 && r <= 0x1FD9,
		r >= 0x1FE8 && r <= 0x1FE9:
		return one(r-8, buf)

	// Greek Extended Ὲ..Ή −86.
	case r >= 0x1FC8 && r <= 0x1FCB:
		return one(r-86, buf)

	// Roman numerals.
	case r >= 0x2160 && r <= 0x216F:
		return one(r+0x10, buf)

	// Circled Latin capitals.
	case r >= 0x24B6 && r <= 0x24CF:
		return one(r+0x1A, buf)

	// Glagolitic.
	case r >= 0x2C00 && r <= 0x2C2F:
		return one(r+0x30, buf)

	// Fullwidth Latin capitals.
	case r >= 0xFF21 && r <= 0xFF3A:
		return one(r+0x20, buf)
	}

	// Parity ranges.
	switch {
	case r >= 0x1E00 && r <= 0x1E95, r >= 0x1EA0 && r <= 0x1EFF:
		// Latin Extended Additional, uppercase at even codepoints.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x2C80 && r <= 0x2CE3:
		// Coptic, uppercase at even codepoints.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0xA640 && r <= 0xA66D, r >= 0xA680 && r <= 0xA69B:
		// Cyrillic Extended-B.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0xA722 && r <= 0xA72F, r >= 0xA732 && r <= 0xA76F,
		r >= 0xA77E && r <= 0xA787, r >= 0xA796 && r <= 0xA7A9,
		r >= 0xA7B4 && r <= 0xA7C3:
		// Latin Extended-D.
		if r&1 == 0 {
			return one(r+1, buf)
		}
		return one(r, buf)
	case r >= 0x1F80 && r <= 0x1F87:
		// ᾀ..ᾇ ypogegrammeni combinations → alpha base + ι.
		return two(r-0x80, 0x3B9, buf)
	case r >= 0x1F88 && r <= 0x1F8F:
		return two(r-0x88, 0x3B9, buf)
	case r >= 0x1F90 && r <= 0x1F97:
		// ᾐ..ᾗ → eta base + ι.
		return two(r-0x70, 0x3B9, buf)
	case r >= 0x1F98 && r <= 0x1F9F:
		return two(r-0x78, 0x3B9, buf)
	case r >= 0x1FA0 && r <= 0x1FA7:
		// ᾠ..ᾧ → omega base + ι.
		return two(r-0x40, 0x3B9, buf)
	case r >= 0x1FA8 && r <= 0x1FAF:
		return two(r-0x48, 0x3B9, buf)
	}

	// Irregulars: letterlike symbols, Latin Extended-C/D scattered mappings,
	// Georgian and Cyrillic historic letters, ligature presentation forms,
	// Greek Extended iota-subscript combinations.
	switch r {
	case 0x1C80: // ᲀ CYRILLIC SMALL LETTER ROUNDED VE
		return one(0x432, buf)
	case 0x1C81:
		return one(0x434, buf)
	case 0x1C82:
		return one(0x43E, buf)
	case 0x1C83:
		return one(0x441, buf)
	case 0x1C84, 0x1C85:
		return one(0x442, buf)
	case 0x1C86:
		return one(0x44A, buf)
	case 0x1C87:
		return one(0x463, buf)
	case 0x1C88:
		return one(0xA64B, buf)
	case 0x1C89:
		return one(0x1C8A, buf)

	case 0x1E9B: // ẛ
		return one(0x1E61, buf)
	case 0x1E96: // ẖ
		return two('h', 0x331, buf)
	case 0x1E97: // ẗ
		return two('t', 0x308, buf)
	case 0x1E98: // ẘ
		return two('w', 0x30A, buf)
	case 0x1E99: // ẙ
		return two('y', 0x30A, buf)
	case 0x1E9A: // ẚ
		return two('a', 0x2BE, buf)
	case 0x1E9E: // ẞ
		return two('s', 's', buf)

	case 0x1FB2:
		return two(0x1F70, 0x3B9, buf)
	case 0x1FB3:
		return two(0x3B1, 0x3B9, buf)
	case 0x1FB4:
		return two(0x3AC, 0x3B9, buf)
	case 0x1FB6:
		return two(0x3B1, 0x342, buf)
	case 0x1FB7:
		return three(0x3B1, 0x342, 0x3B9, buf)
	case 0x1FBA:
		return one(0x1F70, buf)
	case 0x1FBB:
		return one(0x1F71, buf)
	case 0x1FBC: // ᾼ
		return two(0x3B1, 0x3B9, buf)
	case 0x1FBE: // ι PROSGEGRAMMENI
		return one(0x3B9, buf)
	case 0x1FC2:
		return two(0x1F74, 0x3B9, buf)
	case 0x1FC3:
		return two(0x3B7, 0x3B9, buf)
	case 0x1FC4:
		return two(0x3AE, 0x3B9, buf)
	case 0x1FC6:
		return two(0x3B7, 0x342, buf)
	case 0x1FC7:
		return three(0x3B7, 0x342, 0x3B9, buf)
	case 0x1FCC: // ῌ
		return two(0x3B7, 0x3B9, buf)
	case 0x1FD2:
		return three(0x3B9, 0x308, 0x300, buf)
	case 0x1FD3:
		return three(0x3B9, 0x308, 0x301, buf)
	case 0x1FD6:
		return two(0x3B9, 0x342, buf)
	case 0x1FD7:
		return three(0x3B9, 0x308, 0x342, buf)
	case 0x1FDA:
		return one(0x1F76, buf)
	case 0x1FDB:
		return one(0x1F77, buf)
	case 0x1FE2:
		return three(0x3C5, 0x308, 0x300, buf)
	case 0x1FE3:
		return three(0x3C5, 0x308, 0x301, buf)
	case 0x1FE4:
		return two(0x3C1, 0x313, buf)
	case 0x1FE6:
		return two(0x3C5, 0x342, buf)
	case 0x1FE7:
		return three(0x3C5, 0x308, 0x342, buf)
	case 0x1FEA:
		return one(0x1F7A, buf)
	case 0x1FEB:
		return one(0x1F7B, buf)
	case 0x1FEC: // Ῥ
		return one(0x1FE5, buf)
	case 0x1FF2:
		return two(0x1F7C, 0x3B9, buf)
	case 0x1FF3:
		return two(0x3C9, 0x3B9, buf)
	case 0x1FF4:
		return two(0x3CE, 0x3B9, buf)
	case 0x1FF6:
		return two(0x3C9, 0x342, buf)
	case 0x1FF7:
		return three(0x3C9, 0x342, 0x3B9, buf)
	case 0x1FF8:
		return one(0x1F78, buf)
	case 0x1FF9:
		return one(0x1F79, buf)
	case 0x1FFA:
		return one(0x1F7C, buf)
	case 0x1FFB:
		return one(0x1F7D, buf)
	case 0x1FFC: // ῼ
		return two(0x3C9, 0x3B9, buf)

	case 0x2126: // Ω OHM SIGN
		return one(0x3C9, buf)
	case 0x212A: // K KELVIN SIGN
		return one('k', buf)
	case 0x212B: // Å ANGSTROM SIGN
		return one(0xE5, buf)
	case 0x2132: // Ⅎ
		return one(0x214E, buf)
	case 0x2183: // Ↄ
		return one(0x2184, buf)

	case 0x2C60, 0x2C72, 0x2C75, 0x2CEB, 0x2CED, 0x2CF2:
		return one(r+1, buf)
	case 0x2C62: // Ɫ
		return one(0x26B, buf)
	case 0x2C63: // Ᵽ
		return one(0x1D7D, buf)
	case 0x2C64: // Ɽ
		return one(0x27D, buf)
	case 0x2C67, 0x2C69, 0x2C6B:
		return one(r+1, buf)
	case 0x2C6D: // Ɑ
		return one(0x251, buf)
	case 0x2C6E: // Ɱ
		return one(0x271, buf)
	case 0x2C6F: // Ɐ
		return one(0x250, buf)
	case 0x2C70: // Ɒ
		return one(0x252, buf)
	case 0x2C7E, 0x2C7F: // Ȿ Ɀ
		return one(r-0x2A3F, buf)

	case 0xA779, 0xA77B, 0xA78B, 0xA790, 0xA792, 0xA7C7, 0xA7C9,
		0xA7D0, 0xA7D6, 0xA7D8, 0xA7F5:
		return one(r+1, buf)
	case 0xA77D: // Ᵹ
		return one(0x1D79, buf)
	case 0xA78D: // Ɥ
		return one(0x265, buf)
	case 0xA7AA: // Ɦ
		return one(0x266, buf)
	case 0xA7AB: // Ɜ
		return one(0x25C, buf)
	case 0xA7AC: // Ɡ
		return one(0x261, buf)
	case 0xA7AD: // Ɬ
		return one(0x26C, buf)
	case 0xA7AE: // Ɪ
		return one(0x26A, buf)
	case 0xA7B0: // Ʞ
		return one(0x29E, buf)
	case 0xA7B1: // Ʇ
		return one(0x287, buf)
	case 0xA7B2: // Ʝ
		return one(0x29D, buf)
	case 0xA7B3: // Ꭓ
		return one(0xAB53, buf)
	case 0xA7C4: // Ꞔ
		return one(0xA794, buf)
	case 0xA7C5: // Ʂ
		return one(0x282, buf)
	case 0xA7C6: // Ᶎ
		return one(0x1D8E, buf)
	case 0xA7CB: // Ɤ
		return one(0x264, buf)
	case 0xA7CC:
		return one(0xA7CD, buf)
	case 0xA7DC: // Ƛ
		return one(0x19B, buf)

	// Latin ligatures.
	case 0xFB00: // ﬀ
		return two('f', 'f', buf)
	case 0xFB01: // ﬁ
		return two('f', 'i', buf)
	case 0xFB02: // ﬂ
		return two('f', 'l', buf)
	case 0xFB03: // ﬃ
		return three('f', 'f', 'i', buf)
	case 0xFB04: // ﬄ
		return three('f', 'f', 'l', buf)
	case 0xFB05, 0xFB06: // ﬅ ﬆ
		return two('s', 't', buf)

	// Armenian ligatures.
	case 0xFB13: // ﬓ
		return two(0x574, 0x576, buf)
	case 0xFB14: // ﬔ
		return two(0x574, 0x565, buf)
	case 0xFB15: // ﬕ
		return two(0x574, 0x56B, buf)
	case 0xFB16: // ﬖ
		return two(0x57E, 0x576, buf)
	case 0xFB17: // ﬗ
		return two(0x574, 0x56D, buf)
	}

	return one(r, buf)
}

// fold4 folds codepoints encoded in four UTF-8 bytes (U+10000..U+10FFFF).
// These are all single-range offset folds plus two isolated Vithkuqi entries.
func fold4(r rune, buf *[MaxExpansion]rune) int {
	switch {
	// Deseret.
	case r >= 0x10400 && r <= 0x10427:
		return one(r+0x28, buf)
	// Osage.
	case r >= 0x104B0 && r <= 0x104D3:
		return one(r+0x28, buf)
	// Vithkuqi, three sub-ranges.
	case r >= 0x10570 && r <= 0x1057A,
		r >= 0x1057C && r <= 0x1058A,
		r >= 0x1058C && r <= 0x10592:
		return one(r+0x27, buf)
	case r == 0x10594:
		return one(0x105BB, buf)
	case r == 0x10595:
		return one(0x105BC, buf)
	// Old Hungarian.
	case r >= 0x10C80 && r <= 0x10CB2:
		return one(r+0x40, buf)
	// Garay.
	case r >= 0x10D50 && r <= 0x10D65:
		return one(r+0x20, buf)
	// Warang Citi.
	case r >= 0x118A0 && r <= 0x118BF:
		return one(r+0x20, buf)
	// Medefaidrin.
	case r >= 0x16E40 && r <= 0x16E5F:
		return one(r+0x20, buf)
	// Beria Erfe.
	case r >= 0x16EA0 && r <= 0x16EB8:
		return one(r+0x1B, buf)
	// Adlam.
	case r >= 0x1E900 && r <= 0x1E921:
		return one(r+0x22, buf)
	}
	return one(r, buf)
}
