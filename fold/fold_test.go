package fold

import (
	"testing"
	"unicode/utf8"
)

// foldOf is a test helper returning the folded runes of a single codepoint.
func foldOf(r rune) []rune {
	var buf [MaxExpansion]rune
	n := Rune(r, &buf)
	return append([]rune(nil), buf[:n]...)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRuneKnownMappings(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want []rune
	}{
		{"ascii upper", 'A', []rune{'a'}},
		{"ascii lower", 'z', []rune{'z'}},
		{"ascii digit", '7', []rune{'7'}},
		{"latin1 upper", 'À', []rune{'à'}},
		{"latin1 thorn", 'Þ', []rune{'þ'}},
		{"multiplication sign", '×', []rune{'×'}},
		{"micro sign", 'µ', []rune{'μ'}},
		{"sharp s", 'ß', []rune{'s', 's'}},
		{"capital sharp s", 'ẞ', []rune{'s', 's'}},
		{"dotted capital I", 'İ', []rune{'i', 0x307}},
		{"dotless i self", 'ı', []rune{'ı'}},
		{"n preceded by apostrophe", 'ŉ', []rune{0x2BC, 'n'}},
		{"long s", 'ſ', []rune{'s'}},
		{"Y diaeresis", 'Ÿ', []rune{'ÿ'}},
		{"latin ext-A even", 'Ā', []rune{'ā'}},
		{"latin ext-A odd", 'Ĺ', []rune{'ĺ'}},
		{"kra self", 'ĸ', []rune{'ĸ'}},
		{"DZ digraph", 'Ǆ', []rune{'ǆ'}},
		{"Dz titlecase", 'ǅ', []rune{'ǆ'}},
		{"j caron", 'ǰ', []rune{'j', 0x30C}},
		{"schwa", 'Ə', []rune{'ə'}},
		{"open e", 'Ɛ', []rune{'ɛ'}},
		{"glottal A", 'Ⱥ', []rune{'ⱥ'}},
		{"combining ypogegrammeni", 0x345, []rune{'ι'}},
		{"greek capital alpha", 'Α', []rune{'α'}},
		{"greek capital rho", 'Ρ', []rune{'ρ'}},
		{"greek capital sigma", 'Σ', []rune{'σ'}},
		{"greek final sigma", 'ς', []rune{'σ'}},
		{"greek capital omega", 'Ω', []rune{'ω'}},
		{"greek tonos alpha", 'Ά', []rune{'ά'}},
		{"greek tonos eta", 'Ή', []rune{'ή'}},
		{"greek tonos omega", 'Ώ', []rune{'ώ'}},
		{"greek iota dialytika tonos", 'ΐ', []rune{'ι', 0x308, 0x301}},
		{"greek upsilon dialytika tonos", 'ΰ', []rune{'υ', 0x308, 0x301}},
		{"greek theta symbol", 'ϑ', []rune{'θ'}},
		{"greek capital theta symbol", 'ϴ', []rune{'θ'}},
		{"cyrillic capital a", 'А', []rune{'а'}},
		{"cyrillic capital ya", 'Я', []rune{'я'}},
		{"cyrillic ie grave", 'Ѐ', []rune{'ѐ'}},
		{"cyrillic dzhe", 'Џ', []rune{'џ'}},
		{"cyrillic omega", 'Ѡ', []rune{'ѡ'}},
		{"cyrillic palochka", 'Ӏ', []rune{'ӏ'}},
		{"cyrillic rounded ve", 'ᲀ', []rune{'в'}},
		{"cyrillic blended yus", 'ᲈ', []rune{'ꙋ'}},
		{"armenian capital ayb", 'Ա', []rune{'ա'}},
		{"armenian capital feh", 'Ֆ', []rune{'ֆ'}},
		{"armenian ech yiwn", 'և', []rune{'ե', 'ւ'}},
		{"georgian asomtavruli", 'Ⴀ', []rune{'ⴀ'}},
		{"georgian mtavruli", 'Ა', []rune{'ა'}},
		{"cherokee small", 'ꭰ', []rune{'Ꭰ'}},
		{"latin ext additional", 'Ḃ', []rune{'ḃ'}},
		{"vietnamese", 'Ạ', []rune{'ạ'}},
		{"h with line below", 'ẖ', []rune{'h', 0x331}},
		{"greek extended psili", 'Ἀ', []rune{'ἀ'}},
		{"greek extended epsilon", 'Ὲ', []rune{'ὲ'}},
		{"greek ypogegrammeni alpha", 'ᾳ', []rune{'α', 'ι'}},
		{"greek prosgegrammeni titlecase", 'ᾈ', []rune{'ἀ', 'ι'}},
		{"greek alpha perispomeni", 'ᾶ', []rune{'α', 0x342}},
		{"greek prosgegrammeni", 0x1FBE, []rune{'ι'}},
		{"ohm sign", 'Ω', []rune{'ω'}},
		{"kelvin sign", 'K', []rune{'k'}},
		{"angstrom sign", 'Å', []rune{'å'}},
		{"roman numeral", 'Ⅶ', []rune{'ⅶ'}},
		{"circled letter", 'Ⓐ', []rune{'ⓐ'}},
		{"glagolitic", 'Ⰰ', []rune{'ⰰ'}},
		{"coptic", 'Ⲁ', []rune{'ⲁ'}},
		{"cyrillic ext-b", 'Ꙁ', []rune{'ꙁ'}},
		{"latin ext-d", 'Ꜣ', []rune{'ꜣ'}},
		{"ff ligature", 'ﬀ', []rune{'f', 'f'}},
		{"fi ligature", 'ﬁ', []rune{'f', 'i'}},
		{"ffi ligature", 'ﬃ', []rune{'f', 'f', 'i'}},
		{"st ligature", 'ﬆ', []rune{'s', 't'}},
		{"armenian men now", 'ﬓ', []rune{'մ', 'ն'}},
		{"fullwidth A", 'Ａ', []rune{'ａ'}},
		{"deseret", 0x10400, []rune{0x10428}},
		{"osage", 0x104B0, []rune{0x104D8}},
		{"old hungarian", 0x10C80, []rune{0x10CC0}},
		{"warang citi", 0x118A0, []rune{0x118C0}},
		{"adlam", 0x1E900, []rune{0x1E922}},
		{"cjk self", '价', []rune{'价'}},
		{"yen sign self", '¥', []rune{'¥'}},
	}
	for _, tt := range tests {
		got := foldOf(tt.in)
		if !runesEqual(got, tt.want) {
			t.Errorf("%s: Rune(%U) = %U, want %U", tt.name, tt.in, got, tt.want)
		}
	}
}

// TestRuneIdempotent checks fold(fold(r)) == fold(r) rune-by-rune over the
// entire codepoint space. Full case folding is closed: folded output never
// folds again.
func TestRuneIdempotent(t *testing.T) {
	var buf, buf2 [MaxExpansion]rune
	for r := rune(0); r <= 0x10FFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		n := Rune(r, &buf)
		for i := 0; i < n; i++ {
			m := Rune(buf[i], &buf2)
			if m != 1 || buf2[0] != buf[i] {
				t.Fatalf("fold not idempotent at %U: %U folds again to %U",
					r, buf[i], buf2[:m])
			}
		}
	}
}

// TestRuneProducesScalars checks that folding never produces an invalid
// scalar value, so re-encoding stays well-formed UTF-8.
func TestRuneProducesScalars(t *testing.T) {
	var buf [MaxExpansion]rune
	for r := rune(0); r <= 0x10FFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		n := Rune(r, &buf)
		if n < 1 || n > MaxExpansion {
			t.Fatalf("Rune(%U) returned count %d", r, n)
		}
		for i := 0; i < n; i++ {
			if !utf8.ValidRune(buf[i]) {
				t.Fatalf("Rune(%U) produced invalid scalar %U", r, buf[i])
			}
		}
	}
}

// TestRuneExpansionBudget checks that no codepoint folds to more than three
// runes and that expansions only shrink or keep the encoded width within the
// documented 3x output bound.
func TestRuneExpansionBudget(t *testing.T) {
	var buf [MaxExpansion]rune
	for r := rune(0x80); r <= 0x10FFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		n := Rune(r, &buf)
		folded := 0
		for i := 0; i < n; i++ {
			folded += utf8.RuneLen(buf[i])
		}
		if folded > MaxExpansion*utf8.RuneLen(r) {
			t.Fatalf("Rune(%U): folded width %d exceeds %dx source width %d",
				r, folded, MaxExpansion, utf8.RuneLen(r))
		}
	}
}
