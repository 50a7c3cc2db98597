package fold

// Compare orders a and b by their folded rune streams. It returns -1, 0 or
// +1, in the manner of bytes.Compare: the first mismatching folded rune
// decides by unsigned codepoint value, and if one stream is a prefix of the
// other the shorter sorts first. Compare(a, b) == 0 exactly when the folded
// images of a and b are equal.
//
// The inputs are pulled through two folded-rune iterators in lockstep, so no
// intermediate folded copies are built.
func Compare(a, b []byte) int {
	var ia, ib Iter
	ia.Init(a)
	ib.Init(b)
	for {
		ra, oka := ia.Next()
		rb, okb := ib.Next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		case ra != rb:
			if ra < rb {
				return -1
			}
			return 1
		}
	}
}

// Equal reports whether a and b are equal under case folding.
func Equal(a, b []byte) bool { return Compare(a, b) == 0 }
