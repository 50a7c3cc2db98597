//go:build casefoldverify

package meta

import (
	"fmt"
	"os"

	"github.com/coregx/casefold/serial"
)

// verifyEnabled turns every search into a cross-check against the serial
// reference engine. Build with -tags casefoldverify; a disagreement prints
// the offending inputs and aborts. This is the debugging harness for the
// kernels, not a production mode.
const verifyEnabled = true

func crossCheck(haystack, needle []byte, from, start, length int) {
	wantStart, wantLen := serial.FindFrom(haystack, needle, from)
	if start == wantStart && length == wantLen {
		return
	}
	fmt.Fprintf(os.Stderr,
		"casefold: engine disagreement\n  needle:   %q\n  haystack: %q\n  from:     %d\n  got:      (%d, %d)\n  serial:   (%d, %d)\n",
		needle, haystack, from, start, length, wantStart, wantLen)
	panic("casefold: search engine disagreement")
}
