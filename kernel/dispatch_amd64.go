//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

// Block kernels run on the SWAR backend: 64-byte blocks scanned eight bytes
// per register. On amd64 unaligned 64-bit loads are effectively free; SSE2
// is part of the base ISA, so detection only guards against exotic
// virtualized environments that mask it.
var vectorCapable = cpu.X86.HasSSE2 || !cpu.Initialized
