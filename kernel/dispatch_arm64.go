//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

// On arm64 the SWAR backend wants ASIMD-era cores (fast unaligned loads);
// every ARMv8-A implementation qualifies, so this is true outside stripped
// embedded profiles.
var vectorCapable = cpu.ARM64.HasASIMD || !cpu.Initialized
