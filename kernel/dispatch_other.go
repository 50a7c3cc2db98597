//go:build !amd64 && !arm64

package kernel

// Without cheap unaligned 64-bit loads the block filter loses to the serial
// engine's single pass; the dispatcher keeps everything on the serial path.
var vectorCapable = false
