package kernel

// Available reports whether the block kernels are worth running on this
// CPU. The decision is made once at initialization from CPU feature
// detection; when false, the dispatcher routes every needle to the serial
// engine instead. Results are identical either way, this is purely a
// throughput choice.
func Available() bool { return vectorCapable }
