package meta

// Config tunes engine compilation.
//
// The zero value is not meaningful; start from DefaultConfig.
type Config struct {
	// EnableKernels permits the block kernels. When false every needle
	// runs on the serial engine (the kernels also stay off when CPU
	// detection reports no suitable backend). Results are identical either
	// way.
	EnableKernels bool

	// ShortNeedleBytes is the byte bound at or below which the dispatcher tries
	// the class allowance predicates directly, skipping the full analyzer:
	// the whole needle becomes the kernel window.
	ShortNeedleBytes int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		EnableKernels:    true,
		ShortNeedleBytes: 16,
	}
}
