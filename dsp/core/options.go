package core

// DefaultBaseSize is the length at or below which the recursive complex FFT
// hands over to the direct DFT.
const DefaultBaseSize = 4

// TransformConfig defines settings shared by the recursive transforms.
type TransformConfig struct {
	// BaseSize is the largest length evaluated directly by the complex FFT.
	BaseSize int

	// FixedRoot makes the number-theoretic transform pass the caller's root
	// unchanged to every recursion level instead of squaring it per level.
	// Only the top-level transform is then a true DFT; the inverse no longer
	// undoes the forward transform for lengths above 2.
	FixedRoot bool
}

// TransformOption mutates a TransformConfig.
type TransformOption func(*TransformConfig)

// DefaultTransformConfig returns the canonical Cooley-Tukey settings.
func DefaultTransformConfig() TransformConfig {
	return TransformConfig{
		BaseSize: DefaultBaseSize,
	}
}

// WithBaseSize sets the direct-DFT threshold of the complex FFT.
func WithBaseSize(n int) TransformOption {
	return func(cfg *TransformConfig) {
		if n > 0 {
			cfg.BaseSize = n
		}
	}
}

// WithFixedRoot reuses the top-level root of unity at every recursion level
// of the number-theoretic transform.
func WithFixedRoot() TransformOption {
	return func(cfg *TransformConfig) {
		cfg.FixedRoot = true
	}
}

// ApplyTransformOptions applies zero or more options to the default config.
func ApplyTransformOptions(opts ...TransformOption) TransformConfig {
	cfg := DefaultTransformConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
