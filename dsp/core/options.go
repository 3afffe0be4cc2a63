package core

// ProcessorConfig defines the acquisition settings shared by generators and
// analyzers.
type ProcessorConfig struct {
	SampleRate float64
	// WindowLength is the number of samples analyzed at once.
	WindowLength int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the pulse-oximetry defaults: 100 Hz and a
// five second window.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   100,
		WindowLength: 500,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowLength sets the analysis window length.
func WithWindowLength(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.WindowLength = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
