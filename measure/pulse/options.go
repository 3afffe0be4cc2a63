package pulse

import "github.com/cwbudde/algo-ppg/dsp/window"

const (
	defaultMinBPM  = 30.0
	defaultMaxBPM  = 240.0
	defaultFFTSize = 4096
)

// Config holds spectral estimation parameters.
type Config struct {
	// MinBPM and MaxBPM bound the searched band.
	MinBPM float64
	MaxBPM float64
	// FFTSize is the minimum transform length; windows are zero-padded to
	// the next power of two at or above max(FFTSize, len(samples)).
	FFTSize int
	Window  window.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 30-240 BPM band, 4096-point transform and Hann
// taper.
func DefaultConfig() Config {
	return Config{
		MinBPM:  defaultMinBPM,
		MaxBPM:  defaultMaxBPM,
		FFTSize: defaultFFTSize,
		Window:  window.TypeHann,
	}
}

// WithBand sets the searched rate band in beats per minute.
func WithBand(minBPM, maxBPM float64) Option {
	return func(cfg *Config) {
		if minBPM > 0 && maxBPM > minBPM {
			cfg.MinBPM = minBPM
			cfg.MaxBPM = maxBPM
		}
	}
}

// WithFFTSize sets the minimum transform length.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.FFTSize = n
		}
	}
}

// WithWindow sets the taper applied before the transform.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
