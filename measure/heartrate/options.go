package heartrate

import (
	"fmt"
	"math"
)

const (
	defaultSampleRate      = 100
	defaultWindowSeconds   = 5
	defaultMinPeakDistance = 8
	defaultMaxPeaks        = 5

	// maxSampleRate keeps 60*SampleRate within int32.
	maxSampleRate = math.MaxInt32 / 60
)

// Config holds estimator parameters.
type Config struct {
	// SampleRate in Hz. Peak intervals are converted with 60*SampleRate.
	SampleRate int
	// WindowLength is the exact number of samples per estimate.
	WindowLength int
	// MinPeakDistance is the minimum index separation between peaks.
	MinPeakDistance int32
	// MaxPeaks caps the number of peaks used for the interval average.
	MaxPeaks int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the pulse-oximetry configuration: 100 Hz, five second
// window, peaks at least 8 samples apart, at most 5 peaks.
func DefaultConfig() Config {
	return Config{
		SampleRate:      defaultSampleRate,
		WindowLength:    defaultSampleRate * defaultWindowSeconds,
		MinPeakDistance: defaultMinPeakDistance,
		MaxPeaks:        defaultMaxPeaks,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(hz int) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.SampleRate = hz
		}
	}
}

// WithWindowLength sets the number of samples per window.
func WithWindowLength(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.WindowLength = n
		}
	}
}

// WithMinPeakDistance sets the minimum peak separation in samples.
func WithMinPeakDistance(d int32) Option {
	return func(cfg *Config) {
		if d >= 0 {
			cfg.MinPeakDistance = d
		}
	}
}

// WithMaxPeaks sets the maximum number of peaks considered.
func WithMaxPeaks(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxPeaks = n
		}
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

// Validate reports whether cfg describes a usable pipeline.
func (c Config) Validate() error {
	if c.SampleRate <= 0 || c.SampleRate > maxSampleRate {
		return fmt.Errorf("heartrate: sample rate must be in (0, %d]: %d", maxSampleRate, c.SampleRate)
	}

	if c.WindowLength < minWindowLength {
		return fmt.Errorf("heartrate: window length must be >= %d: %d", minWindowLength, c.WindowLength)
	}

	if c.MinPeakDistance < 0 {
		return fmt.Errorf("heartrate: min peak distance must be >= 0: %d", c.MinPeakDistance)
	}

	if c.MaxPeaks < 2 {
		return fmt.Errorf("heartrate: max peaks must be >= 2: %d", c.MaxPeaks)
	}

	return nil
}
