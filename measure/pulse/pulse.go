package pulse

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ppg/dsp/window"
)

var (
	// ErrNoPulse is returned when the band holds no spectral energy.
	ErrNoPulse = errors.New("pulse: no energy in rate band")

	errTooShort = errors.New("pulse: need at least 2 samples")
)

// Result holds a spectral rate estimate.
type Result struct {
	// BPM is the interpolated dominant rate.
	BPM         float64
	FrequencyHz float64
	// Bin is the strongest bin index before interpolation.
	Bin int
	// Concentration is the peak bin power over the total band power,
	// in (0, 1]. Clean periodic signals score high.
	Concentration float64
	// Amplitude is the peak amplitude of the dominant component in counts,
	// corrected for the taper's coherent gain.
	Amplitude float64
	// ResolutionBPM is the taper's noise bandwidth expressed as a rate.
	// Components closer than this are not resolved.
	ResolutionBPM float64
	FFTSize       int
}

// DominantRate returns the strongest periodicity of samples inside the
// configured band.
func DominantRate(samples []uint32, sampleRate float64, opts ...Option) (Result, error) {
	if len(samples) < 2 {
		return Result{}, errTooShort
	}

	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("pulse: sample rate must be > 0: %f", sampleRate)
	}

	cfg := ApplyOptions(opts...)

	signal := acSignal(samples)

	taper := window.Generate(cfg.Window, len(signal), window.WithPeriodic())
	if err := window.Multiply(signal, taper); err != nil {
		return Result{}, err
	}

	gain, err := window.Measure(taper)
	if err != nil {
		return Result{}, fmt.Errorf("pulse: %w", err)
	}

	fftSize := nextPow2(max(cfg.FFTSize, len(signal)))

	power, err := powerSpectrum(signal, fftSize)
	if err != nil {
		return Result{}, err
	}

	binHz := sampleRate / float64(fftSize)
	lo := max(1, int(math.Ceil(cfg.MinBPM/60/binHz)))
	hi := min(len(power)-2, int(math.Floor(cfg.MaxBPM/60/binHz)))

	if lo > hi {
		return Result{}, fmt.Errorf("pulse: band %.1f-%.1f BPM is outside the spectrum", cfg.MinBPM, cfg.MaxBPM)
	}

	peak, total := lo, 0.0
	for k := lo; k <= hi; k++ {
		total += power[k]
		if power[k] > power[peak] {
			peak = k
		}
	}

	if total <= 0 {
		return Result{}, ErrNoPulse
	}

	freq := (float64(peak) + parabolicOffset(power[peak-1], power[peak], power[peak+1])) * binHz

	n := float64(len(signal))

	return Result{
		BPM:           60 * freq,
		FrequencyHz:   freq,
		Bin:           peak,
		Concentration: power[peak] / total,
		Amplitude:     2 * math.Sqrt(power[peak]) / (n * gain.CoherentGain),
		ResolutionBPM: 60 * gain.ENBW * sampleRate / n,
		FFTSize:       fftSize,
	}, nil
}

// acSignal returns samples as float64 with the mean removed.
func acSignal(samples []uint32) []float64 {
	signal := make([]float64, len(samples))

	mean := 0.0
	for i, v := range samples {
		signal[i] = float64(v)
		mean += signal[i]
	}

	mean /= float64(len(samples))
	for i := range signal {
		signal[i] -= mean
	}

	return signal
}

// powerSpectrum returns |X[k]|^2 for bins 0..fftSize/2 of the zero-padded
// signal.
func powerSpectrum(signal []float64, fftSize int) ([]float64, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("pulse: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("pulse: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

// parabolicOffset returns the vertex offset in bins of the parabola through
// three equally spaced points, clamped to [-0.5, 0.5].
func parabolicOffset(a, b, c float64) float64 {
	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	return math.Max(-0.5, math.Min(0.5, 0.5*(a-c)/den))
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
