package pulse

import (
	"fmt"
	"math"
)

// tone evaluates a single DFT term with the Goertzel recurrence. The
// frequency need not fall on an FFT bin.
type tone struct {
	coeff  float64
	s0, s1 float64
}

func newTone(frequency, sampleRate float64) tone {
	return tone{coeff: 2 * math.Cos(2*math.Pi*frequency/sampleRate)}
}

func (t *tone) process(x []float64) {
	s0, s1 := t.s0, t.s1
	coeff := t.coeff

	for _, v := range x {
		s := v + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	t.s0, t.s1 = s0, s1
}

// power returns |X(f)|^2 over all samples processed so far.
func (t *tone) power() float64 {
	return t.s0*t.s0 + t.s1*t.s1 - t.coeff*t.s0*t.s1
}

// RateConfidence returns the share of the window's AC energy that lies at
// bpm, in [0, 1]. A clean pulse at exactly bpm with a whole number of beats
// in the window scores 1. Use it to cross-check a time-domain estimate.
func RateConfidence(samples []uint32, sampleRate, bpm float64) (float64, error) {
	if len(samples) < 2 {
		return 0, errTooShort
	}

	if sampleRate <= 0 {
		return 0, fmt.Errorf("pulse: sample rate must be > 0: %f", sampleRate)
	}

	freq := bpm / 60
	if bpm <= 0 || freq > sampleRate/2 {
		return 0, fmt.Errorf("pulse: rate %.1f BPM is outside (0, %.1f]", bpm, 30*sampleRate)
	}

	ac := acSignal(samples)

	energy := 0.0
	for _, v := range ac {
		energy += v * v
	}

	if energy == 0 {
		return 0, ErrNoPulse
	}

	t := newTone(freq, sampleRate)
	t.process(ac)

	// A real signal splits a tone between +f and -f, hence the factor 2.
	conf := 2 * t.power() / (float64(len(ac)) * energy)

	return math.Max(0, math.Min(1, conf)), nil
}
