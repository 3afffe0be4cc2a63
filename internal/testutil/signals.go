package testutil

import "math"

// SinePPG generates a sinusoidal PPG window around dc with the given period
// in samples, rounded to the nearest integer sample.
func SinePPG(period, dc, amplitude float64, length int) []uint32 {
	return PhasedSinePPG(period, 0, dc, amplitude, length)
}

// PhasedSinePPG is SinePPG starting at phase radians.
func PhasedSinePPG(period, phase, dc, amplitude float64, length int) []uint32 {
	out := make([]uint32, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = uint32(math.Round(dc + amplitude*math.Sin(step*float64(i)+phase)))
	}
	return out
}

// PulsePPG generates a sawtooth-like raw IR waveform using integer
// arithmetic only: a sharp drop of amplitude over fall samples at the start
// of every period, followed by a linear recovery. It reproduces exactly on
// every platform.
func PulsePPG(period, fall int, dc, amplitude uint32, length int) []uint32 {
	out := make([]uint32, length)
	rise := uint32(period - fall)
	for i := range out {
		p := uint32(i % period)
		if p < uint32(fall) {
			out[i] = dc + amplitude - amplitude*p/uint32(fall)
		} else {
			out[i] = dc + amplitude*(p-uint32(fall))/rise
		}
	}
	return out
}

// NoisyPPG adds uniform noise in [-noise, noise] to a phased sinusoidal
// window. The noise comes from a 32-bit xorshift generator seeded with seed
// (0 is replaced by a fixed nonzero state), so windows are bit-identical on
// every platform and in other languages.
func NoisyPPG(seed uint32, period, phase, dc, amplitude, noise float64, length int) []uint32 {
	out := PhasedSinePPG(period, phase, dc, amplitude, length)
	state := seed
	if state == 0 {
		state = 2463534242
	}
	for i := range out {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		u := float64(state) / (1 << 32)
		v := float64(out[i]) + (u*2-1)*noise
		out[i] = uint32(math.Max(0, math.Round(v)))
	}
	return out
}

// ConstantWindow returns a window with every sample set to value.
func ConstantWindow(value uint32, length int) []uint32 {
	out := make([]uint32, length)
	for i := range out {
		out[i] = value
	}
	return out
}
