package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ToSample rounds value to the nearest representable unsigned 32-bit
// sample, saturating at both ends.
func ToSample(value float64) uint32 {
	return uint32(Clamp(math.Round(value), 0, math.MaxUint32))
}
