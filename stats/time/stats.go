package time

// Stats holds time-domain statistics of a raw PPG window.
type Stats struct {
	Length int
	DC     float64 // mean raw level
	Max    uint32
	MaxPos int
	Min    uint32
	MinPos int
	Range  uint32 // max - min, the peak-to-peak pulsatile swing
	// ACRMS is the standard deviation about DC.
	ACRMS    float64
	Variance float64
	// Skewness of the window; clean PPG pulses are markedly asymmetric,
	// so values near zero suggest noise or motion.
	Skewness float64
	// PerfusionIndex is 100 * Range / DC, or 0 when DC is zero.
	PerfusionIndex float64
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for the moments.
func Calculate(samples []uint32) Stats {
	s := NewStreamingStats()
	s.Update(samples)

	return s.Result()
}

// DC returns the mean of samples.
func DC(samples []uint32) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum uint64
	for _, v := range samples {
		sum += uint64(v)
	}

	return float64(sum) / float64(len(samples))
}

// PerfusionIndex returns 100 * (max - min) / mean, or 0 for an empty or
// all-zero window.
func PerfusionIndex(samples []uint32) float64 {
	if len(samples) == 0 {
		return 0
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return perfusion(hi-lo, DC(samples))
}

func perfusion(rangeVal uint32, dc float64) float64 {
	if dc == 0 {
		return 0
	}

	return 100 * float64(rangeVal) / dc
}

// StreamingStats accumulates statistics across consecutive blocks of
// samples, giving the same result as [Calculate] on the concatenation.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	m3     float64
	maxVal uint32
	maxPos int
	minVal uint32
	minPos int
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []uint32) {
	for _, v := range samples {
		if s.n == 0 || v > s.maxVal {
			s.maxVal = v
			s.maxPos = s.n
		}

		if s.n == 0 || v < s.minVal {
			s.minVal = v
			s.minPos = s.n
		}

		s.n++
		ni := float64(s.n)

		// M3 must be updated before M2.
		x := float64(v)
		delta := x - s.mean
		deltaN := delta / ni
		term1 := delta * deltaN * (ni - 1)

		s.m3 += term1*deltaN*(ni-2) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN
	}
}

// Result returns the statistics of all samples seen so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * mathSqrt(variance))
	}

	rangeVal := s.maxVal - s.minVal

	return Stats{
		Length:         s.n,
		DC:             s.mean,
		Max:            s.maxVal,
		MaxPos:         s.maxPos,
		Min:            s.minVal,
		MinPos:         s.minPos,
		Range:          rangeVal,
		ACRMS:          mathSqrt(variance),
		Variance:       variance,
		Skewness:       skewness,
		PerfusionIndex: perfusion(rangeVal, s.mean),
	}
}

// Reset clears the accumulator.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
