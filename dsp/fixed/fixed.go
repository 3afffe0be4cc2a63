package fixed

// Mean returns the truncated mean of x, or 0 for an empty slice.
func Mean(x []uint32) uint32 {
	if len(x) == 0 {
		return 0
	}

	var sum uint64
	for _, v := range x {
		sum += uint64(v)
	}

	return uint32(sum / uint64(len(x)))
}

// RemoveDC writes src minus its truncated mean into dst and returns the mean.
// The subtraction wraps in 32 bits before reinterpretation as signed, so
// samples below the mean become negative. dst must hold len(src) values.
func RemoveDC(dst []int32, src []uint32) uint32 {
	mean := Mean(src)
	for i, v := range src {
		dst[i] = int32(v - mean)
	}

	return mean
}

// MovingAverage writes the truncated average of every width consecutive
// samples of src into dst. It returns the number of outputs: one per full
// window of src, limited to len(dst).
func MovingAverage(dst, src []int32, width int) int {
	n := len(src) - width + 1
	if width <= 0 || n <= 0 {
		return 0
	}

	n = min(n, len(dst))

	for i := range n {
		var sum int64
		for _, v := range src[i : i+width] {
			sum += int64(v)
		}

		dst[i] = int32(sum / int64(width))
	}

	return n
}

// Difference writes src[i+1]-src[i] into dst. It returns the number of
// outputs, len(src)-1 limited to len(dst).
func Difference(dst, src []int32) int {
	n := min(len(src)-1, len(dst))
	if n <= 0 {
		return 0
	}

	for i := range n {
		dst[i] = src[i+1] - src[i]
	}

	return n
}

// Correlate slides kernel over src and writes the dot product at each
// position, divided by divisor, into dst. With negate set the dot product is
// sign-flipped before division. It returns the number of outputs, limited to
// len(dst) when dst is shorter than the full output.
func Correlate(dst, src, kernel []int32, divisor int32, negate bool) int {
	n := len(src) - len(kernel) + 1
	if len(kernel) == 0 || n <= 0 || divisor == 0 {
		return 0
	}

	n = min(n, len(dst))

	for i := range n {
		var s int64
		for k, c := range kernel {
			s += int64(src[i+k]) * int64(c)
		}

		if negate {
			s = -s
		}

		dst[i] = int32(s / int64(divisor))
	}

	return n
}

// MeanAbs returns the truncated mean absolute value of x, or 0 for an
// empty slice.
func MeanAbs(x []int32) int32 {
	if len(x) == 0 {
		return 0
	}

	var sum int64
	for _, v := range x {
		if v < 0 {
			sum -= int64(v)
		} else {
			sum += int64(v)
		}
	}

	return int32(sum / int64(len(x)))
}
