//go:build fastmath

package time

import "github.com/meko-christian/algo-approx"

// mathSqrt computes sqrt(x) using fast approximation. Moments stay exact;
// only ACRMS and Skewness lose precision.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
