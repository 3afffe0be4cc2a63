// Package heartrate estimates heart rate from a window of raw infrared
// photoplethysmogram (PPG) samples.
//
// The estimator is a fixed-point pipeline tuned for pulse-oximetry sensors
// sampling at 100 Hz:
//
//   - DC removal (truncated mean)
//   - 4-point moving average
//   - first difference
//   - 2-point moving average
//   - negated 5-tap Hamming correlation, so systolic upstrokes become peaks
//   - adaptive threshold (mean absolute derivative)
//   - peak detection and mean peak interval
//
// All arithmetic is integer with truncation toward zero, so results match
// the equivalent firmware implementation exactly.
//
// # Usage
//
//	est, err := heartrate.New() // 100 Hz, 500-sample window
//	res, err := est.Estimate(window)
//	if err == nil && res.Valid {
//		fmt.Printf("%d BPM\n", res.BPM)
//	}
//
// An [Estimator] reuses its scratch buffers between calls and must not be
// shared between goroutines. [Estimate] allocates per call instead.
package heartrate
