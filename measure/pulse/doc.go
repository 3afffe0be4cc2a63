// Package pulse estimates the dominant pulse rate of a PPG window in the
// frequency domain.
//
// It is a floating-point cross-check for the fixed-point estimator in
// measure/heartrate: the window is mean-removed, tapered, zero-padded and
// transformed, and the strongest power-spectrum bin inside the
// physiological band is refined by parabolic interpolation. The result also
// carries the component amplitude, corrected for the taper's coherent gain,
// and the rate resolution implied by the taper's noise bandwidth.
//
//	res, err := pulse.DominantRate(samples, 100)
//	fmt.Printf("%.1f BPM (%.0f%% of band power)\n", res.BPM, 100*res.Concentration)
package pulse
