package heartrate

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ppg/dsp/fixed"
	"github.com/cwbudde/algo-ppg/dsp/peaks"
	"github.com/cwbudde/algo-ppg/dsp/window"
)

const (
	// InvalidBPM is reported when fewer than two peaks are found.
	InvalidBPM int32 = -999

	maWidth      = 4 // first moving average
	hammingWidth = 5

	// hammingSum is the sum of hammingKernel.
	hammingSum = 1146

	// minWindowLength leaves at least one Hamming output.
	minWindowLength = hammingWidth + maWidth + 3
)

// hammingKernel is round(512 * hamming(5)) = {41, 276, 512, 276, 41}.
var hammingKernel = [hammingWidth]int32(window.Quantize(window.Generate(window.TypeHamming, hammingWidth), 512))

// ErrWindowLength is returned when the sample count differs from the
// configured window length.
var ErrWindowLength = errors.New("heartrate: window length mismatch")

// Result holds one heart-rate estimate.
type Result struct {
	// BPM is the heart rate, or InvalidBPM when Valid is false.
	BPM   int32
	Valid bool
	// Peaks are the detected peak indices in the filtered derivative,
	// ascending.
	Peaks []int
	// Threshold is the adaptive minimum peak height that was applied.
	Threshold int32
	// MeanInterval is the mean peak distance in samples, 0 when invalid.
	MeanInterval int32
}

// HammingKernel returns a copy of the fixed-point smoothing kernel.
func HammingKernel() []int32 {
	return append([]int32(nil), hammingKernel[:]...)
}

// Estimator computes heart rate from fixed-length sample windows.
// It owns its scratch buffers and is not safe for concurrent use.
type Estimator struct {
	cfg Config
	x   []int32 // DC-removed, smoothed signal
	dx  []int32 // derivative and filtered derivative
}

// New returns an Estimator for the configured window.
func New(opts ...Option) (*Estimator, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Estimator{
		cfg: cfg,
		x:   make([]int32, cfg.WindowLength),
		dx:  make([]int32, cfg.WindowLength-maWidth),
	}, nil
}

// Config returns the estimator configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Estimate computes heart rate from exactly WindowLength samples.
//
// A window without at least two detectable peaks yields Valid == false and
// BPM == InvalidBPM with a nil error. A window of the wrong length returns
// ErrWindowLength.
func (e *Estimator) Estimate(samples []uint32) (Result, error) {
	l := e.cfg.WindowLength
	if len(samples) != l {
		return Result{BPM: InvalidBPM}, fmt.Errorf("%w: got %d samples, want %d", ErrWindowLength, len(samples), l)
	}

	x, dx := e.x, e.dx

	fixed.RemoveDC(x, samples)

	// Only x[:l-maWidth] is smoothed; the tail keeps DC-removed values
	// and is never read again.
	fixed.MovingAverage(x[:l-maWidth], x, maWidth)

	nd := fixed.Difference(dx, x[:l-maWidth])

	fixed.MovingAverage(dx[:nd-1], dx[:nd], 2)

	// Negating turns systolic upstrokes into positive peaks.
	fixed.Correlate(dx[:l-hammingWidth-maWidth-2], dx[:nd], hammingKernel[:], hammingSum, true)

	// Threshold and peak search cover the Hamming outputs plus the
	// unfiltered derivative tail, up to l-hammingWidth. The last slot of dx
	// is zero and closes a plateau that reaches the end of the search.
	search := dx[:l-hammingWidth]
	threshold := fixed.MeanAbs(search)

	dx[l-hammingWidth] = 0
	locs := peaks.FindGuarded(dx[:l-maWidth], threshold, e.cfg.MinPeakDistance, e.cfg.MaxPeaks)

	res := Result{
		BPM:       InvalidBPM,
		Peaks:     locs,
		Threshold: threshold,
	}

	if len(locs) < 2 {
		return res, nil
	}

	var sum int
	for k := 1; k < len(locs); k++ {
		sum += locs[k] - locs[k-1]
	}

	interval := int32(sum / (len(locs) - 1))

	res.MeanInterval = interval
	res.BPM = int32(60*e.cfg.SampleRate) / interval
	res.Valid = true

	return res, nil
}

// Estimate computes heart rate with a freshly allocated Estimator. It is
// safe for concurrent use.
func Estimate(samples []uint32, opts ...Option) (Result, error) {
	e, err := New(opts...)
	if err != nil {
		return Result{BPM: InvalidBPM}, err
	}

	return e.Estimate(samples)
}
