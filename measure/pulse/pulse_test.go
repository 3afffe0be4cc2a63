package pulse

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ppg/dsp/window"
	"github.com/cwbudde/algo-ppg/internal/testutil"
)

func TestDominantRateSine(t *testing.T) {
	for _, period := range []float64{40, 60, 75, 100, 150} {
		samples := testutil.SinePPG(period, 100000, 2000, 500)

		res, err := DominantRate(samples, 100)
		if err != nil {
			t.Fatalf("period %v: %v", period, err)
		}

		want := 6000 / period
		if math.Abs(res.BPM-want) > 0.5 {
			t.Fatalf("period %v: bpm=%.3f, want %.3f", period, res.BPM, want)
		}

		if res.FFTSize != 4096 {
			t.Fatalf("fft size=%d, want 4096", res.FFTSize)
		}

		if res.Concentration <= 0 || res.Concentration > 1 {
			t.Fatalf("concentration=%v out of (0,1]", res.Concentration)
		}
	}
}

func TestDominantRatePulseShape(t *testing.T) {
	// 50 Hz, one pulse per second.
	samples := testutil.PulsePPG(50, 5, 100000, 3000, 250)

	res, err := DominantRate(samples, 50)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(res.BPM-60) > 0.5 {
		t.Fatalf("bpm=%.3f, want 60", res.BPM)
	}
}

func TestDominantRateBand(t *testing.T) {
	// A 150 BPM sine searched only in 40-120 BPM must not report 150.
	samples := testutil.SinePPG(40, 100000, 2000, 500)

	res, err := DominantRate(samples, 100, WithBand(40, 120), WithWindow(window.TypeBlackman))
	if err != nil {
		t.Fatal(err)
	}

	if res.BPM > 121 {
		t.Fatalf("bpm=%.3f outside band", res.BPM)
	}
}

func TestDominantRateFlat(t *testing.T) {
	_, err := DominantRate(testutil.ConstantWindow(1000, 500), 100)
	if !errors.Is(err, ErrNoPulse) {
		t.Fatalf("err=%v, want ErrNoPulse", err)
	}
}

func TestDominantRateValidation(t *testing.T) {
	if _, err := DominantRate([]uint32{1}, 100); err == nil {
		t.Fatal("expected error for single sample")
	}

	if _, err := DominantRate(make([]uint32, 16), 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}

	// At 1 Hz the spectrum ends at 30 BPM, below a 60-120 BPM band.
	if _, err := DominantRate(make([]uint32, 16), 1, WithBand(60, 120)); err == nil {
		t.Fatal("expected error for band outside spectrum")
	}
}

func TestFFTSizeGrowsWithWindow(t *testing.T) {
	samples := testutil.SinePPG(60, 100000, 2000, 500)

	res, err := DominantRate(samples, 100, WithFFTSize(100))
	if err != nil {
		t.Fatal(err)
	}

	if res.FFTSize != 512 {
		t.Fatalf("fft size=%d, want 512", res.FFTSize)
	}
}

func TestParabolicOffset(t *testing.T) {
	if got := parabolicOffset(1, 2, 1); got != 0 {
		t.Fatalf("symmetric offset=%v, want 0", got)
	}

	if got := parabolicOffset(1, 2, 2); got <= 0 {
		t.Fatalf("right-leaning offset=%v, want > 0", got)
	}

	if got := parabolicOffset(1, 1, 1); got != 0 {
		t.Fatalf("flat offset=%v, want 0", got)
	}
}

func TestDominantRateAmplitude(t *testing.T) {
	tests := []struct {
		period, amplitude float64
	}{
		{50, 2000},
		{60, 2000},
		{75, 1000},
	}

	for _, tc := range tests {
		samples := testutil.SinePPG(tc.period, 100000, tc.amplitude, 500)

		res, err := DominantRate(samples, 100)
		if err != nil {
			t.Fatalf("period %v: %v", tc.period, err)
		}

		if math.Abs(res.Amplitude-tc.amplitude) > 0.01*tc.amplitude {
			t.Fatalf("period %v: amplitude=%.1f, want ~%.0f", tc.period, res.Amplitude, tc.amplitude)
		}
	}
}

func TestDominantRateResolution(t *testing.T) {
	samples := testutil.SinePPG(60, 100000, 2000, 500)

	// Periodic Hann has an ENBW of 1.5 bins; 500 samples at 100 Hz give
	// 12 BPM bins.
	res, err := DominantRate(samples, 100)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(res.ResolutionBPM-18) > 1e-6 {
		t.Fatalf("resolution=%v BPM, want 18", res.ResolutionBPM)
	}

	res, err = DominantRate(samples, 100, WithWindow(window.TypeRectangular))
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(res.ResolutionBPM-12) > 1e-9 {
		t.Fatalf("rectangular resolution=%v BPM, want 12", res.ResolutionBPM)
	}
}
