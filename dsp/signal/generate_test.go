package signal

import (
	"testing"

	"github.com/cwbudde/algo-ppg/dsp/core"
	"github.com/cwbudde/algo-ppg/measure/heartrate"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(100))
	s, err := g.Sine(60, 1000, 100, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if s[0] != 1000 || s[25] != 1100 || s[50] != 1000 {
		t.Fatalf("unexpected sine samples %d %d %d", s[0], s[25], s[50])
	}
}

func TestPulseShape(t *testing.T) {
	if got := pulseShape(0); got != 1 {
		t.Fatalf("pulseShape(0) = %v, want 1", got)
	}
	if got := pulseShape(systoleFraction); got != 0 {
		t.Fatalf("pulseShape(systole) = %v, want 0", got)
	}
	prev := pulseShape(systoleFraction)
	for k := 1; k < 100; k++ {
		v := pulseShape(systoleFraction + float64(k)*(1-systoleFraction)/100)
		if v < prev {
			t.Fatalf("recovery not monotonic at step %d", k)
		}
		prev = v
	}
}

func TestPulseRate(t *testing.T) {
	g := NewGenerator()
	for _, bpm := range []float64{60, 75, 100, 120} {
		s, err := g.Pulse(bpm, 100000, 3000, 500)
		if err != nil {
			t.Fatalf("Pulse() error = %v", err)
		}

		res, err := heartrate.Estimate(s)
		if err != nil {
			t.Fatalf("Estimate() error = %v", err)
		}
		if !res.Valid || res.BPM != int32(bpm) {
			t.Fatalf("bpm %v: estimate %+v", bpm, res)
		}
	}
}

func TestAddNoiseDeterministic(t *testing.T) {
	clean, err := NewGenerator().Pulse(72, 100000, 3000, 128)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}

	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.AddNoise(clean, 10)
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	n2, err := g2.AddNoise(clean, 10)
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		d := int64(n1[i]) - int64(clean[i])
		if d < -10 || d > 10 {
			t.Fatalf("noise at %d = %d exceeds amplitude", i, d)
		}
	}
}

func TestValidation(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Pulse(0, 1000, 10, 10); err == nil {
		t.Fatal("expected error for zero rate")
	}
	if _, err := g.Sine(60, 1000, 10, -1); err == nil {
		t.Fatal("expected error for negative samples")
	}
	if _, err := g.AddNoise([]uint32{1}, -1); err == nil {
		t.Fatal("expected error for negative noise")
	}
}

func TestDefaultWindowLength(t *testing.T) {
	g := NewGenerator(core.WithWindowLength(250))

	s, err := g.Pulse(60, 100000, 3000, 0)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	if len(s) != 250 {
		t.Fatalf("len=%d, want configured window of 250", len(s))
	}

	s, err = NewGenerator().Sine(60, 1000, 100, 0)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 500 {
		t.Fatalf("len=%d, want default window of 500", len(s))
	}
}
