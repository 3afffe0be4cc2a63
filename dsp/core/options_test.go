package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(50), WithWindowLength(250))
	if cfg.SampleRate != 50 {
		t.Fatalf("sample rate = %v, want 50", cfg.SampleRate)
	}
	if cfg.WindowLength != 250 {
		t.Fatalf("window length = %d, want 250", cfg.WindowLength)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithWindowLength(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
