package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ppg/dsp/core"
)

// systoleFraction is the share of each beat spent in the sharp drop of the
// raw IR level.
const systoleFraction = 0.12

// Generator creates deterministic raw PPG windows from a shared
// configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates dc plus a sine at the given rate in beats per minute.
// A zero sample count yields one configured window.
func (g *Generator) Sine(bpm, dc, amplitude float64, samples int) ([]uint32, error) {
	period, samples, err := g.period(bpm, samples)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, samples)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = core.ToSample(dc + amplitude*math.Sin(step*float64(i)))
	}
	return out, nil
}

// Pulse generates a raw IR pulse train at the given rate. Each beat starts
// with a fast cosine-shaped drop of amplitude (systole) followed by a
// decelerating recovery, the shape a reflective sensor reports as blood
// volume rises and falls. A zero sample count yields one configured window.
func (g *Generator) Pulse(bpm, dc, amplitude float64, samples int) ([]uint32, error) {
	period, samples, err := g.period(bpm, samples)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, samples)
	for i := range out {
		_, phase := math.Modf(float64(i) / period)
		out[i] = core.ToSample(dc + amplitude*pulseShape(phase))
	}
	return out, nil
}

// AddNoise returns a copy of samples with deterministic uniform noise in
// [-amplitude, amplitude] added.
func (g *Generator) AddNoise(samples []uint32, amplitude float64) ([]uint32, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]uint32, len(samples))
	rng := rand.New(rand.NewSource(g.seed))
	for i, v := range samples {
		out[i] = core.ToSample(float64(v) + (rng.Float64()*2-1)*amplitude)
	}
	return out, nil
}

// period returns the beat period in samples and the resolved sample count.
func (g *Generator) period(bpm float64, samples int) (float64, int, error) {
	if samples == 0 {
		samples = g.cfg.WindowLength
	}
	if samples <= 0 {
		return 0, 0, fmt.Errorf("samples must be > 0: %d", samples)
	}
	if bpm <= 0 {
		return 0, 0, fmt.Errorf("rate must be > 0 bpm: %f", bpm)
	}
	if g.cfg.SampleRate <= 0 {
		return 0, 0, fmt.Errorf("sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	return 60 * g.cfg.SampleRate / bpm, samples, nil
}

// pulseShape maps a beat phase in [0,1) to a level in [0,1].
func pulseShape(phase float64) float64 {
	if phase < systoleFraction {
		return 1 - (1-math.Cos(math.Pi*phase/systoleFraction))/2
	}
	r := 1 - (phase-systoleFraction)/(1-systoleFraction)
	return 1 - r*r
}
