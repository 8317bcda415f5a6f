package signal

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

// Waveform selects the shape of a generated carrier.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformSquare
	WaveformNoise
	WaveformDC
)

var waveformNames = map[Waveform]string{
	WaveformSine:   "sine",
	WaveformSquare: "square",
	WaveformNoise:  "noise",
	WaveformDC:     "dc",
}

func (w Waveform) String() string {
	if name, ok := waveformNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseWaveform maps a waveform name (case-insensitive) to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for w, n := range waveformNames {
		if n == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("signal: unknown waveform %q", name)
}

// Generator creates deterministic signals from a shared configuration.
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
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
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

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.checkTone("sine", freqHz, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Square generates a bipolar square wave that starts high.
func (g *Generator) Square(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.checkTone("square", freqHz, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	cycles := freqHz / g.cfg.SampleRate
	for i := range out {
		_, frac := math.Modf(cycles * float64(i))
		if frac < 0.5 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// DC generates a constant signal.
func (g *Generator) DC(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("dc samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude
	}
	return out, nil
}

// Carrier generates the requested waveform on the generator's time axis.
// freqHz is ignored for noise and DC.
func (g *Generator) Carrier(w Waveform, freqHz, amplitude float64, samples int) ([]core.Sample, error) {
	var (
		amps []float64
		err  error
	)

	switch w {
	case WaveformSine:
		amps, err = g.Sine(freqHz, amplitude, samples)
	case WaveformSquare:
		amps, err = g.Square(freqHz, amplitude, samples)
	case WaveformNoise:
		amps, err = g.WhiteNoise(amplitude, samples)
	case WaveformDC:
		amps, err = g.DC(amplitude, samples)
	default:
		return nil, fmt.Errorf("signal: unknown waveform %d", w)
	}

	if err != nil {
		return nil, err
	}

	return core.Timed(amps, g.cfg.SamplePeriod()), nil
}

func (g *Generator) checkTone(name string, freqHz float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", name, samples)
	}
	if freqHz < 0 || !core.IsFinite(freqHz) {
		return fmt.Errorf("%s frequency must be >= 0 and finite: %f", name, freqHz)
	}
	return nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
