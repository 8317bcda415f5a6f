package modulation

import "github.com/cwbudde/algo-adsr/dsp/envelope"

// Modulator applies a streaming envelope to a signal one sample at a time.
// Unlike Modulate it has no length limit: the envelope keeps running (and,
// with envelope.EndLoop, keeps cycling) for as long as input arrives.
type Modulator struct {
	gen *envelope.Generator
}

// NewModulator creates a modulator for the envelope described by p.
func NewModulator(p envelope.Params, opts ...envelope.Option) (*Modulator, error) {
	gen, err := envelope.NewGenerator(p, opts...)
	if err != nil {
		return nil, err
	}

	return &Modulator{gen: gen}, nil
}

// Reset restarts the envelope from its initial sample.
func (m *Modulator) Reset() {
	m.gen.Reset()
}

// Phase returns the envelope phase the next sample will be shaped by.
func (m *Modulator) Phase() envelope.Phase {
	return m.gen.Phase()
}

// Process multiplies one input sample by the next envelope amplitude.
func (m *Modulator) Process(sample float64) float64 {
	return sample * m.gen.Next().Amplitude
}

// ProcessInPlace applies the envelope to buf in place.
func (m *Modulator) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = m.Process(buf[i])
	}
}
