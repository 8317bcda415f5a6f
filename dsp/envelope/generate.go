package envelope

import "github.com/cwbudde/algo-adsr/dsp/core"

// Generate produces a complete envelope of p.SampleCount() samples.
//
// It fails with ErrInvalidParameter for a non-positive sample rate or attack
// time, or when the envelope would hold no samples.
func Generate(p Params, opts ...Option) (*Buffer, error) {
	g, err := NewGenerator(p, opts...)
	if err != nil {
		return nil, err
	}

	n := p.SampleCount()
	buf := &Buffer{
		samples:    make([]core.Sample, n),
		phases:     make([]Phase, n),
		sampleRate: p.SampleRate,
	}

	for i := range buf.samples {
		buf.phases[i] = g.Phase()
		buf.samples[i] = g.Next()
	}

	return buf, nil
}
