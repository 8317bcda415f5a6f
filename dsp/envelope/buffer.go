package envelope

import "github.com/cwbudde/algo-adsr/dsp/core"

// Buffer is a generated envelope. It is immutable: accessors that expose
// slices return copies.
type Buffer struct {
	samples    []core.Sample
	phases     []Phase
	sampleRate float64
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.samples) }

// SampleRate returns the rate the envelope was generated at.
func (b *Buffer) SampleRate() float64 { return b.sampleRate }

// At returns sample i. It panics if i is out of range.
func (b *Buffer) At(i int) core.Sample { return b.samples[i] }

// Phase returns the phase sample i was computed in.
func (b *Buffer) Phase(i int) Phase { return b.phases[i] }

// Samples returns a copy of all samples.
func (b *Buffer) Samples() []core.Sample {
	out := make([]core.Sample, len(b.samples))
	copy(out, b.samples)
	return out
}

// Phases returns a copy of the per-sample phase trace.
func (b *Buffer) Phases() []Phase {
	out := make([]Phase, len(b.phases))
	copy(out, b.phases)
	return out
}

// Times returns the time column.
func (b *Buffer) Times() []float64 { return core.Times(b.samples) }

// Amplitudes returns the amplitude column.
func (b *Buffer) Amplitudes() []float64 { return core.Amplitudes(b.samples) }

// AmplitudesInto writes the amplitude column into dst, reusing its
// capacity, and returns the resized slice.
func (b *Buffer) AmplitudesInto(dst []float64) []float64 {
	return core.AmplitudesInto(dst, b.samples)
}
