package testutil

import (
	"math"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

// DeterministicSine generates a timed sine wave starting at t=0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []core.Sample {
	out := make([]core.Sample, length)
	period := 1 / sampleRate
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = core.Sample{
			Time:      float64(i) * period,
			Amplitude: amplitude * math.Sin(step*float64(i)),
		}
	}
	return out
}

// DC generates a timed constant-valued signal.
func DC(value, sampleRate float64, length int) []core.Sample {
	out := make([]core.Sample, length)
	period := 1 / sampleRate
	for i := range out {
		out[i] = core.Sample{Time: float64(i) * period, Amplitude: value}
	}
	return out
}
