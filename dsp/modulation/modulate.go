package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-adsr/dsp/core"
	"github.com/cwbudde/algo-adsr/dsp/envelope"
)

// Modulate multiplies env against external sample by sample. The output has
// env.Len() samples and takes its time axis from the envelope; the external
// signal's own time values are ignored. Extra external samples beyond the
// envelope length are ignored as well.
//
// It fails with ErrLengthMismatch if external is shorter than env.
func Modulate(env *envelope.Buffer, external []core.Sample) ([]core.Sample, error) {
	if env == nil {
		return nil, ErrNilEnvelope
	}

	n := env.Len()
	if len(external) < n {
		return nil, fmt.Errorf("%w: external signal has %d samples, envelope has %d",
			ErrLengthMismatch, len(external), n)
	}

	gains := env.Amplitudes()
	vecmath.MulBlockInPlace(gains, core.Amplitudes(external[:n]))

	out := make([]core.Sample, n)
	for i := range out {
		out[i] = core.Sample{Time: env.At(i).Time, Amplitude: gains[i]}
	}

	return out, nil
}

// ModulateAmplitudes writes env[i]*external[i] for every envelope index into
// dst, reusing its capacity, and returns the resized slice.
//
// It fails with ErrLengthMismatch if external is shorter than env.
func ModulateAmplitudes(dst, env, external []float64) ([]float64, error) {
	if len(external) < len(env) {
		return nil, fmt.Errorf("%w: external signal has %d samples, envelope has %d",
			ErrLengthMismatch, len(external), len(env))
	}

	dst = core.EnsureLen(dst, len(env))
	if len(env) == 0 {
		return dst, nil
	}

	vecmath.MulBlock(dst, env, external[:len(env)])

	return dst, nil
}
