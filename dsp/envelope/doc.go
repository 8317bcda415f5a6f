// Package envelope generates piecewise-linear ADSR amplitude envelopes.
//
// An envelope is produced one sample at a time by a phase machine that walks
// Initial -> Attack -> Decay -> Sustain -> Release. Each sample is derived
// from the previous one, so generation is strictly sequential and fully
// deterministic for a given [Params] value.
//
// The attack slope (AttackAmplitude / AttackTime) is, by default, also used
// as the magnitude of the decay and release ramps ([SlopeShared]).
// [SlopePerPhase] derives independent decay and release rates from their
// phase durations instead.
//
// When the release ramp reaches zero the machine restarts the attack
// ([EndLoop], the default) or holds silence ([EndStop]). Either way
// generation stops after exactly [Params.SampleCount] samples.
//
// Typical use:
//
//	buf, err := envelope.Generate(envelope.Params{
//		AttackTime:      0.1,
//		DecayTime:       0.05,
//		SustainTime:     0.5,
//		ReleaseTime:     0.05,
//		AttackAmplitude: 1,
//		DecayAmplitude:  0.6,
//		SampleRate:      44100,
//	})
package envelope
