package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

const (
	// MaxSampleCount bounds the size of a single generated envelope.
	MaxSampleCount = 1 << 30

	// sampleCountGuard absorbs rounding in TotalTime()*SampleRate so that
	// e.g. 0.29 s at 100 Hz yields 29 samples rather than 28.
	sampleCountGuard = 1e-9
)

// Params describes an ADSR envelope. Times are in seconds, amplitudes are
// dimensionless gains and SampleRate is in Hz.
type Params struct {
	AttackTime  float64
	DecayTime   float64
	SustainTime float64
	ReleaseTime float64

	// AttackAmplitude is the peak reached at the end of the attack.
	AttackAmplitude float64
	// DecayAmplitude is the level the decay ramps down to and the sustain
	// holds. It must not exceed AttackAmplitude.
	DecayAmplitude float64

	SampleRate float64
}

// TotalTime returns the nominal envelope length in seconds.
func (p Params) TotalTime() float64 {
	return p.AttackTime + p.DecayTime + p.SustainTime + p.ReleaseTime
}

// SamplePeriod returns the time between two samples in seconds.
func (p Params) SamplePeriod() float64 {
	return 1 / p.SampleRate
}

// SampleCount returns floor(TotalTime * SampleRate).
func (p Params) SampleCount() int {
	n := p.TotalTime() * p.SampleRate
	if !core.IsFinite(n) || n < 0 {
		return 0
	}

	n = math.Floor(n + sampleCountGuard)
	if n > MaxSampleCount {
		return MaxSampleCount
	}

	return int(n)
}

// Slope returns AttackAmplitude / AttackTime, the amplitude change per
// second during the attack.
func (p Params) Slope() float64 {
	return p.AttackAmplitude / p.AttackTime
}

// SustainEnd returns the time at which the sustain hands over to the
// release.
func (p Params) SustainEnd() float64 {
	return p.AttackTime + p.DecayTime + p.SustainTime
}

// Validate checks p and returns an error wrapping ErrInvalidParameter for
// the first problem found.
func (p Params) Validate() error {
	if p.SampleRate <= 0 || !core.IsFinite(p.SampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0 and finite: %f", ErrInvalidParameter, p.SampleRate)
	}

	if p.AttackTime <= 0 || !core.IsFinite(p.AttackTime) {
		return fmt.Errorf("%w: attack time must be > 0 and finite: %f", ErrInvalidParameter, p.AttackTime)
	}

	for _, d := range []struct {
		name  string
		value float64
	}{
		{"decay time", p.DecayTime},
		{"sustain time", p.SustainTime},
		{"release time", p.ReleaseTime},
	} {
		if d.value < 0 || !core.IsFinite(d.value) {
			return fmt.Errorf("%w: %s must be >= 0 and finite: %f", ErrInvalidParameter, d.name, d.value)
		}
	}

	if !core.IsFinite(p.AttackAmplitude) {
		return fmt.Errorf("%w: attack amplitude must be finite: %f", ErrInvalidParameter, p.AttackAmplitude)
	}

	if !core.IsFinite(p.DecayAmplitude) {
		return fmt.Errorf("%w: decay amplitude must be finite: %f", ErrInvalidParameter, p.DecayAmplitude)
	}

	if p.DecayAmplitude > p.AttackAmplitude {
		return fmt.Errorf("%w: decay amplitude %f exceeds attack amplitude %f",
			ErrInvalidParameter, p.DecayAmplitude, p.AttackAmplitude)
	}

	if total := p.TotalTime() * p.SampleRate; total >= MaxSampleCount+1 {
		return fmt.Errorf("%w: envelope too long: %.0f samples (max %d)", ErrInvalidParameter, total, MaxSampleCount)
	}

	if n := p.SampleCount(); n < 1 {
		return fmt.Errorf("%w: sample count must be >= 1: %d", ErrInvalidParameter, n)
	}

	return nil
}
