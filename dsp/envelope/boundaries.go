package envelope

import "math"

// Boundaries are the ideal continuous-time phase edges of the first envelope
// cycle, in seconds. The sampled envelope reaches each edge within one
// sample period of these values.
type Boundaries struct {
	AttackEnd  float64
	DecayEnd   float64
	SustainEnd float64
	ReleaseEnd float64

	peak  float64
	level float64
	s     slopes
}

// PhaseBoundaries computes the closed-form phase edges for p under the given
// options. EndBehavior has no influence on the first cycle.
func PhaseBoundaries(p Params, opts ...Option) (Boundaries, error) {
	if err := p.Validate(); err != nil {
		return Boundaries{}, err
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return Boundaries{}, err
	}

	s, err := deriveSlopes(p, cfg.slope)
	if err != nil {
		return Boundaries{}, err
	}

	b := Boundaries{peak: p.AttackAmplitude, level: p.DecayAmplitude, s: s}

	if s.attack > 0 {
		b.AttackEnd = p.AttackTime
	}

	var decayDur float64
	if drop := p.AttackAmplitude - p.DecayAmplitude; drop > 0 && s.decay > 0 {
		decayDur = drop / s.decay
	}

	b.DecayEnd = b.AttackEnd + decayDur
	b.SustainEnd = math.Max(b.DecayEnd, p.SustainEnd())

	var releaseDur float64
	if p.DecayAmplitude > 0 && s.release > 0 {
		releaseDur = p.DecayAmplitude / s.release
	}

	b.ReleaseEnd = b.SustainEnd + releaseDur

	return b, nil
}

// PhaseAt returns the phase that is active at time t.
func (b Boundaries) PhaseAt(t float64) Phase {
	switch {
	case t <= 0:
		return PhaseInitial
	case t < b.AttackEnd:
		return PhaseAttack
	case t < b.DecayEnd:
		return PhaseDecay
	case t < b.SustainEnd:
		return PhaseSustain
	case t < b.ReleaseEnd:
		return PhaseRelease
	default:
		return PhaseEnd
	}
}

// Amplitude evaluates the ideal piecewise-linear envelope at time t. It
// returns 0 before the start and after the release of the first cycle.
func (b Boundaries) Amplitude(t float64) float64 {
	switch b.PhaseAt(t) {
	case PhaseAttack:
		return b.s.attack * t
	case PhaseDecay:
		return b.peak - b.s.decay*(t-b.AttackEnd)
	case PhaseSustain:
		return b.level
	case PhaseRelease:
		return b.level - b.s.release*(t-b.SustainEnd)
	default:
		return 0
	}
}
