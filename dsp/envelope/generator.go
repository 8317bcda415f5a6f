package envelope

import "github.com/cwbudde/algo-adsr/dsp/core"

// Generator is the streaming form of the envelope phase machine. Each call
// to Next emits one sample derived from the previously emitted one.
//
// Generator is not safe for concurrent use.
type Generator struct {
	params Params
	cfg    config

	// Per-sample amplitude steps (slope * period).
	attackStep  float64
	decayStep   float64
	releaseStep float64

	period     float64
	sustainEnd float64

	phase Phase
	last  core.Sample
}

// NewGenerator validates p and returns a generator positioned before the
// initial sample.
func NewGenerator(p Params, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	s, err := deriveSlopes(p, cfg.slope)
	if err != nil {
		return nil, err
	}

	period := p.SamplePeriod()

	return &Generator{
		params:      p,
		cfg:         cfg,
		attackStep:  s.attack * period,
		decayStep:   s.decay * period,
		releaseStep: s.release * period,
		period:      period,
		sustainEnd:  p.SustainEnd(),
		phase:       PhaseInitial,
	}, nil
}

// Params returns the parameters the generator was built from.
func (g *Generator) Params() Params { return g.params }

// EndBehavior returns the configured end behaviour.
func (g *Generator) EndBehavior() EndBehavior { return g.cfg.end }

// SlopePolicy returns the configured slope policy.
func (g *Generator) SlopePolicy() SlopePolicy { return g.cfg.slope }

// Phase returns the phase the next call to Next computes its sample in.
func (g *Generator) Phase() Phase { return g.phase }

// Last returns the most recently emitted sample, or the zero sample before
// the first call to Next.
func (g *Generator) Last() core.Sample { return g.last }

// Reset rewinds the generator to the initial phase.
func (g *Generator) Reset() {
	g.phase = PhaseInitial
	g.last = core.Sample{}
}

// Next computes the next sample under the current phase, then evaluates the
// phase's exit condition against that sample. A sample that crosses a
// threshold is therefore still shaped by the phase it crossed in.
func (g *Generator) Next() core.Sample {
	var s core.Sample

	switch g.phase {
	case PhaseInitial:
		g.phase = PhaseAttack
	case PhaseAttack:
		s = g.step(g.attackStep)
		if s.Amplitude >= g.params.AttackAmplitude {
			g.phase = PhaseDecay
		}
	case PhaseDecay:
		s = g.step(-g.decayStep)
		if s.Amplitude <= g.params.DecayAmplitude {
			g.phase = PhaseSustain
		}
	case PhaseSustain:
		s = core.Sample{Time: g.last.Time + g.period, Amplitude: g.last.Amplitude}
		if s.Time >= g.sustainEnd {
			g.phase = PhaseRelease
		}
	case PhaseRelease:
		s = g.step(-g.releaseStep)
		if s.Amplitude <= 0 {
			if g.cfg.end == EndStop {
				g.phase = PhaseEnd
			} else {
				g.phase = PhaseAttack
			}
		}
	case PhaseEnd:
		s = core.Sample{Time: g.last.Time + g.period}
	}

	g.last = s

	return s
}

func (g *Generator) step(delta float64) core.Sample {
	return core.Sample{
		Time:      g.last.Time + g.period,
		Amplitude: g.last.Amplitude + delta,
	}
}
