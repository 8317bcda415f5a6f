package envelope

import "fmt"

// EndBehavior selects what happens once the release reaches zero.
type EndBehavior int

const (
	// EndLoop restarts the attack after the release, producing a cyclic
	// envelope until the sample count is exhausted.
	EndLoop EndBehavior = iota
	// EndStop enters PhaseEnd and emits silence for the remaining samples.
	EndStop
)

func (e EndBehavior) String() string {
	switch e {
	case EndLoop:
		return "loop"
	case EndStop:
		return "stop"
	default:
		return "unknown"
	}
}

// SlopePolicy selects how decay and release rates are derived.
type SlopePolicy int

const (
	// SlopeShared uses AttackAmplitude/AttackTime for attack, decay and
	// release alike.
	SlopeShared SlopePolicy = iota
	// SlopePerPhase uses (AttackAmplitude-DecayAmplitude)/DecayTime for
	// the decay and DecayAmplitude/ReleaseTime for the release. It
	// requires positive decay and release times.
	SlopePerPhase
)

func (s SlopePolicy) String() string {
	switch s {
	case SlopeShared:
		return "shared"
	case SlopePerPhase:
		return "per-phase"
	default:
		return "unknown"
	}
}

// Option configures envelope generation.
type Option func(*config) error

type config struct {
	end   EndBehavior
	slope SlopePolicy
}

func defaultConfig() config {
	return config{
		end:   EndLoop,
		slope: SlopeShared,
	}
}

// WithEndBehavior selects loop or stop behaviour after the release.
func WithEndBehavior(end EndBehavior) Option {
	return func(cfg *config) error {
		if end != EndLoop && end != EndStop {
			return fmt.Errorf("%w: unknown end behavior: %d", ErrInvalidParameter, end)
		}

		cfg.end = end

		return nil
	}
}

// WithSlopePolicy selects how decay and release slopes are computed.
func WithSlopePolicy(policy SlopePolicy) Option {
	return func(cfg *config) error {
		if policy != SlopeShared && policy != SlopePerPhase {
			return fmt.Errorf("%w: unknown slope policy: %d", ErrInvalidParameter, policy)
		}

		cfg.slope = policy

		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// ParseEndBehavior maps "loop" or "stop" to an EndBehavior.
func ParseEndBehavior(name string) (EndBehavior, error) {
	for _, e := range []EndBehavior{EndLoop, EndStop} {
		if e.String() == name {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown end behavior %q", ErrInvalidParameter, name)
}

// ParseSlopePolicy maps "shared" or "per-phase" to a SlopePolicy.
func ParseSlopePolicy(name string) (SlopePolicy, error) {
	for _, s := range []SlopePolicy{SlopeShared, SlopePerPhase} {
		if s.String() == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown slope policy %q", ErrInvalidParameter, name)
}
