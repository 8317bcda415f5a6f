package envelope

import "fmt"

// slopes holds the per-second ramp magnitudes of the three linear phases.
type slopes struct {
	attack  float64
	decay   float64
	release float64
}

func deriveSlopes(p Params, policy SlopePolicy) (slopes, error) {
	shared := p.Slope()

	switch policy {
	case SlopeShared:
		return slopes{attack: shared, decay: shared, release: shared}, nil
	case SlopePerPhase:
		if p.DecayTime <= 0 {
			return slopes{}, fmt.Errorf("%w: per-phase slope needs decay time > 0: %f", ErrInvalidParameter, p.DecayTime)
		}

		if p.ReleaseTime <= 0 {
			return slopes{}, fmt.Errorf("%w: per-phase slope needs release time > 0: %f", ErrInvalidParameter, p.ReleaseTime)
		}

		return slopes{
			attack:  shared,
			decay:   (p.AttackAmplitude - p.DecayAmplitude) / p.DecayTime,
			release: p.DecayAmplitude / p.ReleaseTime,
		}, nil
	default:
		return slopes{}, fmt.Errorf("%w: unknown slope policy: %d", ErrInvalidParameter, policy)
	}
}
