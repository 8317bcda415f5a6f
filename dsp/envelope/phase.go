package envelope

// Phase identifies the segment of the envelope a sample is computed in.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseAttack
	PhaseDecay
	PhaseSustain
	PhaseRelease
	// PhaseEnd is only reachable with EndStop. It emits silence.
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseAttack:
		return "attack"
	case PhaseDecay:
		return "decay"
	case PhaseSustain:
		return "sustain"
	case PhaseRelease:
		return "release"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}
