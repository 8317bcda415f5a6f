package envelope

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-adsr/internal/testutil"
)

func scenarioParams() Params {
	return Params{
		AttackTime:      0.1,
		DecayTime:       0.05,
		SustainTime:     0.5,
		ReleaseTime:     0.05,
		AttackAmplitude: 1.0,
		DecayAmplitude:  0.6,
		SampleRate:      100,
	}
}

// shortParams produces a cycle that completes well inside the sample count.
func shortParams() Params {
	return Params{
		AttackTime:      0.01,
		DecayTime:       0.01,
		SustainTime:     0.01,
		ReleaseTime:     0.05,
		AttackAmplitude: 1.0,
		DecayAmplitude:  0.5,
		SampleRate:      1000,
	}
}

func mustGenerate(t *testing.T, p Params, opts ...Option) *Buffer {
	t.Helper()

	buf, err := Generate(p, opts...)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	return buf
}

func TestScenarioDerivedValues(t *testing.T) {
	p := scenarioParams()

	if p.SamplePeriod() != 0.01 {
		t.Fatalf("SamplePeriod() = %v, want 0.01", p.SamplePeriod())
	}

	if math.Abs(p.TotalTime()-0.7) > 1e-12 {
		t.Fatalf("TotalTime() = %v, want 0.7", p.TotalTime())
	}

	if p.SampleCount() != 70 {
		t.Fatalf("SampleCount() = %d, want 70", p.SampleCount())
	}

	if p.Slope() != 10 {
		t.Fatalf("Slope() = %v, want 10", p.Slope())
	}
}

func TestGenerateScenario(t *testing.T) {
	buf := mustGenerate(t, scenarioParams())

	if buf.Len() != 70 {
		t.Fatalf("Len() = %d, want 70", buf.Len())
	}

	if s := buf.At(0); s.Time != 0 || s.Amplitude != 0 {
		t.Fatalf("sample 0 = %+v, want (0, 0)", s)
	}

	testutil.RequireSampleNear(t, buf.At(1), 0.01, 0.1, 1e-12)

	if buf.Phase(0) != PhaseInitial || buf.Phase(1) != PhaseAttack {
		t.Fatalf("phases = %v, %v; want initial, attack", buf.Phase(0), buf.Phase(1))
	}

	testutil.RequireFinite(t, buf.Samples())
}

func TestGenerateTimeIsArithmetic(t *testing.T) {
	for _, p := range []Params{scenarioParams(), shortParams()} {
		buf := mustGenerate(t, p)
		period := p.SamplePeriod()

		for i := 1; i < buf.Len(); i++ {
			step := buf.At(i).Time - buf.At(i-1).Time
			if math.Abs(step-period) > 1e-12 {
				t.Fatalf("time step at %d = %v, want %v", i, step, period)
			}
		}
	}
}

func TestGenerateLengthMatchesSampleCount(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"scenario", scenarioParams()},
		{"short", shortParams()},
		{"cd rate", Params{AttackTime: 0.01, DecayTime: 0.02, SustainTime: 0.1, ReleaseTime: 0.03, AttackAmplitude: 0.8, DecayAmplitude: 0.3, SampleRate: 44100}},
		{"single sample", Params{AttackTime: 1, AttackAmplitude: 1, SampleRate: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := mustGenerate(t, tt.p)
			if buf.Len() != tt.p.SampleCount() {
				t.Fatalf("Len() = %d, want %d", buf.Len(), tt.p.SampleCount())
			}
			if s := buf.At(0); s.Time != 0 || s.Amplitude != 0 {
				t.Fatalf("sample 0 = %+v, want (0, 0)", s)
			}
		})
	}
}

func TestAttackStepIsSlopeTimesPeriod(t *testing.T) {
	p := scenarioParams()
	buf := mustGenerate(t, p)
	want := p.Slope() * p.SamplePeriod()

	checked := 0
	for i := 1; i < buf.Len(); i++ {
		if buf.Phase(i) != PhaseAttack {
			continue
		}
		step := buf.At(i).Amplitude - buf.At(i-1).Amplitude
		if math.Abs(step-want) > 1e-12 {
			t.Fatalf("attack step at %d = %v, want %v", i, step, want)
		}
		checked++
	}

	if checked < 10 {
		t.Fatalf("only %d attack samples checked", checked)
	}
}

func TestAttackCrossingHandsOverToDecay(t *testing.T) {
	p := scenarioParams()
	buf := mustGenerate(t, p)

	cross := -1
	for i := 1; i < buf.Len(); i++ {
		if buf.At(i).Amplitude >= p.AttackAmplitude {
			cross = i
			break
		}
	}

	if cross < 0 {
		t.Fatal("attack never reached the peak")
	}

	if buf.Phase(cross) != PhaseAttack {
		t.Fatalf("crossing sample %d computed in %v, want attack", cross, buf.Phase(cross))
	}

	if buf.Phase(cross+1) != PhaseDecay {
		t.Fatalf("sample after crossing computed in %v, want decay", buf.Phase(cross+1))
	}

	step := buf.At(cross+1).Amplitude - buf.At(cross).Amplitude
	if math.Abs(step+p.Slope()*p.SamplePeriod()) > 1e-12 {
		t.Fatalf("first decay step = %v, want %v", step, -p.Slope()*p.SamplePeriod())
	}
}

func TestDecayHandsOverToSustainAtTarget(t *testing.T) {
	p := scenarioParams()
	buf := mustGenerate(t, p)

	for i := 1; i < buf.Len(); i++ {
		if buf.Phase(i) == PhaseSustain && buf.Phase(i-1) == PhaseDecay {
			if buf.At(i - 1).Amplitude > p.DecayAmplitude {
				t.Fatalf("decay left at %v, above target %v", buf.At(i-1).Amplitude, p.DecayAmplitude)
			}
			return
		}
	}

	t.Fatal("no decay to sustain transition found")
}

func TestSustainHoldsAmplitude(t *testing.T) {
	buf := mustGenerate(t, scenarioParams())

	held := 0
	for i := 1; i < buf.Len(); i++ {
		if buf.Phase(i) != PhaseSustain {
			continue
		}
		if buf.At(i).Amplitude != buf.At(i-1).Amplitude {
			t.Fatalf("sustain sample %d = %v, previous = %v", i, buf.At(i).Amplitude, buf.At(i-1).Amplitude)
		}
		held++
	}

	if held < 40 {
		t.Fatalf("only %d sustain samples, want a long sustain", held)
	}
}

func TestSustainHandsOverToReleaseAtTime(t *testing.T) {
	p := scenarioParams()
	buf := mustGenerate(t, p)

	for i := 1; i < buf.Len(); i++ {
		if buf.Phase(i) == PhaseRelease && buf.Phase(i-1) == PhaseSustain {
			if buf.At(i-1).Time < p.SustainEnd() {
				t.Fatalf("sustain ended at %v, before %v", buf.At(i-1).Time, p.SustainEnd())
			}
			if buf.At(i-2).Time >= p.SustainEnd() {
				t.Fatalf("sustain overran: sample at %v was still sustain", buf.At(i-2).Time)
			}
			return
		}
	}

	t.Fatal("no sustain to release transition found")
}

func TestReleaseLoopsBackToAttack(t *testing.T) {
	buf := mustGenerate(t, shortParams())

	for i := 1; i < buf.Len(); i++ {
		if buf.Phase(i) == PhaseAttack && buf.Phase(i-1) == PhaseRelease {
			if buf.At(i - 1).Amplitude > 0 {
				t.Fatalf("release left at %v, want <= 0", buf.At(i-1).Amplitude)
			}
			if buf.At(i).Amplitude <= buf.At(i-1).Amplitude {
				t.Fatal("restarted attack should rise")
			}
			return
		}
	}

	t.Fatal("release never looped back to attack")
}

func TestEndStopHoldsSilence(t *testing.T) {
	p := shortParams()
	buf := mustGenerate(t, p, WithEndBehavior(EndStop))

	if buf.Len() != p.SampleCount() {
		t.Fatalf("Len() = %d, want %d", buf.Len(), p.SampleCount())
	}

	first := -1
	for i := 0; i < buf.Len(); i++ {
		if buf.Phase(i) == PhaseEnd {
			first = i
			break
		}
	}

	if first < 0 {
		t.Fatal("stop behaviour never reached the end phase")
	}

	if buf.Phase(first-1) != PhaseRelease {
		t.Fatalf("end phase entered from %v, want release", buf.Phase(first-1))
	}

	for i := first; i < buf.Len(); i++ {
		if buf.Phase(i) != PhaseEnd {
			t.Fatalf("sample %d left the end phase: %v", i, buf.Phase(i))
		}
		if buf.At(i).Amplitude != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf.At(i).Amplitude)
		}
	}
}

func TestEndBehaviorsAgreeBeforeRelease(t *testing.T) {
	p := shortParams()
	loop := mustGenerate(t, p)
	stop := mustGenerate(t, p, WithEndBehavior(EndStop))

	for i := 0; i < loop.Len(); i++ {
		if loop.Phase(i) != stop.Phase(i) {
			break
		}
		if loop.At(i) != stop.At(i) {
			t.Fatalf("sample %d differs before the behaviours diverge", i)
		}
	}
}

func TestSlopePerPhase(t *testing.T) {
	p := Params{
		AttackTime:      0.1,
		DecayTime:       0.1,
		SustainTime:     0.2,
		ReleaseTime:     0.2,
		AttackAmplitude: 1,
		DecayAmplitude:  0.5,
		SampleRate:      1000,
	}
	buf := mustGenerate(t, p, WithSlopePolicy(SlopePerPhase), WithEndBehavior(EndStop))

	decayStep := (p.AttackAmplitude - p.DecayAmplitude) / p.DecayTime * p.SamplePeriod()
	releaseStep := p.DecayAmplitude / p.ReleaseTime * p.SamplePeriod()

	var decaySamples, releaseSamples int
	for i := 1; i < buf.Len(); i++ {
		step := buf.At(i).Amplitude - buf.At(i-1).Amplitude
		switch buf.Phase(i) {
		case PhaseDecay:
			decaySamples++
			if math.Abs(step+decayStep) > 1e-12 {
				t.Fatalf("decay step at %d = %v, want %v", i, step, -decayStep)
			}
		case PhaseRelease:
			releaseSamples++
			if math.Abs(step+releaseStep) > 1e-12 {
				t.Fatalf("release step at %d = %v, want %v", i, step, -releaseStep)
			}
		}
	}

	// 0.1 s and 0.2 s at 1 kHz, allowing for the threshold samples. The
	// release may be cut short by the sample count.
	if decaySamples < 98 || decaySamples > 104 {
		t.Fatalf("decay lasted %d samples, want about 100", decaySamples)
	}

	if releaseSamples < 195 || releaseSamples > 202 {
		t.Fatalf("release lasted %d samples, want about 200", releaseSamples)
	}
}

func TestSlopePerPhaseNeedsDurations(t *testing.T) {
	p := scenarioParams()
	p.DecayTime = 0

	if _, err := Generate(p, WithSlopePolicy(SlopePerPhase)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Generate() error = %v, want ErrInvalidParameter", err)
	}

	p = scenarioParams()
	p.ReleaseTime = 0

	if _, err := Generate(p, WithSlopePolicy(SlopePerPhase)); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Generate() error = %v, want ErrInvalidParameter", err)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := mustGenerate(t, shortParams())
	b := mustGenerate(t, shortParams())

	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a.At(i), b.At(i))
		}
	}
}

func TestGenerateMatchesClosedFormDuringAttack(t *testing.T) {
	p := Params{
		AttackTime:      0.05,
		DecayTime:       0.05,
		SustainTime:     0.1,
		ReleaseTime:     0.1,
		AttackAmplitude: 0.9,
		DecayAmplitude:  0.4,
		SampleRate:      8000,
	}
	buf := mustGenerate(t, p)

	b, err := PhaseBoundaries(p)
	if err != nil {
		t.Fatalf("PhaseBoundaries() error = %v", err)
	}

	for i := 0; i < buf.Len(); i++ {
		s := buf.At(i)
		if s.Time >= b.AttackEnd-p.SamplePeriod() {
			break
		}
		if math.Abs(s.Amplitude-b.Amplitude(s.Time)) > 1e-9 {
			t.Fatalf("sample %d = %v, closed form %v", i, s.Amplitude, b.Amplitude(s.Time))
		}
	}
}

func TestGenerateInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero attack time", func(p *Params) { p.AttackTime = 0 }},
		{"negative attack time", func(p *Params) { p.AttackTime = -0.1 }},
		{"NaN attack time", func(p *Params) { p.AttackTime = math.NaN() }},
		{"zero sample rate", func(p *Params) { p.SampleRate = 0 }},
		{"negative sample rate", func(p *Params) { p.SampleRate = -48000 }},
		{"Inf sample rate", func(p *Params) { p.SampleRate = math.Inf(1) }},
		{"negative decay time", func(p *Params) { p.DecayTime = -1 }},
		{"NaN sustain time", func(p *Params) { p.SustainTime = math.NaN() }},
		{"Inf release time", func(p *Params) { p.ReleaseTime = math.Inf(1) }},
		{"NaN attack amplitude", func(p *Params) { p.AttackAmplitude = math.NaN() }},
		{"decay above attack amplitude", func(p *Params) { p.DecayAmplitude = 1.5 }},
		{"no samples", func(p *Params) {
			*p = Params{AttackTime: 0.5, AttackAmplitude: 1, SampleRate: 1}
		}},
		{"too many samples", func(p *Params) { p.SampleRate = 1e12 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scenarioParams()
			tt.mutate(&p)

			buf, err := Generate(p)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Generate() error = %v, want ErrInvalidParameter", err)
			}
			if buf != nil {
				t.Fatal("expected no buffer on error")
			}
		})
	}
}

func TestInvalidOptions(t *testing.T) {
	if _, err := Generate(scenarioParams(), WithEndBehavior(EndBehavior(9))); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("end behavior error = %v, want ErrInvalidParameter", err)
	}

	if _, err := Generate(scenarioParams(), WithSlopePolicy(SlopePolicy(-1))); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("slope policy error = %v, want ErrInvalidParameter", err)
	}

	if _, err := Generate(scenarioParams(), nil); err != nil {
		t.Fatalf("nil option should be ignored: %v", err)
	}
}

func TestSampleCountAbsorbsRounding(t *testing.T) {
	// 0.29*100 evaluates to 28.999999999999996 in float64.
	p := Params{AttackTime: 0.29, AttackAmplitude: 1, SampleRate: 100}
	if got := p.SampleCount(); got != 29 {
		t.Fatalf("SampleCount() = %d, want 29", got)
	}
}

func TestBufferAccessorsReturnCopies(t *testing.T) {
	buf := mustGenerate(t, scenarioParams())

	samples := buf.Samples()
	samples[1].Amplitude = 42

	phases := buf.Phases()
	phases[1] = PhaseEnd

	if buf.At(1).Amplitude == 42 || buf.Phase(1) == PhaseEnd {
		t.Fatal("mutating a returned slice changed the buffer")
	}

	amps := buf.AmplitudesInto(make([]float64, 0, 128))
	testutil.RequireSliceNearlyEqual(t, amps, buf.Amplitudes(), 0)

	if len(buf.Times()) != buf.Len() {
		t.Fatalf("len(Times()) = %d, want %d", len(buf.Times()), buf.Len())
	}

	if buf.SampleRate() != 100 {
		t.Fatalf("SampleRate() = %v, want 100", buf.SampleRate())
	}
}

func BenchmarkGenerate(b *testing.B) {
	p := scenarioParams()
	p.SampleRate = 48000

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}
