package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/cwbudde/algo-adsr/dsp/envelope"
	"github.com/cwbudde/algo-adsr/dsp/signal"
)

type options struct {
	params envelope.Params
	end    envelope.EndBehavior
	slope  envelope.SlopePolicy

	inPath     string
	carrier    signal.Waveform
	carrierHz  float64
	carrierAmp float64
	seed       int64

	envOut    string
	out       string
	wavOut    string
	precision int

	stats    bool
	spectrum bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		o       options
		end     string
		slope   string
		carrier string
	)

	fs := flag.NewFlagSet("adsr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs, stderr)

	fs.Float64Var(&o.params.AttackTime, "attack", 0.1, "attack time in seconds")
	fs.Float64Var(&o.params.DecayTime, "decay", 0.05, "decay time in seconds")
	fs.Float64Var(&o.params.SustainTime, "sustain", 0.5, "sustain time in seconds")
	fs.Float64Var(&o.params.ReleaseTime, "release", 0.05, "release time in seconds")
	fs.Float64Var(&o.params.AttackAmplitude, "peak", 1.0, "amplitude reached at the end of the attack")
	fs.Float64Var(&o.params.DecayAmplitude, "level", 0.6, "amplitude the decay falls to and the sustain holds")
	fs.Float64Var(&o.params.SampleRate, "rate", 44100, "sample rate in Hz")
	fs.StringVar(&end, "end", envelope.EndLoop.String(), "behaviour after the release: loop or stop")
	fs.StringVar(&slope, "slope", envelope.SlopeShared.String(), "decay/release slope policy: shared or per-phase")

	fs.StringVar(&o.inPath, "in", "", "two-column signal file to modulate (default: synthetic carrier)")
	fs.StringVar(&carrier, "carrier", signal.WaveformSine.String(), "synthetic carrier: sine, square, noise or dc")
	fs.Float64Var(&o.carrierHz, "carrier-hz", 440, "synthetic carrier frequency in Hz")
	fs.Float64Var(&o.carrierAmp, "carrier-amp", 1, "synthetic carrier amplitude")
	fs.Int64Var(&o.seed, "seed", 1, "noise carrier seed")

	fs.StringVar(&o.envOut, "env-out", "adsr_out.dat", "envelope dump path (empty to skip)")
	fs.StringVar(&o.out, "out", "modulated_out.dat", "modulated signal path (empty to skip)")
	fs.StringVar(&o.wavOut, "wav", "", "also write the modulated signal as 16-bit WAV to this path")
	fs.IntVar(&o.precision, "precision", 6, "digits after the decimal point in text output")

	fs.BoolVar(&o.stats, "stats", false, "print time-domain statistics")
	fs.BoolVar(&o.spectrum, "spectrum", false, "print the dominant frequency of the modulated signal")
	fs.BoolVar(&o.verbose, "v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error

	if o.end, err = envelope.ParseEndBehavior(end); err != nil {
		return options{}, err
	}

	if o.slope, err = envelope.ParseSlopePolicy(slope); err != nil {
		return options{}, err
	}

	if o.carrier, err = signal.ParseWaveform(carrier); err != nil {
		return options{}, err
	}

	return o, nil
}
