package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-adsr/dsp/core"
	"github.com/cwbudde/algo-adsr/dsp/envelope"
	"github.com/cwbudde/algo-adsr/dsp/modulation"
	"github.com/cwbudde/algo-adsr/dsp/signal"
	"github.com/cwbudde/algo-adsr/dsp/spectrum"
	"github.com/cwbudde/algo-adsr/format/dat"
	"github.com/cwbudde/algo-adsr/format/wavout"
	timestats "github.com/cwbudde/algo-adsr/stats/time"
)

func render(o options, stdout io.Writer, logger *log.Logger) error {
	env, err := envelope.Generate(o.params,
		envelope.WithEndBehavior(o.end),
		envelope.WithSlopePolicy(o.slope),
	)
	if err != nil {
		return err
	}

	logger.Printf("envelope: %d samples, %.6f s at %g Hz (%s, %s slope)",
		env.Len(), o.params.TotalTime(), o.params.SampleRate, o.end, o.slope)

	external, err := loadExternal(o, env.Len())
	if err != nil {
		return err
	}

	out, err := modulation.Modulate(env, external)
	if err != nil {
		return err
	}

	if err := writeDat(o.envOut, env.Samples(), o.precision); err != nil {
		return err
	}

	if o.envOut != "" {
		logger.Printf("wrote envelope to %s", o.envOut)
	}

	if err := writeDat(o.out, out, o.precision); err != nil {
		return err
	}

	if o.out != "" {
		logger.Printf("wrote modulated signal to %s", o.out)
	}

	if o.wavOut != "" {
		if err := writeWAV(o.wavOut, int(math.Round(o.params.SampleRate)), out); err != nil {
			return err
		}
		logger.Printf("wrote WAV to %s", o.wavOut)
	}

	if o.stats {
		printStats(stdout, env.Samples(), out)
	}

	if o.spectrum {
		if err := printSpectrum(stdout, out, o.params.SampleRate); err != nil {
			return err
		}
	}

	return nil
}

func loadExternal(o options, n int) ([]core.Sample, error) {
	if o.inPath == "" {
		g := signal.NewGenerator(
			[]core.ProcessorOption{core.WithSampleRate(o.params.SampleRate)},
			signal.WithSeed(o.seed),
		)
		return g.Carrier(o.carrier, o.carrierHz, o.carrierAmp, n)
	}

	f, err := os.Open(o.inPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := dat.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.inPath, err)
	}

	return samples, nil
}

func writeDat(path string, samples []core.Sample, precision int) (err error) {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return dat.Write(f, samples, dat.WithPrecision(precision))
}

func writeWAV(path string, sampleRate int, samples []core.Sample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return wavout.Write(f, sampleRate, samples)
}

func printStats(w io.Writer, env, out []core.Sample) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIGNAL\tSAMPLES\tPEAK\tPEAK dB\tPEAK AT s\tRMS\tRMS dB\tCREST")

	for _, row := range []struct {
		name    string
		samples []core.Sample
	}{
		{"envelope", env},
		{"modulated", out},
	} {
		s := timestats.Calculate(row.samples)
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.2f\t%.4f\t%.4f\t%.2f\t%.2f\n",
			row.name, s.Length, s.Peak, s.PeakDB, s.PeakTime, s.RMS, s.RMSDB, s.CrestFactor)
	}

	tw.Flush()
}

func printSpectrum(w io.Writer, out []core.Sample, sampleRate float64) error {
	res, err := spectrum.Analyze(core.Amplitudes(out), sampleRate)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "dominant frequency: %.2f Hz (%.2f dB, fft %d, bin %.3f Hz)\n",
		res.PeakHz, res.PeakDB, res.FFTSize, res.BinHz)

	return nil
}
