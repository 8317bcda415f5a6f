package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

var (
	ErrEmptySignal       = errors.New("spectrum: signal is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Result is a one-sided magnitude spectrum.
type Result struct {
	// FFTSize is the transform length (a power of two >= the signal length).
	FFTSize int
	// BinHz is the frequency spacing between bins.
	BinHz float64
	// Magnitudes holds bins 0..FFTSize/2, normalised so that a full-scale
	// sine under the Hann window reads about 1 at its bin.
	Magnitudes []float64
	PeakBin    int
	PeakHz     float64
	PeakDB     float64
}

// Analyze computes the Hann-windowed magnitude spectrum of signal and finds
// its strongest non-DC bin.
func Analyze(signal []float64, sampleRate float64) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return Result{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	if fftSize < 2 {
		fftSize = 2
	}

	in := make([]complex128, fftSize)

	var gain float64
	for i, x := range signal {
		w := hann(i, len(signal))
		gain += w
		in[i] = complex(x*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	mags := Magnitude(out[:fftSize/2+1])

	if gain > 0 {
		scale := 2 / gain
		for i := range mags {
			mags[i] *= scale
		}
	}

	res := Result{
		FFTSize:    fftSize,
		BinHz:      sampleRate / float64(fftSize),
		Magnitudes: mags,
	}

	peak := 0.0
	for k := 1; k < len(mags); k++ {
		if mags[k] > peak {
			peak = mags[k]
			res.PeakBin = k
		}
	}

	res.PeakHz = float64(res.PeakBin) * res.BinHz
	res.PeakDB = core.LinearToDB(peak)

	return res, nil
}

func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
