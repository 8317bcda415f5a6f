// Package time computes time-domain summary statistics of timed signals.
package time

import (
	"math"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length   int
	Duration float64 // last time - first time, seconds

	Mean float64
	Min  float64
	Max  float64

	RMS    float64
	RMSDB  float64
	Peak   float64 // max(|max|, |min|)
	PeakDB float64
	// PeakTime is the time of the first sample reaching Peak.
	PeakTime float64

	Energy        float64 // sum of squares
	CrestFactor   float64 // peak / RMS (linear), 0 for silence
	ZeroCrossings int
}

// Calculate computes all statistics in a single pass. An empty input yields
// zero values with -Inf for the dB fields.
func Calculate(samples []core.Sample) Stats {
	if len(samples) == 0 {
		return Stats{RMSDB: math.Inf(-1), PeakDB: math.Inf(-1)}
	}

	first := samples[0]
	st := Stats{
		Length:   len(samples),
		Duration: samples[len(samples)-1].Time - first.Time,
		Min:      first.Amplitude,
		Max:      first.Amplitude,
		Peak:     math.Abs(first.Amplitude),
		PeakTime: first.Time,
	}

	// Kahan-compensated sum for the mean.
	var sum, c float64

	for i, s := range samples {
		x := s.Amplitude

		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		st.Energy += x * x

		if x < st.Min {
			st.Min = x
		}
		if x > st.Max {
			st.Max = x
		}
		if a := math.Abs(x); a > st.Peak {
			st.Peak = a
			st.PeakTime = s.Time
		}

		if i > 0 && samples[i-1].Amplitude*x < 0 {
			st.ZeroCrossings++
		}
	}

	n := float64(len(samples))
	st.Mean = sum / n
	st.RMS = math.Sqrt(st.Energy / n)
	st.RMSDB = core.LinearToDB(st.RMS)
	st.PeakDB = core.LinearToDB(st.Peak)

	if st.RMS > 0 {
		st.CrestFactor = st.Peak / st.RMS
	}

	return st
}
