package core

// Sample is one point of a timed signal: a time in seconds and a
// dimensionless amplitude.
type Sample struct {
	Time      float64
	Amplitude float64
}

// Times returns the time column of samples.
func Times(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Time
	}
	return out
}

// Amplitudes returns the amplitude column of samples.
func Amplitudes(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Amplitude
	}
	return out
}

// AmplitudesInto writes the amplitude column of samples into dst, reusing
// its capacity, and returns the resized slice.
func AmplitudesInto(dst []float64, samples []Sample) []float64 {
	dst = EnsureLen(dst, len(samples))
	for i, s := range samples {
		dst[i] = s.Amplitude
	}
	return dst
}

// Timed attaches a uniform time axis starting at 0 to amps.
// period is the spacing between consecutive samples in seconds.
func Timed(amps []float64, period float64) []Sample {
	out := make([]Sample, len(amps))
	t := 0.0
	for i, a := range amps {
		out[i] = Sample{Time: t, Amplitude: a}
		t += period
	}
	return out
}
