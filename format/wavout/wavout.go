// Package wavout exports timed signals as mono 16-bit PCM WAV files.
//
// Only the amplitude column is written; samples are assumed to be uniformly
// spaced at the given sample rate. Amplitudes are clamped to [-1, 1].
package wavout

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

const (
	bitDepth     = 16
	pcmFormat    = 1
	maxInt16     = 32767
	monoChannels = 1
)

var ErrInvalidSampleRate = errors.New("wavout: sample rate must be positive")

// Write encodes samples into ws. ws must support seeking so the encoder can
// patch chunk sizes once all data is written.
func Write(ws io.WriteSeeker, sampleRate int, samples []core.Sample) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = ToInt16(s.Amplitude)
	}

	enc := wav.NewEncoder(ws, sampleRate, bitDepth, monoChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavout: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavout: close: %w", err)
	}

	return nil
}

// ToInt16 converts a float amplitude to a 16-bit PCM value, clamping to
// [-1, 1] and using 32767 as full scale on both sides.
func ToInt16(x float64) int {
	if !core.IsFinite(x) {
		return 0
	}
	return int(core.Clamp(x, -1, 1) * maxInt16)
}
