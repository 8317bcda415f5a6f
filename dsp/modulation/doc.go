// Package modulation applies amplitude envelopes to signals by sample-wise
// multiplication.
//
// Included operations:
//   - Modulate: envelope buffer x timed external signal, paired by index.
//   - ModulateAmplitudes: allocation-free block form on raw amplitude slices.
//   - Modulator: per-sample processor driven by a streaming envelope generator.
package modulation
