// Package spectrum computes magnitude spectra of modulated signals and
// locates their dominant frequency.
package spectrum
