// Package signal generates deterministic test carriers that an envelope can
// be applied to when no external recording is available.
package signal
