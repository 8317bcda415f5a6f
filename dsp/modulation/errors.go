package modulation

import "errors"

var (
	// ErrLengthMismatch is returned when the external signal holds fewer
	// samples than the envelope.
	ErrLengthMismatch = errors.New("modulation: length mismatch")
	// ErrNilEnvelope is returned when no envelope is supplied.
	ErrNilEnvelope = errors.New("modulation: envelope is nil")
)
