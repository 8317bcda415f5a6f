package envelope

import "errors"

// ErrInvalidParameter is returned when envelope parameters cannot produce a
// well-defined envelope. No partial buffer is returned alongside it.
var ErrInvalidParameter = errors.New("envelope: invalid parameter")
