package structures

import "errors"

// ErrMalformedPayload indicates a structure decoder ran out of bytes or
// found a value outside its expected domain.
var ErrMalformedPayload = errors.New("structures: malformed payload")
