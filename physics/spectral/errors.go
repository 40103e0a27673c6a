package spectral

import "errors"

// ErrShape reports an array whose shape does not match its data or the
// operation.
var ErrShape = errors.New("spectral: shape mismatch")
