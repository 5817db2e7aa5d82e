package twisted

import "errors"

// ErrMessageOutOfRange is returned when a plaintext does not fit the
// configured message bit-length.
var ErrMessageOutOfRange = errors.New("twisted: message out of configured range")
