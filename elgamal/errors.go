package elgamal

import "errors"

// ErrMessageOutOfRange is returned when a plaintext does not fit the
// configured message bit-length, so it could never be recovered by the
// bounded discrete-log solver.
var ErrMessageOutOfRange = errors.New("elgamal: message out of configured range")
