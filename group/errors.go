package group

import "errors"

// ErrDecodingFailed is returned when a serialized scalar or point does not
// decode to a valid group element (bad length, out-of-range scalar,
// non-canonical or off-curve point encoding).
var ErrDecodingFailed = errors.New("group: decoding failed")
