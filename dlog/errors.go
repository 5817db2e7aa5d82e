package dlog

import "errors"

// ErrTableMismatch is returned when a loaded table's header does not match
// the curve or (L, t) parameters the caller expected.
var ErrTableMismatch = errors.New("dlog: table parameters do not match")

// ErrNotFoundInRange is returned when Solve/ParallelSolve exhausts the
// configured [0, 2^L) search range without finding the discrete log.
var ErrNotFoundInRange = errors.New("dlog: discrete log not found in configured range")

// ErrIOFailed is returned in place of any failure reading or writing a
// persisted table; the underlying error is not kept.
var ErrIOFailed = errors.New("dlog: table I/O failed")
