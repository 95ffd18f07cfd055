// Package errs defines the sentinel errors shared across the library.
//
// Errors fall into two classes. Input errors wrap ErrMalformedInput and
// report bytes that do not form a valid compressed payload; callers detect
// them with errors.Is and typically skip or quarantine the offending data.
// Usage errors such as ErrUnknownCompression report a caller mistake that is
// detectable before any data is touched.
//
// Out-of-range buffer access is not an error value anywhere in this library.
// It is a bug in the calling code and panics instead.
package errs

import "errors"

var (
	// ErrMalformedInput indicates that an input payload is not a valid
	// instance of the expected compressed format: a bad magic number, a
	// truncated frame, a corrupt block, or a payload produced by a
	// different framing variant. All decoder errors wrap this sentinel.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownCompression indicates a compression type that no codec is
	// registered for.
	ErrUnknownCompression = errors.New("unknown compression type")
)
