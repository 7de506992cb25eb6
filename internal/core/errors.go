package core

import "errors"

// Error kinds raised by the planning core. Every error is a
// deterministic function of the inputs; nothing here is retryable.
var (
	// ErrInvalidArgument indicates a malformed or out-of-range input:
	// negative durations, non-positive dimensions, out-of-range volume.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput indicates script text that cannot be decoded.
	ErrInvalidInput = errors.New("invalid input")
)
