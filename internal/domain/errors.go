package domain

import "errors"

// Error taxonomy for a summarization run. All of these are terminal for
// the run that raised them; the core performs no retries and never
// returns a partial summary.
var (
	// ErrInput marks empty, undecodable, or zero-sentence input.
	ErrInput = errors.New("unusable input")

	// ErrInvalidRequest marks out-of-range request parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrBackendUnavailable marks an execution backend that cannot be
	// reached or has no active workers. The core never substitutes a
	// different backend; falling back is the caller's decision.
	ErrBackendUnavailable = errors.New("execution backend unavailable")

	// ErrBatchFailed marks a batch whose vectorization failed. The whole
	// batch is discarded and the run fails; folding a partial batch would
	// corrupt the document-frequency statistics.
	ErrBatchFailed = errors.New("batch vectorization failed")
)
