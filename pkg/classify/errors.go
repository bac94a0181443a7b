package classify

import "errors"

var (
	// ErrInvalidQuery means the query text was empty after
	// normalization. Caller-correctable.
	ErrInvalidQuery = errors.New("invalid query: empty after normalization")

	// ErrEncoding means the embedding provider rejected or failed on
	// the input. Infrastructure fault; never degraded into a guess.
	ErrEncoding = errors.New("embedding encoding failed")

	// ErrRetrievalUnavailable means the vector index could not be
	// reached. Non-fatal: callers may retry the whole classification.
	ErrRetrievalUnavailable = errors.New("vector retrieval unavailable")

	// ErrRerankUnavailable means the cross-encoder scoring service
	// failed or returned an inconsistent result. Infrastructure fault,
	// same retry semantics as retrieval.
	ErrRerankUnavailable = errors.New("cross-encoder rerank unavailable")

	// ErrCalibratorUnavailable means no fitted calibration model is
	// loaded. This is a startup precondition, not a per-request error.
	ErrCalibratorUnavailable = errors.New("calibrator unavailable: no fitted model loaded")
)
