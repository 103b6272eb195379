package domain

import "errors"

// Error taxonomy for the refresh pipeline. Empty results are never errors;
// only genuine failures surface through these.
var (
	// ErrInvalidInput marks a missing or malformed user identifier. No
	// partial work happens after it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable wraps any social-store read or write failure.
	// The pipeline does not retry; the scheduler that invoked the run owns
	// retry policy.
	ErrUpstreamUnavailable = errors.New("upstream store unavailable")

	// ErrRateLimited is passed through verbatim when the store reports
	// quota exhaustion.
	ErrRateLimited = errors.New("rate limit exceeded")
)
