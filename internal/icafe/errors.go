package icafe

import "errors"

var (
	// ErrUpstreamUnavailable marks network failures, timeouts and 5xx responses
	// from the iCafeCloud API.
	ErrUpstreamUnavailable = errors.New("icafe upstream unavailable")

	// ErrUpstreamNotFound marks a 404 for a specific resource (e.g. unknown member).
	ErrUpstreamNotFound = errors.New("icafe resource not found")

	// ErrUpstreamMalformed marks a response whose envelope lacks the expected
	// shape where no safe default exists.
	ErrUpstreamMalformed = errors.New("icafe response malformed")
)
