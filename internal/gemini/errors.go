package gemini

import "errors"

var (
	// ErrTimeout indicates the call was cancelled by its context deadline.
	ErrTimeout = errors.New("gemini request timed out")

	// ErrUnavailable indicates the API could not be reached.
	ErrUnavailable = errors.New("gemini unavailable")

	// ErrUpstreamStatus indicates a non-200 reply.
	ErrUpstreamStatus = errors.New("gemini returned non-success status")

	// ErrMalformedResponse indicates a 200 reply without candidate text.
	ErrMalformedResponse = errors.New("gemini response missing candidate text")
)
