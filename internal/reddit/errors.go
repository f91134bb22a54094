package reddit

import "errors"

// Sentinel errors for the reddit client.
var (
	ErrRequest            = errors.New("reddit request failed")
	ErrRateLimited        = errors.New("reddit rate limit exceeded")
	ErrUnexpectedResponse = errors.New("unexpected reddit response")
	ErrInvalidBaseURL     = errors.New("invalid reddit base URL")
)
