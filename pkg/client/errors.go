package client

import "errors"

var (
	// ErrInvalidConfig is returned when environment variables cannot be
	// parsed into the client configuration
	ErrInvalidConfig = errors.New("client: failed to parse configuration")

	// ErrInvalidBaseURL is returned when the configured base URL is not an
	// absolute http(s) URL
	ErrInvalidBaseURL = errors.New("client: invalid base URL")

	// ErrUnexpectedStatus is returned when the API responds with a non-2xx
	// status code
	ErrUnexpectedStatus = errors.New("client: unexpected response status")

	// ErrDecodeResponse is returned when a response body cannot be decoded
	// as the expected JSON document
	ErrDecodeResponse = errors.New("client: failed to decode response body")

	// ErrTokenSource is returned when the configured OAuth token source
	// cannot produce an access token
	ErrTokenSource = errors.New("client: failed to obtain access token")
)
