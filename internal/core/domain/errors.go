package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotLoggedIn indicates an operation requires an active session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionExpired indicates the server rejected the bearer token.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoWorkspace indicates no workspace is selected for the operation.
	ErrNoWorkspace = errors.New("no workspace selected")

	// ErrMalformedResponse indicates the server returned a payload that
	// does not match the documented shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrRateLimited indicates the client-side rate limiter rejected the call.
	ErrRateLimited = errors.New("rate limited")
)
