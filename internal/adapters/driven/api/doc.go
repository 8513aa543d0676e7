// Package api implements the driven API ports against the remote
// document-management service's JSON-over-HTTPS REST interface.
//
// Every endpoint has a typed request/response schema; payloads that do not
// match the documented shape are rejected at this boundary instead of being
// passed upward. Authenticated requests carry a bearer token and a client
// request ID, and pass through a token-bucket rate limiter.
package api
