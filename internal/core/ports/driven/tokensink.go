package driven

// TokenSink receives the bearer token whenever the session changes.
// The HTTP client implements it so authenticated calls pick up the
// token without core knowing about transport details.
type TokenSink interface {
	// SetToken installs the bearer token. An empty token means
	// logged out.
	SetToken(token string)
}
