package domain

// RequestState tracks the lifecycle of a single remote operation.
// It replaces ad hoc "in flight" booleans so views can render
// loading and failure states uniformly.
type RequestState int

const (
	// RequestIdle means no request has been issued yet.
	RequestIdle RequestState = iota
	// RequestLoading means a request is in flight.
	RequestLoading
	// RequestSucceeded means the last request completed successfully.
	RequestSucceeded
	// RequestFailed means the last request returned an error.
	RequestFailed
)

// String returns the string representation of the request state.
func (s RequestState) String() string {
	switch s {
	case RequestIdle:
		return "idle"
	case RequestLoading:
		return "loading"
	case RequestSucceeded:
		return "succeeded"
	case RequestFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InFlight reports whether a request is currently outstanding.
func (s RequestState) InFlight() bool {
	return s == RequestLoading
}
