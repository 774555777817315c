package catalyst

import (
	"fmt"
	"time"
)

// APIError represents a server-reported error that does not map to a more
// specific type. StatusCode is the HTTP status; Message is the server's
// detail string.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalyst: api error (status %d): %s", e.StatusCode, e.Message)
}

// AuthError indicates the API key is missing, malformed, or revoked
// (HTTP 401 or 403).
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("catalyst: authentication failed (status %d): %s", e.StatusCode, e.Message)
}

// RateLimitError indicates the account's rate limit was exceeded (HTTP 429).
// RetryAfter is the server-suggested wait in seconds, 0 if not provided.
type RateLimitError struct {
	RetryAfter int
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("catalyst: rate limit exceeded, retry after %ds: %s", e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("catalyst: rate limit exceeded: %s", e.Message)
}

// ServerError indicates a server-side failure (HTTP 5xx).
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("catalyst: server error (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError indicates the service could not be reached at all: a timeout,
// a refused connection, a DNS failure. It is distinct from the server-reported
// errors above so callers can tell "service said no" from "could not reach
// service".
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalyst: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError indicates bad local input, detected before any request was
// sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalyst: validation error on field %q: %s", e.Field, e.Message)
}

// NotReadyError indicates spike trains were requested for a job that has not
// completed yet. The server reports this condition; the client surfaces it
// verbatim.
type NotReadyError struct {
	Message string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("catalyst: job not ready: %s", e.Message)
}

// JobFailedError indicates a simulation job reached the failed status while
// waiting for it. Reason is the server-provided failure reason.
type JobFailedError struct {
	JobID  string
	Reason string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("catalyst: job %s failed: %s", e.JobID, e.Reason)
}

// TimeoutError indicates [Client.Simulate] gave up waiting for a terminal
// status. The job is not cancelled server side; it may still complete.
type TimeoutError struct {
	JobID  string
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("catalyst: job %s did not complete within %s", e.JobID, e.Waited)
}
