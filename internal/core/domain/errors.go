package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotAuthenticated indicates a submission was attempted without a
	// signed-in session. Blocked before any network I/O.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSubmissionInFlight indicates a submission is already running.
	// Overlapping submissions are rejected, never queued.
	ErrSubmissionInFlight = errors.New("submission in flight")

	// ErrServerRejected indicates the record store was reachable but
	// reported failure. The server-supplied reason, when present, is
	// wrapped around this sentinel.
	ErrServerRejected = errors.New("submission rejected")

	// ErrUnknownQuestion indicates a mutation referenced a question id
	// outside the schema.
	ErrUnknownQuestion = errors.New("unknown question id")

	// ErrInvalidAnswerState indicates an answer state outside Yes/No/N-A.
	ErrInvalidAnswerState = errors.New("invalid answer state")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

// RejectionError carries the server-supplied reason for a rejected
// submission. It unwraps to ErrServerRejected.
type RejectionError struct {
	// Reason is the server's error string; may be empty.
	Reason string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	if e.Reason == "" {
		return ErrServerRejected.Error()
	}
	return e.Reason
}

// Unwrap ties the rejection to the ErrServerRejected sentinel.
func (e *RejectionError) Unwrap() error {
	return ErrServerRejected
}
