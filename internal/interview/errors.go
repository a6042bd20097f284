package interview

import "errors"

// Sentinel errors surfaced to transports; the server maps them to HTTP
// statuses.
var (
	// ErrSessionNotFound indicates the session id is unknown to the store.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrSessionCompleted indicates an operation that requires an active
	// session was attempted on a completed one.
	ErrSessionCompleted = errors.New("interview session is not active")

	// ErrQuestionNotFound indicates a response referenced a question id the
	// session never asked.
	ErrQuestionNotFound = errors.New("question not found for this session")

	// ErrNoResponses indicates report generation was requested before any
	// response was submitted.
	ErrNoResponses = errors.New("no interview responses available for analysis")
)
