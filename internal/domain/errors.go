package domain

import "errors"

// Sentinel errors for chat operations. Handlers map these to HTTP statuses
// with errors.Is; none of them is fatal to the process.
var (
	// ErrEmptyInput indicates the user submitted a blank message.
	ErrEmptyInput = errors.New("no input provided")

	// ErrCompletionFailed indicates the completion provider errored or
	// returned no usable content.
	ErrCompletionFailed = errors.New("no valid response from the AI")

	// ErrCompletionTimeout indicates the completion request hit its deadline.
	ErrCompletionTimeout = errors.New("completion request timed out")

	// ErrUnknownSession indicates the session id is not in the store.
	ErrUnknownSession = errors.New("unknown session")

	// ErrNoActiveSession indicates an append was attempted with no active
	// session. Callers are expected to create one first.
	ErrNoActiveSession = errors.New("no active session")

	// ErrEmptySession indicates summarization was attempted on a session
	// with zero turns.
	ErrEmptySession = errors.New("session has no turns")
)
