package internal

import "fmt"

// PreconditionError means an action required local state that was not
// set, typically an active session. The request is never sent.
type PreconditionError struct {
	Action string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Reason)
}

// ErrNoActiveSession builds the standard precondition failure for
// actions that need a session.
func ErrNoActiveSession(action string) error {
	return &PreconditionError{Action: action, Reason: "create or load a session first"}
}

// ErrBusy reports a submission attempted while another is outstanding.
func ErrBusy(action string) error {
	return &PreconditionError{Action: action, Reason: "a request is already in flight"}
}

// TransportError represents a request that could not complete: network
// failure, unexpected status, or an undecodable body.
type TransportError struct {
	Op  string // "create session", "submit turn", ...
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError carries an application-level error field returned by the
// server in place of the expected payload. Message is verbatim.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%s]: %s", e.Op, e.Message)
}
