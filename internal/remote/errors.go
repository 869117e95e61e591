package remote

import (
	"errors"
	"fmt"
)

// Sentinel failures every gateway operation can surface. Callers branch on
// these with errors.Is; anything else is either a ValidationError caught
// before the network, a NetworkError from transport, or an APIError carrying
// the server's own message.
var (
	// ErrUnauthorized means the bearer credential is missing, invalid, or
	// expired. Autosave treats this as a prompt to re-authenticate rather
	// than discarding edits.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the id does not exist or is not owned by the caller.
	ErrNotFound = errors.New("note not found")
)

// ValidationError reports a missing required field, caught before any
// network call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NetworkError wraps a transport failure or timeout.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response the server explained (or failed to). The
// message is taken from the response body when one is provided.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Message)
}
