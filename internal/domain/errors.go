package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the remote store no longer holds the item.
var ErrNotFound = errors.New("item not found")

// ErrAuthExpired is returned when the session token is missing, expired, or
// rejected by the backend. It is the only error that is fatal to a screen:
// the caller must clear the session and send the operator back to login.
var ErrAuthExpired = errors.New("session expired")

// TransportError wraps a network failure or a 5xx response. Prior local
// state stays valid; the operation may simply be retried by the user.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is a 4xx rejection of field content. Message is the
// backend's human-readable explanation when it supplied one.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected with status %d", e.Status)
}
