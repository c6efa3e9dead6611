package ai

import (
	"errors"
	"fmt"
)

// ErrNoResponse is the only error returned by SendMessage. The underlying
// cause is logged, not returned.
var ErrNoResponse = errors.New("failed to get a response, please try again")

// ErrMissingCredential is returned when no API key is configured.
var ErrMissingCredential = errors.New("api key is not configured")

// ErrorKind classifies a failed chat request for diagnostics.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindRequest       ErrorKind = "request"
	KindTransport     ErrorKind = "transport"
	KindFormat        ErrorKind = "format"
)

// Error carries the kind and cause of a failed request.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
