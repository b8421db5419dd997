package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnreachable         = errors.New("server unreachable")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	Status int
	// Message is the server's human-readable explanation.
	Message string

	kind error
}

// NewResponseError builds the error the adapter returns for a response
// with the given status.
func NewResponseError(status int, message string) *ResponseError {
	return &ResponseError{Status: status, Message: message, kind: statusKind(status)}
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.Status, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// Message returns the server message carried by err, or "" if err is not a
// [*ResponseError].
func Message(err error) string {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}
