package errs

import (
	"errors"
	"net/http"
)

// Code tells a client how to react to a failed request.
type Code uint8

const (
	// Internal is the zero Code so that anything not classified is a server fault.
	Internal Code = iota
	InvalidArgument
	Unauthenticated
	NotFound
	AlreadyExists
	Conflict
)

var statuses = map[Code]int{
	InvalidArgument: http.StatusBadRequest,
	Unauthenticated: http.StatusUnauthorized,
	NotFound:        http.StatusNotFound,
	AlreadyExists:   http.StatusConflict,
	Conflict:        http.StatusConflict,
}

// Error pairs the message shown to the client with the cause kept for logs.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, cause: cause}
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// CodeOf returns Internal for nil and for errors raised outside this package.
func CodeOf(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return Internal
}

func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// MessageOf is the response text for err. Store and driver errors are never
// shown to clients.
func MessageOf(err error) string {
	if e, ok := as(err); ok && e.Message != "" {
		return e.Message
	}
	return "internal error"
}

// HTTPStatus is the response status of a Code.
func HTTPStatus(code Code) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
