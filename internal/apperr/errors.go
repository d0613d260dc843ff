// Package apperr classifies failures surfaced to callers of the booking
// service. Transport adapters translate a Code into their own status codes.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	// CodeInvalidArgument marks malformed or missing request fields.
	CodeInvalidArgument Code = "invalid_argument"
	// CodeNotFound marks a reference to a booking that does not exist.
	CodeNotFound Code = "not_found"
	// CodeFailedPrecondition marks a well-formed request that the current
	// system state cannot satisfy.
	CodeFailedPrecondition Code = "failed_precondition"
	CodeInternal           Code = "internal"
)

type Error struct {
	Code Code
	// Field is the request path of the offending field, if any,
	// e.g. "segments[2].origin_code".
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// InvalidField reports an invalid argument on a specific request field.
func InvalidField(field, message string) *Error {
	return &Error{Code: CodeInvalidArgument, Field: field, Message: message}
}

// CodeOf returns the classification of err. Unclassified errors are internal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func IsInvalidArgument(err error) bool {
	return err != nil && CodeOf(err) == CodeInvalidArgument
}

func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == CodeNotFound
}

func IsFailedPrecondition(err error) bool {
	return err != nil && CodeOf(err) == CodeFailedPrecondition
}
