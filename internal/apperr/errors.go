package apperr

import (
	"errors"
	"fmt"
)

// Code classifies a failure for callers and transports.
type Code string

const (
	CodeNotFound             Code = "NOT_FOUND"
	CodeInvalidOperation     Code = "INVALID_OPERATION"
	CodeInsufficientResource Code = "INSUFFICIENT_RESOURCE"
	CodeLimitReached         Code = "LIMIT_REACHED"
	CodeInternal             Code = "INTERNAL"
)

// Sentinels for errors.Is checks. Any *Error with the same code matches.
var (
	ErrNotFound             = New(CodeNotFound, "not found")
	ErrInvalidOperation     = New(CodeInvalidOperation, "invalid operation")
	ErrInsufficientResource = New(CodeInsufficientResource, "insufficient resource")
	ErrLimitReached         = New(CodeLimitReached, "limit reached")
	ErrInternal             = New(CodeInternal, "operation failed")
)

// Error is the domain error type shared by every layer.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func NotFound(entity string, id any) *Error {
	return Newf(CodeNotFound, "%s %v not found", entity, id)
}

func InvalidOperation(format string, args ...any) *Error {
	return Newf(CodeInvalidOperation, format, args...)
}

// CodeOf returns the code of the first *Error in the chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Classified reports whether err carries a domain code other than Internal.
func Classified(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code != CodeInternal
}
