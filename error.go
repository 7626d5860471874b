package webread

import (
	"errors"
	"fmt"
)

// Error codes classify domain errors for transport-agnostic handling.
const (
	EINVALID      = "invalid"
	EUNAUTHORIZED = "unauthorized"
	ENOTFOUND     = "not_found"
	EUPSTREAM     = "upstream"
	EINTERNAL     = "internal"
)

// Error is a domain error with a machine-readable code and a message safe
// to show end users.
type Error struct {
	// Code classifies the error for programmatic handling.
	Code string

	// Message is a human-readable description of the error.
	Message string

	// Status is the HTTP status reported by an upstream collaborator.
	// Set only on EUPSTREAM errors.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webread error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode unwraps the code of a domain error. Non-domain errors report
// EINTERNAL; nil reports an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps the message of a domain error. Non-domain errors
// report a generic message so internal details never reach end users.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// ErrorStatus reports the upstream HTTP status recorded on a domain error,
// or zero when none was recorded.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
