// Package derrors defines the coded domain errors services return to the
// transport layer. Stores return pkg/platform/sentinel errors; services
// translate those facts into a Code plus a user-facing message, and handlers
// render them without further interpretation.
package derrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error for transport mapping.
type Code string

const (
	CodeBadRequest    Code = "bad_request"
	CodeInvalidInput  Code = "invalid_input"
	CodeNotFound      Code = "not_found"
	CodeConflict      Code = "conflict"
	CodeInvalidState  Code = "invalid_state"
	CodeUnprocessable Code = "unprocessable"
	CodeInternal      Code = "internal_error"
)

// DomainError carries a classification code and a message safe to surface to
// the caller. The wrapped cause, if any, stays internal.
type DomainError struct {
	Code    Code
	Message string
	cause   error
}

func (e DomainError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e DomainError) Unwrap() error {
	return e.cause
}

// New builds a DomainError with no underlying cause.
func New(code Code, message string) error {
	return DomainError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return DomainError{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) is a DomainError with
// the given code.
func HasCode(err error, code Code) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// MessageOf extracts the user-facing message, falling back to err.Error()
// for non-domain errors.
func MessageOf(err error) string {
	var de DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// ToHTTPStatus maps a domain error code onto an HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeInvalidState:
		return http.StatusConflict
	case CodeUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
