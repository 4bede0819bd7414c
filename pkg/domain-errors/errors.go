// Package domainerrors defines the coded error taxonomy shared by all
// services. Handlers never inspect error strings; they translate codes to
// HTTP responses through a single writer.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a failure for transport-level translation.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeNotFound   Code = "not_found"
	CodeUpstream   Code = "upstream_error"
	CodeInternal   Code = "internal_error"
)

// Error is the error type produced by domain services.
type Error struct {
	Code    Code
	Message string
	// Status overrides the code's default HTTP status when non-zero.
	// Used to pass an upstream provider's status through unchanged.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a coded error with a caller-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with fmt-style message construction.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Upstream builds an upstream_error that carries the provider's HTTP status
// so the handler can propagate it verbatim.
func Upstream(status int, message string) *Error {
	return &Error{Code: CodeUpstream, Message: message, Status: status}
}

// HasCode reports whether err or anything it wraps carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode at handler call sites.
func Is(err error, code Code) bool { return HasCode(err, code) }

// ToHTTPStatus maps a code to its default HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstream:
		return http.StatusBadGateway
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// StatusFor resolves the HTTP status for an error: a carried upstream status
// wins, then the code default, then 500 for uncoded errors.
func StatusFor(err error) int {
	var de *Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	if de.Status != 0 {
		return de.Status
	}
	return ToHTTPStatus(de.Code)
}
