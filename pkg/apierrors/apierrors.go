// Package apierrors carries coded errors across the client. The gateway
// translates HTTP failures into these; services pass them through untouched
// and the auth manager flattens them into result values at its boundary.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"acodelab/pkg/sentinel"
)

type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeRateLimited  Code = "rate_limited"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal_error"
)

// Error is a coded error with a human-readable message. Message holds the
// server's detail field when one was present, otherwise a generic fallback.
type Error struct {
	Code    Code
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.err }

// Is lets errors.Is match the sentinel corresponding to the code, so callers
// can branch without importing this package's codes.
func (e *Error) Is(target error) bool {
	switch target {
	case sentinel.ErrNotFound:
		return e.Code == CodeNotFound
	case sentinel.ErrUnauthorized:
		return e.Code == CodeUnauthorized
	case sentinel.ErrForbidden:
		return e.Code == CodeForbidden
	case sentinel.ErrConflict:
		return e.Code == CodeConflict
	case sentinel.ErrThrottled:
		return e.Code == CodeRateLimited
	case sentinel.ErrUnavailable:
		return e.Code == CodeUnavailable || e.Code == CodeInternal
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, err: err}
}

// CodeFor extracts the code from an error chain, defaulting to internal.
func CodeFor(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// Detail extracts the display message from an error chain. Views fall back
// to this when rendering a failure the server described.
func Detail(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// FromStatus maps an HTTP response status to a code.
func FromStatus(status int) Code {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusConflict:
		return CodeConflict
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status >= 500:
		return CodeUnavailable
	case status >= 400:
		return CodeBadRequest
	default:
		return CodeInternal
	}
}
