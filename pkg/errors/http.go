package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status code to answer with.
type HTTPError struct {
	Code    int
	Message string
	// Detail is an optional human readable cause surfaced as the "error" field.
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithDetail returns a copy of e carrying detail.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

var (
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
