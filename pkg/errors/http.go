package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{Code: code, Message: msg}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

// StatusCode returns the HTTP status, defaulting to 400 when unset.
func (e *HTTPError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusBadRequest
	}
	return e.Code
}

func (e *HTTPError) GoString() string {
	return fmt.Sprintf("HTTPError{Code: %d, Message: %q}", e.Code, e.Message)
}
