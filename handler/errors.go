package handler

import (
	"errors"
	"net/http"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError carries an HTTP status code and the message rendered to the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Request method not allowed"}
	ErrMethodNotSupported  = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Request method not yet supported"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "An error occurred processing your request"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Message: "Service unavailable"}
)

// NewHTTPError creates a custom HTTP error.
//
// Example:
//
//	err := handler.NewHTTPError(http.StatusConflict, "Account already registered")
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
