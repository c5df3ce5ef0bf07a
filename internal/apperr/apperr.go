// Package apperr classifies service failures so controllers can map them to
// HTTP status codes without inspecting error strings.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a client-visible failure. Message is safe to return in a response
// body as-is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// StatusOf returns the HTTP status for err. Anything outside the taxonomy,
// storage failures included, maps to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-visible message for err. Untyped errors are
// masked so storage internals never leak into a response.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
