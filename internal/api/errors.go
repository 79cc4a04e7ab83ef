package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotSupported marks an operation the backend has no route for.
// Callers must surface it, never swallow it as a quiet success.
var ErrNotSupported = errors.New("operation not supported by the backend")

// APIError is a non-2xx response from the backend, carrying the
// server-supplied message when the error body was parseable JSON.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// decodeError builds an APIError from an error response body
func decodeError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("http error: status %d", status)}
}

// ErrorMessage extracts the user-facing message from any error coming
// out of the client; notifications show this string as-is.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
