package errors

import "net/http"

// HTTPError is an error that knows which status code it should be served with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Common errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
