package errors

import "net/http"

// HTTPError is an error that knows which HTTP status it maps to.
// Message is safe to show to clients.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and client-facing message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many failed login attempts")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
