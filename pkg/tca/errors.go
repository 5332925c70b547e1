package tca

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPITokenRequired    = errors.New("API token is required")
	ErrUnknownOperation    = errors.New("unknown operation")
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method in operations table")
	ErrOperationNameEmpty  = errors.New("operation name is empty")
	ErrOperationPathEmpty  = errors.New("operation path is empty")
	ErrNoOperationsLoaded  = errors.New("no operations loaded")
	ErrSchemaPathRequired  = errors.New("schema path is required")
	ErrOutputPathRequired  = errors.New("output path is required")
	ErrTokenNotConfigured  = errors.New("no API token configured, run 'tca login' or set TCA_API_TOKEN")
	ErrInvalidParamSyntax  = errors.New("invalid parameter, expected key=value")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

// RequestError represents a failed HTTP request: a network failure, or a
// non-2xx status after the transport's retry budget is exhausted.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("Request failed: status %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("Request failed: %s", e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a RequestError for a non-2xx response.
func NewRequestError(statusCode int, message string) *RequestError {
	return &RequestError{StatusCode: statusCode, Message: message}
}

// WrapRequestError creates a RequestError around a transport-level failure.
func WrapRequestError(err error) *RequestError {
	return &RequestError{Message: err.Error(), Err: err}
}

// IsRequestError reports whether err is (or wraps) a RequestError.
func IsRequestError(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// RequestError or the failure happened before a response was received.
func StatusCode(err error) int {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == 404
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	return StatusCode(err) == 429
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == 401
}
