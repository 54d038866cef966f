package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be answered with.
type HTTPError struct {
	Code    int
	Message string
	Details string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details string) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) String() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
