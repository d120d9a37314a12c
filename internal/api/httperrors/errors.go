package httperrors

import (
	"fmt"
)

// HTTPError is the internal error type handlers return. The echo error
// handler renders it as types.PublicHTTPError with the given status code.
type HTTPError struct {
	Code     int
	Message  string
	Internal error
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

func NewHTTPErrorWithInternal(code int, message string, internal error) *HTTPError {
	return &HTTPError{
		Code:     code,
		Message:  message,
		Internal: internal,
	}
}

func (e *HTTPError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("HTTPError %d: %s: %v", e.Code, e.Message, e.Internal)
	}

	return fmt.Sprintf("HTTPError %d: %s", e.Code, e.Message)
}
