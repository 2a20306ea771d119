package client

import (
	"errors"
	"fmt"
)

// APIError is a non-success response. Message is the server's text, shown to
// the user as is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(resp *Response) *APIError {
	return &APIError{StatusCode: resp.StatusCode, Message: GetErrorMessage(resp)}
}

// ErrorMessage returns the text a view shows for err.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}
	return "Something went wrong. Please try again."
}
