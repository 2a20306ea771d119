package errors

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")

	ErrInvalidBody = errors.New("invalid request body")
)

const (
	MessageMissingFields = "Missing required fields"
	MessageInvalidBody   = "Invalid request body"
	MessageCreated       = "Booking created successfully"
	MessageInternalError = "Internal server error"
	MessageRateLimited   = "Rate limit exceeded"
	MessageSubmitFailed  = "Failed to submit booking. Please try again."
)
