package errors

import "errors"

var (
	ErrNotFound = errors.New("property not found")

	ErrInvalidIndex = errors.New("invalid property index")

	ErrInvalidNights = errors.New("nights must be a positive integer")
)
