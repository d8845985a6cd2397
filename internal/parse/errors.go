package parse

import "errors"

// Sentinel errors surfaced to the caller. The CLI shows the wrapped message
// verbatim as a validation error; callers can branch with errors.Is.
var (
	// ErrEmptyInput means the expression was empty after normalization.
	ErrEmptyInput = errors.New("empty date/time expression")

	// ErrInvalidTime means no time pattern matched, or a matched value was
	// out of the hour/minute range.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInvalidDate means no date pattern or phrase matched, or the values
	// formed an impossible calendar date.
	ErrInvalidDate = errors.New("invalid date format")
)
