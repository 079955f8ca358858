package domain

import "errors"

var (
	// ErrInvalidDate is returned when a calendar date fails validation
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingStartTime is returned when an anchor event has no start instant
	ErrMissingStartTime = errors.New("event has no start time")

	// ErrMissingEndTime is returned when an anchor event has no end instant
	ErrMissingEndTime = errors.New("event has no end time")
)
