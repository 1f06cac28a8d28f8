package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrMissingTitle     = errors.New("title or description required")
	ErrMissingDate      = errors.New("date required for events")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
	ErrInvalidRange     = errors.New("from must not be after to")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
