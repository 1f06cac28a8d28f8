package repository

import "errors"

var (
	ErrInvalidTable   = errors.New("invalid events table")
	ErrFailedToEnsure = errors.New("failed to ensure events table")
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToList   = errors.New("failed to list events")
	ErrFailedToUpdate = errors.New("failed to update event")
	ErrFailedToDelete = errors.New("failed to delete event")
)
