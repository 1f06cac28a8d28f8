package repository

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToUpdate = errors.New("failed to update user")
)
