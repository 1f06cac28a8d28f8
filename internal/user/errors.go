package user

import "errors"

var (
	ErrMissingFields   = errors.New("missing fields")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidSettings = errors.New("dark_mode must be a boolean")
)
