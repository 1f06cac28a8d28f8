package repository

import (
	"context"

	"zenned/internal/model"
)

// Repository is the users data store.
type Repository interface {
	// CreateUser returns ErrDuplicateEmail when the email is taken.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns a zero User (ID == 0) when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	// UpdateSettings reports false when the user does not exist.
	UpdateSettings(ctx context.Context, opt UpdateSettingsOptions) (bool, error)
}
