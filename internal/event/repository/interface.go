package repository

import (
	"context"

	"zenned/internal/model"
)

// Repository stores events in one table per user.
type Repository interface {
	// EnsureTable creates the user's events table if it does not exist.
	EnsureTable(ctx context.Context, userID int64) error

	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	CreateEvent(ctx context.Context, opt CreateEventOptions) (int64, error)

	// UpdateEvent and DeleteEvent report false when no row matched.
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (bool, error)
	DeleteEvent(ctx context.Context, opt DeleteEventOptions) (bool, error)
}
