package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// EnsureStore creates the user's events table.
	EnsureStore(ctx context.Context, userID int64) error

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, input DeleteInput) error

	// Export renders the user's dated events as an iCalendar document.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
