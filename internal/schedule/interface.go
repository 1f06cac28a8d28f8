package schedule

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Import generates a schedule and stores every parsed record for the user.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	// Preview generates and parses a schedule without storing it.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
}
