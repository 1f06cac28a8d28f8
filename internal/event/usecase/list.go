package usecase

import (
	"context"

	"zenned/internal/event"
	repo "zenned/internal/event/repository"
)

func (uc *implUseCase) EnsureStore(ctx context.Context, userID int64) error {
	if err := uc.repo.EnsureTable(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "uc.EnsureStore EnsureTable: %v", err)
		return err
	}
	return nil
}

// List returns the user's events in date order.
func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	from, to, err := validateRange(input.From, input.To)
	if err != nil {
		return event.ListOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		UserID: input.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}
	return event.ListOutput{Events: events}, nil
}
