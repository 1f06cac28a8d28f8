package usecase

import (
	"context"

	"zenned/internal/event"
	repo "zenned/internal/event/repository"
)

// Update patches start time, end time or completion. Returns ErrEventNotFound
// when no row matched.
func (uc *implUseCase) Update(ctx context.Context, input event.UpdateInput) error {
	opt := repo.UpdateEventOptions{
		UserID:    input.UserID,
		ID:        input.ID,
		Completed: input.Completed,
	}

	var err error
	if opt.StartTime, err = toNullableTime(input.StartTime); err != nil {
		return err
	}
	if opt.EndTime, err = toNullableTime(input.EndTime); err != nil {
		return err
	}
	if opt.Empty() {
		return event.ErrNoFieldsToUpdate
	}

	found, err := uc.repo.UpdateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return err
	}
	if !found {
		return event.ErrEventNotFound
	}
	return nil
}

// Delete removes one event. Returns ErrEventNotFound when no row matched.
func (uc *implUseCase) Delete(ctx context.Context, input event.DeleteInput) error {
	found, err := uc.repo.DeleteEvent(ctx, repo.DeleteEventOptions{UserID: input.UserID, ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	if !found {
		return event.ErrEventNotFound
	}
	return nil
}

func toNullableTime(v *event.TimeValue) (*repo.NullableTime, error) {
	if v == nil {
		return nil, nil
	}
	if v.Value == "" {
		return &repo.NullableTime{}, nil
	}
	t, err := validateTime(v.Value)
	if err != nil {
		return nil, err
	}
	return &repo.NullableTime{Value: t, Valid: true}, nil
}
