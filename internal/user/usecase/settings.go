package usecase

import (
	"context"

	"zenned/internal/user"
	repo "zenned/internal/user/repository"
)

func (uc *implUseCase) GetSettings(ctx context.Context, userID int64) (user.SettingsOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetSettings GetOneUser: %v", err)
		return user.SettingsOutput{}, err
	}
	if u.ID == 0 {
		return user.SettingsOutput{}, user.ErrUserNotFound
	}
	return user.SettingsOutput{DarkMode: u.DarkMode}, nil
}

func (uc *implUseCase) UpdateSettings(ctx context.Context, input user.UpdateSettingsInput) error {
	found, err := uc.repo.UpdateSettings(ctx, repo.UpdateSettingsOptions{
		UserID:   input.UserID,
		DarkMode: input.DarkMode,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSettings: %v", err)
		return err
	}
	if !found {
		return user.ErrUserNotFound
	}
	return nil
}
