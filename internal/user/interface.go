package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (SignupOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	GetSettings(ctx context.Context, userID int64) (SettingsOutput, error)
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) error
}
