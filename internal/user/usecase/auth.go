package usecase

import (
	"context"
	"errors"
	"strings"

	"zenned/internal/model"
	"zenned/internal/user"
	repo "zenned/internal/user/repository"
	"zenned/pkg/scope"
)

// Signup registers a user, provisions their events table and signs them in.
func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.SignupOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.SignupOutput{}, user.ErrMissingFields
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GetOneUser: %v", err)
		return user.SignupOutput{}, err
	}
	if existing.ID != 0 {
		return user.SignupOutput{}, user.ErrEmailTaken
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup HashPassword: %v", err)
		return user.SignupOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.SignupOutput{}, user.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return user.SignupOutput{}, err
	}

	// The events table is also created on first use, so a failure here only delays it.
	if err := uc.eventUC.EnsureStore(ctx, u.ID); err != nil {
		uc.l.Warnf(ctx, "uc.Signup EnsureStore user %d: %v", u.ID, err)
	}

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup issueToken: %v", err)
		return user.SignupOutput{}, err
	}
	return user.SignupOutput{User: u, Token: token}, nil
}

// Login checks credentials and issues a token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrMissingFields
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if u.ID == 0 {
		return user.LoginOutput{}, user.ErrUserNotFound
	}
	if !uc.encrypter.CompareHashAndPassword(u.PasswordHash, input.Password) {
		return user.LoginOutput{}, user.ErrInvalidPassword
	}

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login issueToken: %v", err)
		return user.LoginOutput{}, err
	}
	return user.LoginOutput{User: u, Token: token}, nil
}

func (uc *implUseCase) issueToken(u model.User) (string, error) {
	return uc.jwtManager.CreateToken(scope.Payload{UserID: u.ID, Email: u.Email, Name: u.Name})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
