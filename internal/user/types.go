package user

import "zenned/internal/model"

// --- UseCase Inputs ---

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateSettingsInput struct {
	UserID   int64
	DarkMode bool
}

// --- UseCase Outputs ---

type SignupOutput struct {
	User  model.User
	Token string
}

type LoginOutput struct {
	User  model.User
	Token string
}

type SettingsOutput struct {
	DarkMode bool
}
