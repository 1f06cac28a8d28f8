package repository

type CreateUserOptions struct {
	Email        string
	Name         string
	PasswordHash string
}

// GetOneUserOptions matches by ID when set, otherwise by Email.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

type UpdateSettingsOptions struct {
	UserID   int64
	DarkMode bool
}
