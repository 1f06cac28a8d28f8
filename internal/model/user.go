package model

import "time"

// User is an account that owns one events table.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	DarkMode     bool
	CreatedAt    time.Time
}
