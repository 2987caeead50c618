package domain

import "time"

// Account is the stored credential record backing logins. The role is
// assigned once at signup and never changes.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
