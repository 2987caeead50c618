package domain

import "time"

// Company is the profile attached to a COMPANY account.
type Company struct {
	ID          string
	AccountID   string
	Name        string
	Description string
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
