package domain

import "time"

// Seeker is the profile attached to a SEEKER account.
type Seeker struct {
	ID           string
	AccountID    string
	Name         string
	Headline     string
	Availability Schedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
