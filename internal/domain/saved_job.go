package domain

import "time"

// SavedJob bookmarks a job for a seeker.
type SavedJob struct {
	ID        string
	SeekerID  string
	JobID     string
	CreatedAt time.Time
}
