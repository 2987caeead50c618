package domain

import "time"

// Question is a seeker question on a job, optionally answered by the
// company that owns the job.
type Question struct {
	ID         string
	JobID      string
	SeekerID   string
	Body       string
	Answer     *string
	AnsweredAt *time.Time
	CreatedAt  time.Time
}
