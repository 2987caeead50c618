package domain

import "time"

// ApplicationStatus enumerates application lifecycle states.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "SUBMITTED"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// Application links a seeker to a job. MatchScore is the fraction of the
// job's schedule covered by the seeker's availability at apply time.
type Application struct {
	ID         string
	JobID      string
	SeekerID   string
	CoverNote  string
	MatchScore float64
	Status     ApplicationStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DecidedAt  *time.Time
}
