package domain

import "time"

// JobStatus enumerates posting lifecycle states.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
)

// Job is the aggregate for a posted position.
type Job struct {
	ID          string
	Slug        string
	CompanyID   string
	Title       string
	Description string
	Location    string
	SalaryMin   *int
	SalaryMax   *int
	WorkDays    Schedule
	Tags        []string
	Status      JobStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
}
