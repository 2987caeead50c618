package dto

import (
	"time"

	"github.com/neogig/neogig/internal/domain"
)

// CreateJobRequest payload for posting a job.
type CreateJobRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Location    string          `json:"location" validate:"required"`
	SalaryMin   *int            `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax   *int            `json:"salary_max" validate:"omitempty,gte=0"`
	WorkDays    SchedulePayload `json:"work_days"`
	Tags        []string        `json:"tags"`
}

// UpdateJobRequest payload for editing a job; nil fields are unchanged.
type UpdateJobRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Location    *string         `json:"location"`
	SalaryMin   *int            `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax   *int            `json:"salary_max" validate:"omitempty,gte=0"`
	WorkDays    SchedulePayload `json:"work_days"`
	Tags        []string        `json:"tags"`
}

// JobSummary is the listing view of a job.
type JobSummary struct {
	ID        string           `json:"id"`
	Slug      string           `json:"slug"`
	CompanyID string           `json:"company_id"`
	Title     string           `json:"title"`
	Location  string           `json:"location"`
	SalaryMin *int             `json:"salary_min,omitempty"`
	SalaryMax *int             `json:"salary_max,omitempty"`
	Tags      []string         `json:"tags,omitempty"`
	Status    domain.JobStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// JobDetail is the full view of a job.
type JobDetail struct {
	JobSummary
	Description string          `json:"description"`
	WorkDays    SchedulePayload `json:"work_days,omitempty"`
	Saved       *bool           `json:"saved,omitempty"`
	Questions   []QuestionView  `json:"questions,omitempty"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
}

// NewJobSummary converts a domain job.
func NewJobSummary(job *domain.Job) JobSummary {
	return JobSummary{
		ID:        job.ID,
		Slug:      job.Slug,
		CompanyID: job.CompanyID,
		Title:     job.Title,
		Location:  job.Location,
		SalaryMin: job.SalaryMin,
		SalaryMax: job.SalaryMax,
		Tags:      job.Tags,
		Status:    job.Status,
		CreatedAt: job.CreatedAt,
	}
}

// NewJobDetail converts a domain job with its questions.
func NewJobDetail(job *domain.Job, questions []domain.Question, saved *bool) JobDetail {
	views := make([]QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, NewQuestionView(&questions[i]))
	}
	return JobDetail{
		JobSummary:  NewJobSummary(job),
		Description: job.Description,
		WorkDays:    ScheduleFromDomain(job.WorkDays),
		Saved:       saved,
		Questions:   views,
		ClosedAt:    job.ClosedAt,
	}
}
